// Package scraper fetches and parses Courtside booking pages for one venue.
//
// The scraper bootstraps a cookie session against the venue's booking page,
// then fetches one page per date in the rolling window and extracts per-court
// slot status from the availability table. The booking site is an uncontrolled
// third party, so every traversal step tolerates missing elements: a closed
// banner, an absent table, a row without a time cell, or a cell without a
// status indicator all degrade to "no data" rather than errors.
package scraper
