// Package cli wires the check pipeline behind the courtwatch command:
// config and logger setup, a single check run with its exit-code contract,
// an optional watch loop, and text/JSON output of the week summary.
package cli
