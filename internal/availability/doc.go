// Package availability defines the domain model for court availability checks:
// per-date reports of court/time-slot status, the rolling date window, and the
// aggregation of a week's reports into a flat summary.
package availability
