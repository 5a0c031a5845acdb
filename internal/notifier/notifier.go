package notifier

import (
	"courtwatch/internal/availability"
)

// Notifier defines the interface for delivering availability notifications.
type Notifier interface {
	// Notify delivers a report for the summary when it has available slots.
	// A summary with nothing available produces no notification and no error.
	Notify(summary *availability.WeekSummary) error

	// NotifyError delivers a best-effort report about a failed check run.
	NotifyError(runErr error) error
}
