package notifier

import (
	"fmt"
	"io"
	"time"

	"courtwatch/internal/availability"
)

// DryRunNotifier prints the report that would be emailed without sending it.
type DryRunNotifier struct {
	out        io.Writer
	venueName  string
	bookingURL string
}

// NewDryRunNotifier creates a dry-run notifier writing to out.
func NewDryRunNotifier(out io.Writer, venueName, bookingURL string) *DryRunNotifier {
	return &DryRunNotifier{out: out, venueName: venueName, bookingURL: bookingURL}
}

// Notify prints the email that would be sent, or a note that none would be.
func (n *DryRunNotifier) Notify(summary *availability.WeekSummary) error {
	if !summary.HasAvailable() {
		fmt.Fprintln(n.out, "No available slots - no notification would be sent")
		return nil
	}

	fmt.Fprintf(n.out, "--- Would send: %s ---\n", Subject(summary, n.venueName))
	fmt.Fprintln(n.out, BuildReport(summary, time.Now(), n.venueName, n.bookingURL))
	return nil
}

// NotifyError prints the error email that would be sent.
func (n *DryRunNotifier) NotifyError(runErr error) error {
	fmt.Fprintf(n.out, "--- Would send: %s ---\n", ErrorSubject(n.venueName))
	fmt.Fprintln(n.out, BuildErrorReport(runErr, time.Now(), n.venueName))
	return nil
}
