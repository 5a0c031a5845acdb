package notifier

import (
	"fmt"
	"html"
	"strings"
	"time"

	"courtwatch/internal/availability"
)

// BuildReport formats a WeekSummary as the HTML body of an availability email.
func BuildReport(summary *availability.WeekSummary, checkedAt time.Time, venueName, bookingURL string) string {
	var b strings.Builder

	b.WriteString("<html>\n<body>\n")
	fmt.Fprintf(&b, "<h2>🎾 %s Tennis Court Update</h2>\n", html.EscapeString(venueName))
	fmt.Fprintf(&b, "<p><strong>Check Time:</strong> %s</p>\n", checkedAt.UTC().Format("2006-01-02 15:04:05 UTC"))

	if summary.HasAvailable() {
		b.WriteString("<h3>🎉 Available Courts Found!</h3>\n<ul>\n")
		for _, slot := range summary.Available {
			fmt.Fprintf(&b, "<li><strong>%s</strong> at <strong>%s</strong> - %s</li>\n",
				html.EscapeString(slot.Date), html.EscapeString(slot.Time), html.EscapeString(slot.Court))
		}
		b.WriteString("</ul>\n")
		fmt.Fprintf(&b, "<p><a href=%q style=\"background-color: #4CAF50; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px;\">🔗 Book Now</a></p>\n", bookingURL)
	} else {
		b.WriteString("<h3>❌ No Available Courts</h3>\n")
		fmt.Fprintf(&b, "<p>All courts are currently booked. Checked %d slots.</p>\n", len(summary.Booked))
	}

	avail, booked, session, closed := summary.Counts()
	b.WriteString("<h3>📊 Summary</h3>\n<ul>\n")
	fmt.Fprintf(&b, "<li>Available: %d</li>\n", avail)
	fmt.Fprintf(&b, "<li>Booked: %d</li>\n", booked)
	fmt.Fprintf(&b, "<li>Sessions: %d</li>\n", session)
	fmt.Fprintf(&b, "<li>Closed Days: %d</li>\n", closed)
	b.WriteString("</ul>\n")

	if len(summary.ClosedDays) > 0 {
		b.WriteString("<h3>🚧 Closed Days</h3>\n<ul>\n")
		for _, day := range summary.ClosedDays {
			fmt.Fprintf(&b, "<li><strong>%s</strong>: %s</li>\n",
				html.EscapeString(day.Date), html.EscapeString(day.Message))
		}
		b.WriteString("</ul>\n")
	}

	b.WriteString("<hr>\n<p><small>Automated availability check</small></p>\n")
	b.WriteString("</body>\n</html>\n")

	return b.String()
}

// BuildErrorReport formats the HTML body of a run-failure email.
func BuildErrorReport(runErr error, checkedAt time.Time, venueName string) string {
	var b strings.Builder

	b.WriteString("<html>\n<body>\n")
	fmt.Fprintf(&b, "<h2>⚠️ %s Court Monitor Error</h2>\n", html.EscapeString(venueName))
	fmt.Fprintf(&b, "<p><strong>Time:</strong> %s</p>\n", checkedAt.UTC().Format("2006-01-02 15:04:05 UTC"))
	fmt.Fprintf(&b, "<p><strong>Error:</strong> %s</p>\n", html.EscapeString(runErr.Error()))
	b.WriteString("</body>\n</html>\n")

	return b.String()
}

// Subject returns the availability email subject line, which carries the
// available-slot count.
func Subject(summary *availability.WeekSummary, venueName string) string {
	return fmt.Sprintf("🎾 %d Tennis Courts Available at %s!", len(summary.Available), venueName)
}

// ErrorSubject returns the run-failure email subject line.
func ErrorSubject(venueName string) string {
	return fmt.Sprintf("⚠️ %s Court Monitor Error", venueName)
}
