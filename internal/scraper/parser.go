package scraper

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"courtwatch/internal/availability"
)

// Selectors for the Courtside booking page markup.
const (
	selClosed       = "p.closed"
	selAvailability = "div.availability"
	selTimeCell     = "th.time"
	selCourtCell    = "label.court"
	selStatusButton = "span.button"
)

// Known status indicator classes.
const (
	classAvailable = "available"
	classBooked    = "booked"
	classSession   = "session"
)

// parseDay extracts a DayReport from one booking page. Missing markup is the
// expected failure mode for a scraped page, so absent elements degrade to
// empty data instead of errors; only an unreadable document is an error,
// recorded on the report.
func (c *Client) parseDay(r io.Reader, date string) *availability.DayReport {
	report := availability.NewDayReport(date)

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		report.Err = "parsing HTML: " + err.Error()
		return report
	}

	// A closed banner trumps anything else on the page.
	if closed := doc.Find(selClosed).First(); closed.Length() > 0 {
		report.Status = availability.StatusClosed
		report.ClosedMessage = strings.TrimSpace(closed.Text())
		return report
	}

	table := doc.Find(selAvailability).First().Find("table").First()
	if table.Length() == 0 {
		// No availability table is "no data", not an error.
		return report
	}

	// The table exists, so every known court gets an entry even if all its
	// cells turn out to be unreadable.
	for _, court := range c.courts {
		report.Court(court)
	}

	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		timeCell := row.Find(selTimeCell).First()
		if timeCell.Length() == 0 {
			return
		}
		timeLabel := strings.TrimSpace(timeCell.Text())
		if timeLabel == "" {
			return
		}

		row.Find(selCourtCell).Each(func(i int, cell *goquery.Selection) {
			if i >= len(c.courts) {
				return
			}
			court := report.Court(c.courts[i])

			button := cell.Find(selStatusButton).First()
			if button.Length() == 0 {
				return
			}

			switch statusClass(button.AttrOr("class", "")) {
			case classAvailable:
				court.Available = append(court.Available, timeLabel)
			case classBooked:
				court.Booked = append(court.Booked, timeLabel)
			case classSession:
				court.Session = append(court.Session, timeLabel)
			default:
				// Ambiguous data must never be miscategorized as available,
				// but it is worth a signal that the markup drifted.
				report.DriftCount++
			}
		})
	})

	return report
}

// statusClass picks the known status category out of an indicator's class
// attribute, or returns "" when none of its classes are recognized. When an
// indicator somehow carries more than one known class, categories win in the
// order available, booked, session, regardless of attribute order.
func statusClass(attr string) string {
	classes := strings.Fields(attr)
	for _, known := range []string{classAvailable, classBooked, classSession} {
		for _, class := range classes {
			if class == known {
				return known
			}
		}
	}
	return ""
}
