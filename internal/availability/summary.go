package availability

import "sort"

// WeekSummary is the aggregated view of a week's DayReports: every slot seen,
// flattened into one list per status, plus the days the venue was closed.
type WeekSummary struct {
	Available  []Slot      `json:"available_slots"`
	Booked     []Slot      `json:"booked_slots"`
	Session    []Slot      `json:"session_slots"`
	ClosedDays []ClosedDay `json:"closed_days"`
}

// NewWeekSummary returns an empty summary with non-nil lists.
func NewWeekSummary() *WeekSummary {
	return &WeekSummary{
		Available:  make([]Slot, 0),
		Booked:     make([]Slot, 0),
		Session:    make([]Slot, 0),
		ClosedDays: make([]ClosedDay, 0),
	}
}

// Summarize flattens a sequence of DayReports (ordered by ascending date) into
// a WeekSummary. Failed reports contribute nothing, not even to ClosedDays.
// Closed days contribute only a ClosedDay entry. For open days, courts are
// visited in sorted name order and each court's time lists keep their
// document order, so aggregation over the same input is deterministic.
func Summarize(reports []*DayReport) *WeekSummary {
	summary := NewWeekSummary()

	for _, report := range reports {
		if report.Failed() {
			continue
		}

		if report.Closed() {
			msg := report.ClosedMessage
			if msg == "" {
				msg = "Closed"
			}
			summary.ClosedDays = append(summary.ClosedDays, ClosedDay{
				Date:    report.Date,
				Message: msg,
			})
			continue
		}

		courts := make([]string, 0, len(report.Courts))
		for name := range report.Courts {
			courts = append(courts, name)
		}
		sort.Strings(courts)

		for _, court := range courts {
			times := report.Courts[court]
			for _, t := range times.Available {
				summary.Available = append(summary.Available, Slot{Date: report.Date, Time: t, Court: court})
			}
			for _, t := range times.Booked {
				summary.Booked = append(summary.Booked, Slot{Date: report.Date, Time: t, Court: court})
			}
			for _, t := range times.Session {
				summary.Session = append(summary.Session, Slot{Date: report.Date, Time: t, Court: court})
			}
		}
	}

	return summary
}

// HasAvailable reports whether any slot in the summary is open for booking.
func (s *WeekSummary) HasAvailable() bool {
	return len(s.Available) > 0
}

// Counts returns the number of slots in each category plus closed days.
func (s *WeekSummary) Counts() (available, booked, session, closed int) {
	return len(s.Available), len(s.Booked), len(s.Session), len(s.ClosedDays)
}
