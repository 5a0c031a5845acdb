package availability

import "time"

// DefaultWindowDays is the rolling booking window the venue exposes.
const DefaultWindowDays = 7

// Window returns the calendar dates of the rolling booking window starting at
// now: today first, then days-1 consecutive dates. days values below 1 fall
// back to DefaultWindowDays.
func Window(now time.Time, days int) []string {
	if days < 1 {
		days = DefaultWindowDays
	}
	dates := make([]string, 0, days)
	for i := 0; i < days; i++ {
		dates = append(dates, now.AddDate(0, 0, i).Format(DateFormat))
	}
	return dates
}

// IsToday reports whether date (in DateFormat) is the same calendar day as now.
func IsToday(date string, now time.Time) bool {
	return date == now.Format(DateFormat)
}
