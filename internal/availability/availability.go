package availability

// Status of a single day at the venue.
type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

// DateFormat is the calendar date layout used throughout (and in booking URLs).
const DateFormat = "2006-01-02"

// CourtTimes holds the time labels seen for one court on one date, grouped by
// slot status. Labels preserve document order.
type CourtTimes struct {
	Available []string `json:"available_times"`
	Booked    []string `json:"booked_times"`
	Session   []string `json:"session_times"`
}

// NewCourtTimes returns an empty CourtTimes with non-nil slices so JSON output
// shows empty lists rather than null.
func NewCourtTimes() *CourtTimes {
	return &CourtTimes{
		Available: make([]string, 0),
		Booked:    make([]string, 0),
		Session:   make([]string, 0),
	}
}

// DayReport is the parsed availability for a single calendar date.
// A closed day carries the venue's closed message and no court data.
// A failed fetch/parse carries the error text in Err; such a report
// contributes nothing to a summary.
type DayReport struct {
	Date          string                 `json:"date"`
	Status        Status                 `json:"status,omitempty"`
	ClosedMessage string                 `json:"message,omitempty"`
	Courts        map[string]*CourtTimes `json:"courts"`
	// DriftCount is the number of status indicators whose class matched none
	// of the known categories. A non-zero value suggests the site's markup
	// has changed; the slots themselves are still excluded from every list.
	DriftCount int    `json:"drift_count,omitempty"`
	Err        string `json:"error,omitempty"`
}

// NewDayReport returns an open DayReport for date with an empty court mapping.
func NewDayReport(date string) *DayReport {
	return &DayReport{
		Date:   date,
		Status: StatusOpen,
		Courts: make(map[string]*CourtTimes),
	}
}

// Failed reports whether the day's fetch or parse failed.
func (r *DayReport) Failed() bool {
	return r == nil || r.Err != ""
}

// Closed reports whether the venue was closed on this date.
func (r *DayReport) Closed() bool {
	return r.Status == StatusClosed
}

// Court returns the CourtTimes for name, creating it if absent.
func (r *DayReport) Court(name string) *CourtTimes {
	ct, ok := r.Courts[name]
	if !ok {
		ct = NewCourtTimes()
		r.Courts[name] = ct
	}
	return ct
}

// Slot is one (date, time, court) booking unit. Its status is implied by
// which WeekSummary list it appears in.
type Slot struct {
	Date  string `json:"date"`
	Time  string `json:"time"`
	Court string `json:"court"`
}

// ClosedDay records a date the venue was closed and the message shown.
type ClosedDay struct {
	Date    string `json:"date"`
	Message string `json:"message"`
}
