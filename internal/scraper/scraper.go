package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/rs/zerolog"

	"courtwatch/internal/availability"
)

const (
	// Timeout bounds each page fetch.
	Timeout = 30 * time.Second

	// DefaultPause is the pause between per-date requests, purely to keep the
	// request rate polite toward the booking site.
	DefaultPause = 1 * time.Second

	userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36"
)

// DefaultCourts is the position-ordered list of court identifiers at the
// venue: the Nth court cell in a table row belongs to the Nth name here.
// Cells beyond the known courts are ignored.
var DefaultCourts = []string{"court_1", "court_2"}

// Client scrapes one venue's booking pages. It owns the HTTP session (cookie
// jar included) for a run; execution is sequential, so the session has a
// single owner and needs no locking.
type Client struct {
	httpClient *http.Client
	baseURL    string
	venueSlug  string
	courts     []string
	pause      time.Duration
	log        *zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithCourts overrides the position-ordered court identifier list.
func WithCourts(courts []string) Option {
	return func(c *Client) {
		if len(courts) > 0 {
			c.courts = courts
		}
	}
}

// WithPause overrides the pause between per-date requests.
func WithPause(d time.Duration) Option {
	return func(c *Client) {
		if d >= 0 {
			c.pause = d
		}
	}
}

// New creates a Client for the venue at baseURL/book/courts/<venueSlug>.
// The logger is required; all components receive their logger explicitly.
func New(baseURL, venueSlug string, log *zerolog.Logger, opts ...Option) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("creating cookie jar: %w", err)
	}

	c := &Client{
		httpClient: &http.Client{
			Jar:     jar,
			Timeout: Timeout,
		},
		baseURL:   baseURL,
		venueSlug: venueSlug,
		courts:    DefaultCourts,
		pause:     DefaultPause,
		log:       log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Courts returns the position-ordered court identifiers the client parses.
func (c *Client) Courts() []string {
	return c.courts
}

// BookingURL returns the venue's base booking page URL.
func (c *Client) BookingURL() string {
	return fmt.Sprintf("%s/book/courts/%s", c.baseURL, c.venueSlug)
}

// dayURL returns the booking page URL for a date. Today's page is served at
// the base booking URL; any other date gets an explicit date segment.
func (c *Client) dayURL(date string, now time.Time) string {
	if availability.IsToday(date, now) {
		return c.BookingURL() + "#book"
	}
	return fmt.Sprintf("%s/%s#book", c.BookingURL(), date)
}

// InitSession performs one GET against the booking page to pick up the
// session cookies later requests need. Failure is terminal for the run.
func (c *Client) InitSession(ctx context.Context) error {
	resp, err := c.get(ctx, c.BookingURL())
	if err != nil {
		return fmt.Errorf("initializing session: %w", err)
	}
	resp.Body.Close()
	c.log.Info().Str("url", c.BookingURL()).Msg("session initialized")
	return nil
}

// FetchDay fetches and parses the booking page for one date. Transport and
// status errors are recorded on the returned report (tagged with its date)
// rather than aborting the caller's loop.
func (c *Client) FetchDay(ctx context.Context, date string, now time.Time) *availability.DayReport {
	url := c.dayURL(date, now)
	c.log.Info().Str("date", date).Str("url", url).Msg("requesting booking page")

	resp, err := c.get(ctx, url)
	if err != nil {
		c.log.Error().Str("date", date).Err(err).Msg("request failed")
		report := availability.NewDayReport(date)
		report.Err = err.Error()
		return report
	}
	defer resp.Body.Close()

	report := c.parseDay(resp.Body, date)

	if report.Closed() {
		c.log.Info().Str("date", date).Str("message", report.ClosedMessage).Msg("venue closed")
	} else {
		c.logParsed(report)
	}
	return report
}

// CheckWeek fetches and parses every date in the window, sequentially, with a
// pause between dates. Per-date failures are kept on their reports; the loop
// always covers the whole window.
func (c *Client) CheckWeek(ctx context.Context, now time.Time, days int) ([]*availability.DayReport, error) {
	dates := availability.Window(now, days)
	reports := make([]*availability.DayReport, 0, len(dates))

	for i, date := range dates {
		if i > 0 {
			if err := sleep(ctx, c.pause); err != nil {
				return reports, err
			}
		}
		reports = append(reports, c.FetchDay(ctx, date, now))
	}

	return reports, nil
}

// get issues a GET with browser-like headers and verifies a 2xx status.
func (c *Client) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	req.Header.Set("Connection", "keep-alive")
	req.Header.Set("Upgrade-Insecure-Requests", "1")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return resp, nil
}

func (c *Client) logParsed(report *availability.DayReport) {
	var available, booked, session int
	for _, times := range report.Courts {
		available += len(times.Available)
		booked += len(times.Booked)
		session += len(times.Session)
	}
	c.log.Info().
		Str("date", report.Date).
		Int("available", available).
		Int("booked", booked).
		Int("sessions", session).
		Msg("parsed booking page")

	if report.DriftCount > 0 {
		c.log.Warn().
			Str("date", report.Date).
			Int("unknown_indicators", report.DriftCount).
			Msg("unrecognized status classes; site markup may have changed")
	}
}

// sleep blocks for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
