package scraper

import (
	"context"
	"errors"
)

// ErrBookingNotSupported is returned by Book. Placing a booking needs CSRF
// tokens, authentication, and form analysis that this tool deliberately does
// not implement; it only watches availability.
var ErrBookingNotSupported = errors.New("booking is not supported; book manually via the venue site")

// Book would reserve a court for the given date and time. It is a stub.
func (c *Client) Book(ctx context.Context, date, timeLabel, court string) error {
	c.log.Warn().
		Str("date", date).
		Str("time", timeLabel).
		Str("court", court).
		Msg("booking requested but not supported")
	return ErrBookingNotSupported
}
