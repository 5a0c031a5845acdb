package notifier

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"

	"courtwatch/internal/availability"
	"courtwatch/internal/config"
)

// ErrNoCredentials marks an email configuration too incomplete to send with.
// The email notifier treats it as a warning, not a failure.
var ErrNoCredentials = errors.New("email configuration incomplete")

// sendFunc submits one message. Swappable in tests.
type sendFunc func(m *gomail.Message) error

// EmailNotifier sends availability and error reports over SMTP.
type EmailNotifier struct {
	smtp       config.SMTPConfig
	venueName  string
	bookingURL string
	log        *zerolog.Logger
	send       sendFunc
	now        func() time.Time
}

// NewEmailNotifier creates an email notifier from SMTP settings. Incomplete
// credentials are allowed; sends then degrade to a logged no-op.
func NewEmailNotifier(smtp config.SMTPConfig, venueName, bookingURL string, log *zerolog.Logger) *EmailNotifier {
	n := &EmailNotifier{
		smtp:       smtp,
		venueName:  venueName,
		bookingURL: bookingURL,
		log:        log,
		now:        time.Now,
	}
	n.send = func(m *gomail.Message) error {
		d := gomail.NewDialer(smtp.Server, smtp.Port, smtp.User, smtp.Password)
		return d.DialAndSend(m)
	}
	return n
}

// Notify emails the availability report when the summary has open slots.
// A summary with nothing available sends nothing and returns nil.
func (n *EmailNotifier) Notify(summary *availability.WeekSummary) error {
	if !summary.HasAvailable() {
		n.log.Info().Msg("no available slots; skipping notification")
		return nil
	}

	subject := Subject(summary, n.venueName)
	body := BuildReport(summary, n.now(), n.venueName, n.bookingURL)
	return n.deliver(subject, body)
}

// NotifyError emails a best-effort report about a failed run.
func (n *EmailNotifier) NotifyError(runErr error) error {
	body := BuildErrorReport(runErr, n.now(), n.venueName)
	return n.deliver(ErrorSubject(n.venueName), body)
}

func (n *EmailNotifier) deliver(subject, body string) error {
	if !n.smtp.Complete() {
		n.log.Warn().Msg("email configuration incomplete - skipping notification")
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.smtp.User)
	m.SetHeader("To", n.smtp.Recipient)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := n.send(m); err != nil {
		return fmt.Errorf("sending notification: %w", err)
	}

	n.log.Info().Str("to", n.smtp.Recipient).Str("subject", subject).Msg("notification sent")
	return nil
}
