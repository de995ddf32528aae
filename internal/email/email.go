// Package email composes the account emails and hands them to a Sender.
// Nothing leaves the process: the only Sender logs the message.
package email

import (
	"bytes"
	"fmt"
	"log/slog"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// DefaultFrom is the sender address used when none is configured.
const DefaultFrom = "Helios <no-reply@helios.energy>"

// Sender delivers one email.
type Sender interface {
	Send(to, subject, htmlBody string) error
}

// LogSender writes emails to the log instead of sending them.
type LogSender struct {
	from   string
	logger *slog.Logger
}

// NewLogSender creates a LogSender. A nil logger uses slog.Default.
func NewLogSender(from string, logger *slog.Logger) *LogSender {
	if from == "" {
		from = DefaultFrom
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSender{from: from, logger: logger.With("service", "email")}
}

// Send logs the email content.
func (s *LogSender) Send(to, subject, htmlBody string) error {
	if to == "" {
		return fmt.Errorf("email: missing recipient")
	}
	s.logger.Info("Email sent (logged)", "from", s.from, "to", to, "subject", subject, "body", htmlBody)
	return nil
}

// ResetSubject is the subject line of the password reset email.
const ResetSubject = "Reset your Helios password"

// ResetBody renders the password reset email. baseURL is the public origin
// of the site, without a trailing slash.
func ResetBody(baseURL, to string) (string, error) {
	link := baseURL + "/login"
	doc := html.Div(
		html.P(g.Textf("Hi %s,", to)),
		html.P(g.Text("We received a request to reset the password for your Helios account.")),
		html.P(html.A(html.Href(link), g.Text("Choose a new password"))),
		html.P(g.Text("If you did not ask for this you can ignore this email.")),
	)

	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		return "", fmt.Errorf("email: render reset body: %w", err)
	}
	return buf.String(), nil
}

// SendReset composes and sends the password reset email.
func SendReset(s Sender, baseURL, to string) error {
	body, err := ResetBody(baseURL, to)
	if err != nil {
		return err
	}
	return s.Send(to, ResetSubject, body)
}
