package domain

// Mailer sends a single email message. Implementations may use AWS SES or a
// no-op logger in development.
type Mailer interface {
	Send(to, subject, html, text string) error
}
