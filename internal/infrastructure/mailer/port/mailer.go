package port

import "context"

// Mail is a plain text message to one recipient.
type Mail struct {
	To      string
	Subject string
	Body    string
}

// Mailer delivers mail.
type Mailer interface {
	Send(ctx context.Context, m Mail) error
}
