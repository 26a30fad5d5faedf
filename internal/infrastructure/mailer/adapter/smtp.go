package adapter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/mailer/port"
)

const smtpTimeout = 15 * time.Second

// SMTPMailer sends mail through an SMTP relay. STARTTLS is used when the
// relay offers it; PLAIN auth is used when a user is set.
type SMTPMailer struct {
	from string
	send func(ctx context.Context, msg *mail.Msg) error
	now  func() time.Time
}

func NewSMTPMailer(host string, port int, user, password, from string) (*SMTPMailer, error) {
	opts := []mail.Option{
		mail.WithPort(port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
		mail.WithTimeout(smtpTimeout),
	}
	if user != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(user),
			mail.WithPassword(password),
		)
	}
	client, err := mail.NewClient(host, opts...)
	if err != nil {
		return nil, fmt.Errorf("mailer: smtp client: %w", err)
	}
	return &SMTPMailer{
		from: from,
		send: func(ctx context.Context, msg *mail.Msg) error { return client.DialAndSendWithContext(ctx, msg) },
		now:  time.Now,
	}, nil
}

var _ port.Mailer = (*SMTPMailer)(nil)

func (s *SMTPMailer) Send(ctx context.Context, m port.Mail) error {
	msg, err := buildMessage(s.from, m, s.now())
	if err != nil {
		return err
	}
	if err := s.send(ctx, msg); err != nil {
		return fmt.Errorf("mailer: send to %s: %w", m.To, err)
	}
	return nil
}

func buildMessage(from string, m port.Mail, now time.Time) (*mail.Msg, error) {
	if strings.ContainsAny(m.Subject, "\r\n") {
		return nil, fmt.Errorf("mailer: subject must not contain newlines")
	}
	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		return nil, fmt.Errorf("mailer: from %q: %w", from, err)
	}
	if err := msg.To(m.To); err != nil {
		return nil, fmt.Errorf("mailer: to %q: %w", m.To, err)
	}
	msg.Subject(m.Subject)
	msg.SetDateWithValue(now.UTC())
	msg.SetBodyString(mail.TypeTextPlain, m.Body)
	return msg, nil
}
