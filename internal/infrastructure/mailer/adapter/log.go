package adapter

import (
	"context"

	"go.uber.org/zap"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/mailer/port"
)

// LogMailer writes mail to the log instead of sending it. Used when no SMTP
// host is configured so invitation links are still recoverable.
type LogMailer struct {
	logger *zap.Logger
}

func NewLogMailer(logger *zap.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

var _ port.Mailer = (*LogMailer)(nil)

func (l *LogMailer) Send(_ context.Context, m port.Mail) error {
	l.logger.Info("mail not sent (SMTP disabled)",
		zap.String("to", m.To),
		zap.String("subject", m.Subject),
		zap.String("body", m.Body),
	)
	return nil
}
