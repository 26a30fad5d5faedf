package adapter

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/mailer/port"
)

func newTestSMTPMailer(t *testing.T, user string) (*SMTPMailer, *[]*mail.Msg) {
	t.Helper()
	m, err := NewSMTPMailer("smtp.example.com", 587, user, "pw", "hello@coupleclarity.app")
	require.NoError(t, err)
	var sent []*mail.Msg
	m.send = func(_ context.Context, msg *mail.Msg) error {
		sent = append(sent, msg)
		return nil
	}
	m.now = func() time.Time { return time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC) }
	return m, &sent
}

func render(t *testing.T, msg *mail.Msg) string {
	t.Helper()
	var b bytes.Buffer
	_, err := msg.WriteTo(&b)
	require.NoError(t, err)
	return b.String()
}

func TestSMTPMailerBuildsMessage(t *testing.T) {
	m, sent := newTestSMTPMailer(t, "user")

	err := m.Send(context.Background(), port.Mail{To: "sam@example.com", Subject: "You're invited", Body: "line1\nline2"})
	require.NoError(t, err)
	require.Len(t, *sent, 1)

	raw := render(t, (*sent)[0])
	assert.Contains(t, raw, "From: <hello@coupleclarity.app>\r\n")
	assert.Contains(t, raw, "To: <sam@example.com>\r\n")
	assert.Contains(t, raw, "Subject: You're invited\r\n")
	assert.Contains(t, raw, "Date: Mon, 05 Jan 2026 10:00:00 +0000\r\n")
	assert.Contains(t, raw, "text/plain")
	assert.Contains(t, raw, "line1")
	assert.Contains(t, raw, "line2")
}

func TestSMTPMailerRejectsHeaderInjection(t *testing.T) {
	m, sent := newTestSMTPMailer(t, "")

	err := m.Send(context.Background(), port.Mail{To: "x@y.z\r\nBcc: evil@z", Subject: "s"})
	assert.Error(t, err)
	err = m.Send(context.Background(), port.Mail{To: "x@y.z", Subject: "s\r\nBcc: evil@z"})
	assert.Error(t, err)
	assert.Empty(t, *sent)
}

func TestSMTPMailerWrapsSendError(t *testing.T) {
	m, _ := newTestSMTPMailer(t, "")
	m.send = func(context.Context, *mail.Msg) error { return errors.New("connection refused") }

	err := m.Send(context.Background(), port.Mail{To: "x@y.z", Subject: "s", Body: "b"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "send to x@y.z")
}

func TestNewSMTPMailerRejectsBadPort(t *testing.T) {
	_, err := NewSMTPMailer("smtp.example.com", 0, "", "", "a@b.c")
	assert.Error(t, err)
}

func TestLogMailer(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	err := NewLogMailer(zap.New(core)).Send(context.Background(), port.Mail{To: "d@e.f", Subject: "hi", Body: "link"})
	require.NoError(t, err)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "d@e.f", logs.All()[0].ContextMap()["to"])
}
