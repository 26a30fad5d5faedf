package usecase

import (
	"context"
	"fmt"
	"strings"

	mailport "github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/mailer/port"
)

// SendInvitationEmailUseCase renders and sends the invitation e-mail. It runs in the worker.
type SendInvitationEmailUseCase struct {
	Mailer mailport.Mailer
}

func NewSendInvitationEmailUseCase(m mailport.Mailer) *SendInvitationEmailUseCase {
	return &SendInvitationEmailUseCase{Mailer: m}
}

func (uc *SendInvitationEmailUseCase) Execute(ctx context.Context, p SendInvitationPayload) error {
	if p.Email == "" || p.Link == "" {
		return fmt.Errorf("partner: invitation payload is incomplete")
	}
	return uc.Mailer.Send(ctx, RenderInvitation(p))
}

// RenderInvitation builds the plain text invitation e-mail.
func RenderInvitation(p SendInvitationPayload) mailport.Mail {
	name := strings.TrimSpace(p.InviterName)
	if name == "" {
		name = "Your partner"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Hi,\n\n%s has invited you to join them on CoupleClarity,\n", name)
	b.WriteString("a space for couples to share feelings and work through conflicts with care.\n\n")
	fmt.Fprintf(&b, "Accept the invitation here:\n%s\n\n", p.Link)
	if !p.ExpiresAt.IsZero() {
		fmt.Fprintf(&b, "This link expires on %s.\n", p.ExpiresAt.UTC().Format("January 2, 2006"))
	}
	b.WriteString("If you already have an account, log in first and the link will connect it.\n")
	return mailport.Mail{
		To:      p.Email,
		Subject: name + " invited you to CoupleClarity",
		Body:    b.String(),
	}
}
