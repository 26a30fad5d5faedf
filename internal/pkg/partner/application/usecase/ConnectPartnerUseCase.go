package usecase

import (
	"context"
	"strings"

	partner "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/partner/application/domain"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/partner/persistence/repository/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

// ConnectPartnerUseCase links an existing, signed-in account through an invitation.
type ConnectPartnerUseCase struct {
	Repo     repository.PartnerRepository
	Notifier shared.Notifier
}

func NewConnectPartnerUseCase(repo repository.PartnerRepository, notifier shared.Notifier) *ConnectPartnerUseCase {
	return &ConnectPartnerUseCase{Repo: repo, Notifier: notifier}
}

func (uc *ConnectPartnerUseCase) Execute(ctx context.Context, token, userID string) (*partner.Partnership, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, partner.ErrInvitationNotFound
	}
	return redeem(ctx, uc.Repo, uc.Notifier, token, userID)
}
