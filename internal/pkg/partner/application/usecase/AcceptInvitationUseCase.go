package usecase

import (
	"context"
	"time"

	partner "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/partner/application/domain"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/partner/persistence/repository/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

// NewAccount is the registration form submitted with an invitation.
type NewAccount struct {
	Username    string
	Email       string
	Password    string
	DisplayName string
}

// RegisterAccountFunc creates an account and returns its id.
type RegisterAccountFunc func(ctx context.Context, in NewAccount) (string, error)

type AcceptInvitationInput struct {
	Token   string
	Account NewAccount
}

// AcceptInvitationResult reports the created account even when linking
// failed, so the caller can still sign the new user in.
type AcceptInvitationResult struct {
	UserID      string
	Partnership *partner.Partnership
}

// AcceptInvitationUseCase registers the invitee and links them with the inviter.
type AcceptInvitationUseCase struct {
	Repo     repository.PartnerRepository
	Register RegisterAccountFunc
	Notifier shared.Notifier
	now      func() time.Time
}

func NewAcceptInvitationUseCase(repo repository.PartnerRepository, register RegisterAccountFunc, notifier shared.Notifier) *AcceptInvitationUseCase {
	return &AcceptInvitationUseCase{Repo: repo, Register: register, Notifier: notifier, now: time.Now}
}

func (uc *AcceptInvitationUseCase) Execute(ctx context.Context, in AcceptInvitationInput) (*AcceptInvitationResult, error) {
	inv, err := uc.Repo.FindInvitation(ctx, in.Token)
	if err != nil {
		return nil, shared.WrapPersistence(ErrPersistence, err)
	}
	if !inv.Redeemable(uc.now()) {
		return nil, partner.ErrInvitationUsed
	}

	userID, err := uc.Register(ctx, in.Account)
	if err != nil {
		return nil, err
	}
	res := &AcceptInvitationResult{UserID: userID}

	// The token may have been redeemed between the check and now; the
	// account stays and the caller falls back to connect.
	ps, err := redeem(ctx, uc.Repo, uc.Notifier, in.Token, userID)
	if err != nil {
		return res, err
	}
	res.Partnership = ps
	return res, nil
}
