package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"net/mail"
	"strings"
	"time"

	"go.uber.org/zap"

	queueport "github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/queue/port"
	partner "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/partner/application/domain"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/partner/persistence/repository/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

// SendInvitationTaskType is the queue task name for invitation e-mails.
const SendInvitationTaskType = "invite:send_email"

// SendInvitationPayload is the JSON payload transported via the queue.
type SendInvitationPayload struct {
	InvitationID string    `json:"invitation_id"`
	Email        string    `json:"email"`
	InviterName  string    `json:"inviter_name"`
	Link         string    `json:"link"`
	ExpiresAt    time.Time `json:"expires_at"`
}

type CreateInvitationInput struct {
	InviterID string
	Email     string
}

// CreateInvitationResult carries the link so the inviter can share it
// directly when e-mail delivery is not possible.
type CreateInvitationResult struct {
	Invitation  *partner.Invitation
	Link        string
	EmailQueued bool
}

type CreateInvitationUseCase struct {
	Repo    repository.PartnerRepository
	Q       queueport.Client
	BaseURL string
	TTL     time.Duration
	Logger  *zap.Logger
}

func NewCreateInvitationUseCase(repo repository.PartnerRepository, q queueport.Client, baseURL string, ttl time.Duration, logger *zap.Logger) *CreateInvitationUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CreateInvitationUseCase{Repo: repo, Q: q, BaseURL: baseURL, TTL: ttl, Logger: logger}
}

func (uc *CreateInvitationUseCase) Execute(ctx context.Context, in CreateInvitationInput) (*CreateInvitationResult, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return nil, shared.Invalid("email address is not valid")
	}

	_, err := uc.Repo.FindPartnership(ctx, in.InviterID)
	switch {
	case err == nil:
		return nil, partner.ErrAlreadyPartnered
	case !errors.Is(err, partner.ErrNotPartnered):
		return nil, shared.WrapPersistence(ErrPersistence, err)
	}

	token, err := partner.NewToken()
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	inv := partner.Invitation{
		InviterID: in.InviterID,
		Email:     email,
		Token:     token,
		Status:    partner.StatusPending,
		ExpiresAt: now.Add(uc.TTL),
		CreatedAt: now,
	}
	if _, err := uc.Repo.CreateInvitation(ctx, inv); err != nil {
		return nil, shared.WrapPersistence(ErrPersistence, err)
	}
	stored, err := uc.Repo.FindInvitation(ctx, token)
	if err != nil {
		return nil, shared.WrapPersistence(ErrPersistence, err)
	}

	link := partner.InviteLink(uc.BaseURL, token)
	res := &CreateInvitationResult{Invitation: stored, Link: link}

	payload, _ := json.Marshal(SendInvitationPayload{
		InvitationID: stored.ID,
		Email:        stored.Email,
		InviterName:  stored.InviterName,
		Link:         link,
		ExpiresAt:    stored.ExpiresAt,
	})
	_, err = uc.Q.Enqueue(ctx, queueport.Task{Type: SendInvitationTaskType, Payload: payload}, queueport.EnqueueOption{
		Queue:    "mail",
		MaxRetry: 5,
		Timeout:  30 * time.Second,
	})
	if err != nil {
		uc.Logger.Warn("partner: invitation e-mail not queued", zap.String("invitation_id", stored.ID), zap.Error(err))
	} else {
		res.EmailQueued = true
	}
	return res, nil
}
