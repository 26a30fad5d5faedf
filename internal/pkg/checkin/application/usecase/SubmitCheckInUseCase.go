package usecase

import (
	"context"
	"time"

	checkin "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/checkin/application/domain"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/checkin/persistence/repository/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

type SubmitCheckInInput struct {
	UserID   string
	PromptID string
	Answer   string
	Rating   int
	IsShared bool
}

// SubmitCheckInUseCase records the answer for the current week, replacing
// any earlier answer to the same prompt.
type SubmitCheckInUseCase struct {
	Repo     repository.CheckInRepository
	Partners shared.PartnerResolver
	Notifier shared.Notifier
	Now      func() time.Time
}

func NewSubmitCheckInUseCase(repo repository.CheckInRepository, partners shared.PartnerResolver, notifier shared.Notifier) *SubmitCheckInUseCase {
	return &SubmitCheckInUseCase{Repo: repo, Partners: partners, Notifier: notifier, Now: time.Now}
}

func (uc *SubmitCheckInUseCase) Execute(ctx context.Context, in SubmitCheckInInput) (*checkin.Response, error) {
	r, err := checkin.NewResponse(checkin.Response{
		UserID:   in.UserID,
		WeekOf:   shared.WeekOf(uc.Now()),
		PromptID: in.PromptID,
		Answer:   in.Answer,
		Rating:   in.Rating,
		IsShared: in.IsShared,
	})
	if err != nil {
		return nil, err
	}
	id, err := uc.Repo.Upsert(ctx, *r)
	if err != nil {
		return nil, shared.WrapPersistence(ErrPersistence, err)
	}
	r.ID = id
	if r.IsShared {
		shared.NotifyPartner(ctx, uc.Partners, uc.Notifier, r.UserID, shared.Event{
			Type: shared.EventCheckInShared,
			Data: map[string]string{"prompt_id": r.PromptID, "week_of": r.WeekOf.String()},
		})
	}
	return r, nil
}
