package usecase

import (
	"context"

	milestone "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/milestone/application/domain"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/milestone/persistence/repository/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

type CreateMilestoneInput struct {
	UserID      string
	Title       string
	Description *string
	Kind        string
	OccurredOn  string
}

type CreateMilestoneUseCase struct {
	Repo     repository.MilestoneRepository
	Partners shared.PartnerResolver
	Notifier shared.Notifier
}

func NewCreateMilestoneUseCase(repo repository.MilestoneRepository, partners shared.PartnerResolver, notifier shared.Notifier) *CreateMilestoneUseCase {
	return &CreateMilestoneUseCase{Repo: repo, Partners: partners, Notifier: notifier}
}

func (uc *CreateMilestoneUseCase) Execute(ctx context.Context, in CreateMilestoneInput) (*milestone.Milestone, error) {
	day, err := shared.ParseDate(in.OccurredOn)
	if err != nil {
		return nil, err
	}
	ps, err := shared.RequirePartnership(ctx, uc.Partners, ErrPersistence, in.UserID)
	if err != nil {
		return nil, err
	}
	m, err := milestone.NewMilestone(milestone.Milestone{
		PartnershipID: ps.ID,
		CreatedBy:     in.UserID,
		Title:         in.Title,
		Description:   in.Description,
		Kind:          in.Kind,
		OccurredOn:    day,
	})
	if err != nil {
		return nil, err
	}
	id, err := uc.Repo.Create(ctx, *m)
	if err != nil {
		return nil, shared.WrapPersistence(ErrPersistence, err)
	}
	m.ID = id
	uc.Notifier.NotifyUser(ctx, ps.PartnerID, shared.Event{Type: shared.EventNewMilestone, Data: m})
	return m, nil
}
