package usecase

import (
	"context"

	appreciation "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/appreciation/application/domain"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/appreciation/persistence/repository/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

// ListAppreciationsUseCase lists either received or sent appreciations,
// newest first.
type ListAppreciationsUseCase struct {
	Repo repository.AppreciationRepository
	Sent bool
}

func NewListReceivedUseCase(repo repository.AppreciationRepository) *ListAppreciationsUseCase {
	return &ListAppreciationsUseCase{Repo: repo}
}

func NewListSentUseCase(repo repository.AppreciationRepository) *ListAppreciationsUseCase {
	return &ListAppreciationsUseCase{Repo: repo, Sent: true}
}

func (uc *ListAppreciationsUseCase) Execute(ctx context.Context, userID string, limit, offset int) ([]appreciation.Appreciation, error) {
	list := uc.Repo.ListReceived
	if uc.Sent {
		list = uc.Repo.ListSent
	}
	out, err := list(ctx, userID, limit, offset)
	if err != nil {
		return nil, shared.WrapPersistence(ErrPersistence, err)
	}
	return out, nil
}
