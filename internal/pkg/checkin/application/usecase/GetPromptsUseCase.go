package usecase

import (
	"time"

	checkin "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/checkin/application/domain"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

type WeeklyPrompts struct {
	WeekOf  shared.Date      `json:"week_of"`
	Prompts []checkin.Prompt `json:"prompts"`
}

type GetPromptsUseCase struct {
	Now func() time.Time
}

func NewGetPromptsUseCase() *GetPromptsUseCase {
	return &GetPromptsUseCase{Now: time.Now}
}

func (uc *GetPromptsUseCase) Execute() WeeklyPrompts {
	return WeeklyPrompts{WeekOf: shared.WeekOf(uc.Now()), Prompts: checkin.Prompts}
}
