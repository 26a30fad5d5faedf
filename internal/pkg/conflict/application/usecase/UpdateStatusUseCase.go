package usecase

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	aiport "github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/ai/port"
	conflict "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/conflict/application/domain"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/conflict/persistence/repository/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

type UpdateStatusInput struct {
	ThreadID          string
	UserID            string
	Status            string
	ResolutionSummary *string
}

// UpdateStatusUseCase closes an active thread. A resolved thread without a
// summary asks the summarizer for one; failures leave it empty.
type UpdateStatusUseCase struct {
	Repo       repository.ConflictRepository
	Partners   shared.PartnerResolver
	Notifier   shared.Notifier
	Summarizer aiport.Summarizer
	Logger     *zap.Logger
}

func NewUpdateStatusUseCase(repo repository.ConflictRepository, partners shared.PartnerResolver, notifier shared.Notifier, summarizer aiport.Summarizer, logger *zap.Logger) *UpdateStatusUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UpdateStatusUseCase{Repo: repo, Partners: partners, Notifier: notifier, Summarizer: summarizer, Logger: logger}
}

func (uc *UpdateStatusUseCase) Execute(ctx context.Context, in UpdateStatusInput) (*conflict.Thread, error) {
	to, err := conflict.ParseStatus(in.Status)
	if err != nil {
		return nil, err
	}
	t, ps, err := threadFor(ctx, uc.Repo, uc.Partners, in.ThreadID, in.UserID)
	if err != nil {
		return nil, err
	}
	if err := t.Transition(to); err != nil {
		return nil, err
	}

	summary := in.ResolutionSummary
	if summary != nil {
		s := strings.TrimSpace(*summary)
		summary = &s
		if s == "" {
			summary = nil
		}
	}
	if to == conflict.StatusResolved && summary == nil && uc.Summarizer != nil {
		summary = uc.summarize(ctx, t)
	}

	now := time.Now().UTC()
	if err := uc.Repo.UpdateStatus(ctx, t.ID, to, summary, now); err != nil {
		return nil, shared.WrapPersistence(ErrPersistence, err)
	}
	t.Status = to
	t.ResolvedAt = &now
	if summary != nil {
		t.ResolutionSummary = summary
	}
	uc.Notifier.NotifyUser(ctx, ps.PartnerID, shared.Event{
		Type: shared.EventConflictStatusChanged,
		Data: map[string]string{"thread_id": t.ID, "status": string(to)},
	})
	return t, nil
}

func (uc *UpdateStatusUseCase) summarize(ctx context.Context, t *conflict.Thread) *string {
	msgs, err := uc.Repo.ListMessages(ctx, t.ID)
	if err != nil || len(msgs) == 0 {
		return nil
	}
	lines := make([]aiport.ConflictLine, 0, len(msgs))
	for _, m := range msgs {
		speaker := "Partner B"
		if m.UserID == t.CreatedBy {
			speaker = "Partner A"
		}
		lines = append(lines, aiport.ConflictLine{Speaker: speaker, Content: m.Content})
	}
	s, err := uc.Summarizer.SummarizeConflict(ctx, t.Topic, lines)
	if err != nil {
		uc.Logger.Warn("conflict summary failed", zap.String("thread_id", t.ID), zap.Error(err))
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
