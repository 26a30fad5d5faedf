package task

import (
	"context"
	"encoding/json"
	"fmt"

	qport "github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/queue/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/partner/application/usecase"
)

// RegisterSendInvitationTask binds the invitation e-mail handler to the provided server.
func RegisterSendInvitationTask(srv qport.Server, uc *usecase.SendInvitationEmailUseCase) {
	srv.Register(usecase.SendInvitationTaskType, func(ctx context.Context, t qport.Task) error {
		var p usecase.SendInvitationPayload
		if err := json.Unmarshal(t.Payload, &p); err != nil {
			// malformed payload: do not retry indefinitely
			return fmt.Errorf("%w: %v", qport.ErrSkipRetry, err)
		}
		return uc.Execute(ctx, p)
	})
}
