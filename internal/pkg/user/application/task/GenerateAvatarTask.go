package task

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	qport "github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/queue/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/user/application/usecase"
)

// RegisterGenerateAvatarTask binds the avatar task handler to the provided server.
func RegisterGenerateAvatarTask(srv qport.Server, uc *usecase.GenerateAvatarUseCase) {
	srv.Register(usecase.GenerateAvatarTaskType, func(ctx context.Context, t qport.Task) error {
		var p usecase.GenerateAvatarPayload
		if err := json.Unmarshal(t.Payload, &p); err != nil {
			return fmt.Errorf("%w: %v", qport.ErrSkipRetry, err)
		}

		ctx, cancel := context.WithTimeout(ctx, 90*time.Second)
		defer cancel()

		err := uc.Execute(ctx, p)
		// no key configured: retrying cannot help
		if errors.Is(err, shared.ErrUnavailable) {
			return fmt.Errorf("%w: %v", qport.ErrSkipRetry, err)
		}
		return err
	})
}
