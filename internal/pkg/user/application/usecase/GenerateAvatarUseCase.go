package usecase

import (
	"context"
	"time"

	aiport "github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/ai/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
	user "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/user/application/domain"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/user/persistence/repository/port"
)

// GenerateAvatarUseCase renders and stores an avatar. It runs in the worker.
type GenerateAvatarUseCase struct {
	Repo     repository.UserRepository
	Images   aiport.ImageGenerator
	Notifier shared.Notifier
}

func NewGenerateAvatarUseCase(repo repository.UserRepository, images aiport.ImageGenerator, notifier shared.Notifier) *GenerateAvatarUseCase {
	return &GenerateAvatarUseCase{Repo: repo, Images: images, Notifier: notifier}
}

func (uc *GenerateAvatarUseCase) Execute(ctx context.Context, in GenerateAvatarPayload) error {
	img, err := uc.Images.GenerateImage(ctx, in.Prompt)
	if err != nil {
		return err
	}
	url := user.AvatarPath(in.UserID)
	err = uc.Repo.SaveAvatar(ctx, user.Avatar{
		UserID:      in.UserID,
		ContentType: img.MIMEType,
		Data:        img.Data,
		Prompt:      in.Prompt,
		CreatedAt:   time.Now().UTC(),
	}, url)
	if err != nil {
		return shared.WrapPersistence(ErrPersistence, err)
	}
	uc.Notifier.NotifyUser(ctx, in.UserID, shared.Event{
		Type: shared.EventAvatarReady,
		Data: map[string]string{"avatar_url": url},
	})
	return nil
}
