package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	aiport "github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/ai/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/auth"
	queueport "github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/queue/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared/sharedtest"
	user "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/user/application/domain"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/user/usertest"
)

func register(t *testing.T, repo *usertest.Repository, username, email string) *user.User {
	t.Helper()
	u, err := NewRegisterUseCase(repo, auth.NewPasswordHasher(bcrypt.MinCost)).Execute(context.Background(), RegisterInput{
		Username: username, Email: email, Password: "s3cret-pass",
	})
	require.NoError(t, err)
	return u
}

func TestRegisterValidatesAndHashes(t *testing.T) {
	repo := usertest.NewRepository()
	u := register(t, repo, "robin", "Robin@Example.com")

	assert.Equal(t, "robin@example.com", u.Email)
	assert.Equal(t, "robin", u.DisplayName)
	assert.NotEqual(t, "s3cret-pass", u.PasswordHash)

	uc := NewRegisterUseCase(repo, auth.NewPasswordHasher(bcrypt.MinCost))
	_, err := uc.Execute(context.Background(), RegisterInput{Username: "robin", Email: "other@example.com", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, user.ErrUsernameTaken)
	assert.ErrorIs(t, err, shared.ErrConflict)

	_, err = uc.Execute(context.Background(), RegisterInput{Username: "sam", Email: "nope", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, shared.ErrInvalidInput)

	_, err = uc.Execute(context.Background(), RegisterInput{Username: "sam", Email: "sam@example.com", Password: "short"})
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
}

func TestLoginByUsernameOrEmail(t *testing.T) {
	repo := usertest.NewRepository()
	register(t, repo, "robin", "robin@example.com")
	uc := NewLoginUseCase(repo, auth.NewPasswordHasher(bcrypt.MinCost))

	u, err := uc.Execute(context.Background(), LoginInput{Login: "robin", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.Equal(t, "robin", u.Username)

	_, err = uc.Execute(context.Background(), LoginInput{Login: "robin@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), LoginInput{Login: "robin", Password: "wrong-pass"})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)

	_, err = uc.Execute(context.Background(), LoginInput{Login: "ghost", Password: "whatever"})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestUpdateProfileKeepsUnsetFields(t *testing.T) {
	repo := usertest.NewRepository()
	u := register(t, repo, "robin", "robin@example.com")
	name := "Robin B."

	updated, err := NewUpdateProfileUseCase(repo).Execute(context.Background(), UpdateProfileInput{UserID: u.ID, DisplayName: &name})
	require.NoError(t, err)
	assert.Equal(t, "Robin B.", updated.DisplayName)
	assert.Equal(t, "robin@example.com", updated.Email)

	blank := "  "
	_, err = NewUpdateProfileUseCase(repo).Execute(context.Background(), UpdateProfileInput{UserID: u.ID, DisplayName: &blank})
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
}

type recordingQueue struct {
	tasks []queueport.Task
	opts  []queueport.EnqueueOption
	err   error
}

func (q *recordingQueue) Enqueue(_ context.Context, t queueport.Task, opts ...queueport.EnqueueOption) (string, error) {
	if q.err != nil {
		return "", q.err
	}
	q.tasks = append(q.tasks, t)
	q.opts = append(q.opts, opts...)
	return "task-1", nil
}

func (q *recordingQueue) Close() error { return nil }

func TestRequestAvatarQueuesOnAIQueue(t *testing.T) {
	q := &recordingQueue{}
	id, err := NewRequestAvatarUseCase(q).Execute(context.Background(), "user-1", " a fox in a scarf ")
	require.NoError(t, err)
	assert.Equal(t, "task-1", id)
	require.Len(t, q.tasks, 1)
	assert.Equal(t, GenerateAvatarTaskType, q.tasks[0].Type)
	assert.JSONEq(t, `{"user_id":"user-1","prompt":"a fox in a scarf"}`, string(q.tasks[0].Payload))
	assert.Equal(t, "ai", q.opts[0].Queue)

	_, err = NewRequestAvatarUseCase(q).Execute(context.Background(), "user-1", "")
	assert.ErrorIs(t, err, shared.ErrInvalidInput)

	_, err = NewRequestAvatarUseCase(&recordingQueue{err: errors.New("redis down")}).Execute(context.Background(), "user-1", "x")
	assert.ErrorIs(t, err, shared.ErrUnavailable)
}

type fakeImages struct{ err error }

func (f fakeImages) GenerateImage(context.Context, string) (aiport.Image, error) {
	if f.err != nil {
		return aiport.Image{}, f.err
	}
	return aiport.Image{Data: []byte{0x89, 'P', 'N', 'G'}, MIMEType: "image/png"}, nil
}

func TestGenerateAvatarStoresAndNotifies(t *testing.T) {
	repo := usertest.NewRepository()
	u := register(t, repo, "robin", "robin@example.com")
	rec := &sharedtest.Recorder{}

	err := NewGenerateAvatarUseCase(repo, fakeImages{}, rec).Execute(context.Background(), GenerateAvatarPayload{UserID: u.ID, Prompt: "fox"})
	require.NoError(t, err)

	a, err := NewGetAvatarUseCase(repo).Execute(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, "image/png", a.ContentType)

	me, err := NewGetUserUseCase(repo).Execute(context.Background(), u.ID)
	require.NoError(t, err)
	require.NotNil(t, me.AvatarURL)
	assert.Equal(t, "/api/users/"+u.ID+"/avatar", *me.AvatarURL)
	assert.Equal(t, []string{shared.EventAvatarReady}, rec.Types(u.ID))
}

func TestGetAvatarMissing(t *testing.T) {
	_, err := NewGetAvatarUseCase(usertest.NewRepository()).Execute(context.Background(), "user-9")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
