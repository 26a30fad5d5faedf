package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/auth"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/httpx"
	queueport "github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/queue/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/user/application/usecase"
	repository "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/user/persistence/repository/port"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/user/presentation/controller"
)

// RegisterRoutes registers account endpoints. Registration and login are
// public; everything else needs a session. limit guards the avatar request,
// which calls the image model, and may be nil.
func RegisterRoutes(g httpx.Groups, repo repository.UserRepository, q queueport.Client, sessions *auth.SessionManager, hasher usecase.PasswordHasher, limit gin.HandlerFunc, logger *zap.Logger) {
	registerCtl := controller.NewRegisterController(usecase.NewRegisterUseCase(repo, hasher), sessions, logger)
	loginCtl := controller.NewLoginController(usecase.NewLoginUseCase(repo, hasher), sessions, logger)
	logoutCtl := controller.NewLogoutController(sessions)
	meCtl := controller.NewGetUserController(usecase.NewGetUserUseCase(repo), logger)
	updateCtl := controller.NewUpdateProfileController(usecase.NewUpdateProfileUseCase(repo), logger)
	requestAvatarCtl := controller.NewRequestAvatarController(usecase.NewRequestAvatarUseCase(q), logger)
	getAvatarCtl := controller.NewGetAvatarController(usecase.NewGetAvatarUseCase(repo), logger)

	g.Public.POST("/register", registerCtl.Handle())
	g.Public.POST("/login", loginCtl.Handle())
	g.Public.POST("/logout", logoutCtl.Handle())

	g.Private.GET("/user", meCtl.Handle())
	g.Private.PATCH("/user", updateCtl.Handle())
	requestAvatar := []gin.HandlerFunc{requestAvatarCtl.Handle()}
	if limit != nil {
		requestAvatar = append([]gin.HandlerFunc{limit}, requestAvatar...)
	}
	g.Private.POST("/user/avatar", requestAvatar...)
	g.Private.GET("/users/:id/avatar", getAvatarCtl.Handle())
}
