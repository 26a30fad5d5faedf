package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/auth"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/httpx"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/user/application/usecase"
)

type LoginController struct {
	UC       *usecase.LoginUseCase
	Sessions *auth.SessionManager
	Logger   *zap.Logger
}

func NewLoginController(uc *usecase.LoginUseCase, sessions *auth.SessionManager, logger *zap.Logger) *LoginController {
	return &LoginController{UC: uc, Sessions: sessions, Logger: logger}
}

// loginRequest accepts either "username" or "email" as the login name.
type loginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password" binding:"required"`
}

func (h *LoginController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.BadRequest(c, err.Error())
			return
		}
		login := req.Username
		if login == "" {
			login = req.Email
		}

		ctx, cancel := httpx.Timeout(c, httpx.DefaultTimeout)
		defer cancel()

		u, err := h.UC.Execute(ctx, usecase.LoginInput{Login: login, Password: req.Password})
		if err != nil {
			httpx.RespondError(c, h.Logger, err)
			return
		}
		startSession(c, h.Sessions, h.Logger, http.StatusOK, u)
	}
}
