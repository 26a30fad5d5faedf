package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/auth"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/httpx"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/user/application/usecase"
)

// RegisterController handles account creation (one controller per endpoint)
type RegisterController struct {
	UC       *usecase.RegisterUseCase
	Sessions *auth.SessionManager
	Logger   *zap.Logger
}

func NewRegisterController(uc *usecase.RegisterUseCase, sessions *auth.SessionManager, logger *zap.Logger) *RegisterController {
	return &RegisterController{UC: uc, Sessions: sessions, Logger: logger}
}

type registerRequest struct {
	Username    string `json:"username" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	DisplayName string `json:"display_name"`
}

func (h *RegisterController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.BadRequest(c, err.Error())
			return
		}

		ctx, cancel := httpx.Timeout(c, httpx.DefaultTimeout)
		defer cancel()

		u, err := h.UC.Execute(ctx, usecase.RegisterInput{
			Username:    req.Username,
			Email:       req.Email,
			Password:    req.Password,
			DisplayName: req.DisplayName,
		})
		if err != nil {
			httpx.RespondError(c, h.Logger, err)
			return
		}
		startSession(c, h.Sessions, h.Logger, http.StatusCreated, u)
	}
}
