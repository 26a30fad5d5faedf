package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/httpx"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/user/application/usecase"
)

// GetUserController returns the authenticated user.
type GetUserController struct {
	UC     *usecase.GetUserUseCase
	Logger *zap.Logger
}

func NewGetUserController(uc *usecase.GetUserUseCase, logger *zap.Logger) *GetUserController {
	return &GetUserController{UC: uc, Logger: logger}
}

func (h *GetUserController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := httpx.Timeout(c, httpx.DefaultTimeout)
		defer cancel()

		u, err := h.UC.Execute(ctx, httpx.UserID(c))
		if err != nil {
			httpx.RespondError(c, h.Logger, err)
			return
		}
		c.JSON(http.StatusOK, u)
	}
}
