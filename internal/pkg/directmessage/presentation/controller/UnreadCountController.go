package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/httpx"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/directmessage/application/usecase"
)

type UnreadCountController struct {
	UC     *usecase.UnreadCountUseCase
	Logger *zap.Logger
}

func NewUnreadCountController(uc *usecase.UnreadCountUseCase, logger *zap.Logger) *UnreadCountController {
	return &UnreadCountController{UC: uc, Logger: logger}
}

func (h *UnreadCountController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := httpx.Timeout(c, httpx.DefaultTimeout)
		defer cancel()

		n, err := h.UC.Execute(ctx, httpx.UserID(c))
		if err != nil {
			httpx.RespondError(c, h.Logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"count": n})
	}
}
