package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/httpx"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/user/application/usecase"
)

// RequestAvatarController queues avatar generation and answers 202.
type RequestAvatarController struct {
	UC     *usecase.RequestAvatarUseCase
	Logger *zap.Logger
}

func NewRequestAvatarController(uc *usecase.RequestAvatarUseCase, logger *zap.Logger) *RequestAvatarController {
	return &RequestAvatarController{UC: uc, Logger: logger}
}

type requestAvatarRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

func (h *RequestAvatarController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req requestAvatarRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.BadRequest(c, err.Error())
			return
		}

		ctx, cancel := httpx.Timeout(c, httpx.DefaultTimeout)
		defer cancel()

		id, err := h.UC.Execute(ctx, httpx.UserID(c), req.Prompt)
		if err != nil {
			httpx.RespondError(c, h.Logger, err)
			return
		}
		c.JSON(http.StatusAccepted, gin.H{"status": "queued", "task_id": id})
	}
}
