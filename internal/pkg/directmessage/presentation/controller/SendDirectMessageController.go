package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/httpx"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/directmessage/application/usecase"
)

type SendDirectMessageController struct {
	UC     *usecase.SendDirectMessageUseCase
	Logger *zap.Logger
}

func NewSendDirectMessageController(uc *usecase.SendDirectMessageUseCase, logger *zap.Logger) *SendDirectMessageController {
	return &SendDirectMessageController{UC: uc, Logger: logger}
}

type sendRequest struct {
	Content string `json:"content" binding:"required"`
}

func (h *SendDirectMessageController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req sendRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.BadRequest(c, err.Error())
			return
		}

		ctx, cancel := httpx.Timeout(c, httpx.DefaultTimeout)
		defer cancel()

		m, err := h.UC.Execute(ctx, httpx.UserID(c), req.Content)
		if err != nil {
			httpx.RespondError(c, h.Logger, err)
			return
		}
		c.JSON(http.StatusCreated, m)
	}
}
