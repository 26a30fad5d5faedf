package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/httpx"
	conflict "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/conflict/application/domain"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/conflict/application/usecase"
)

type AddMessageController struct {
	UC *usecase.AddMessageUseCase
	// LimitAI is consulted only when the message asks for an AI rewrite. It
	// writes the rejection itself. Nil means unlimited.
	LimitAI func(c *gin.Context) bool
	Logger  *zap.Logger
}

func NewAddMessageController(uc *usecase.AddMessageUseCase, limitAI func(c *gin.Context) bool, logger *zap.Logger) *AddMessageController {
	return &AddMessageController{UC: uc, LimitAI: limitAI, Logger: logger}
}

type addMessageRequest struct {
	Content   string `json:"content" binding:"required"`
	Transform bool   `json:"transform"`
}

func (h *AddMessageController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := httpx.ParamID(c, "id", conflict.ErrThreadNotFound)
		if !ok {
			return
		}

		var req addMessageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.BadRequest(c, err.Error())
			return
		}
		if req.Transform && h.LimitAI != nil && !h.LimitAI(c) {
			return
		}

		ctx, cancel := httpx.Timeout(c, aiTimeout)
		defer cancel()

		m, err := h.UC.Execute(ctx, usecase.AddMessageInput{
			ThreadID:  id,
			UserID:    httpx.UserID(c),
			Content:   req.Content,
			Transform: req.Transform,
		})
		if err != nil {
			httpx.RespondError(c, h.Logger, err)
			return
		}
		c.JSON(http.StatusCreated, m)
	}
}
