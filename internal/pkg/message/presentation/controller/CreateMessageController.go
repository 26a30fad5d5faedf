package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/httpx"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/message/application/usecase"
)

type CreateMessageController struct {
	UC     *usecase.CreateMessageUseCase
	Logger *zap.Logger
}

func NewCreateMessageController(uc *usecase.CreateMessageUseCase, logger *zap.Logger) *CreateMessageController {
	return &CreateMessageController{UC: uc, Logger: logger}
}

type createMessageRequest struct {
	OriginalMessage       string   `json:"original_message" binding:"required"`
	TransformedMessage    string   `json:"transformed_message" binding:"required"`
	Context               *string  `json:"context"`
	CommunicationElements []string `json:"communication_elements"`
	DeliveryTips          []string `json:"delivery_tips"`
	IsShared              bool     `json:"is_shared"`
}

func (h *CreateMessageController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createMessageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.BadRequest(c, err.Error())
			return
		}

		ctx, cancel := httpx.Timeout(c, httpx.DefaultTimeout)
		defer cancel()

		m, err := h.UC.Execute(ctx, usecase.CreateMessageInput{
			UserID:                httpx.UserID(c),
			OriginalMessage:       req.OriginalMessage,
			TransformedMessage:    req.TransformedMessage,
			Context:               req.Context,
			CommunicationElements: req.CommunicationElements,
			DeliveryTips:          req.DeliveryTips,
			IsShared:              req.IsShared,
		})
		if err != nil {
			httpx.RespondError(c, h.Logger, err)
			return
		}
		c.JSON(http.StatusCreated, m)
	}
}
