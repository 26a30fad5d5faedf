package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/httpx"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/conflict/application/usecase"
)

type CreateThreadController struct {
	UC     *usecase.CreateThreadUseCase
	Logger *zap.Logger
}

func NewCreateThreadController(uc *usecase.CreateThreadUseCase, logger *zap.Logger) *CreateThreadController {
	return &CreateThreadController{UC: uc, Logger: logger}
}

type createThreadRequest struct {
	Topic       string  `json:"topic" binding:"required"`
	Description *string `json:"description"`
}

func (h *CreateThreadController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createThreadRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.BadRequest(c, err.Error())
			return
		}

		ctx, cancel := httpx.Timeout(c, httpx.DefaultTimeout)
		defer cancel()

		t, err := h.UC.Execute(ctx, usecase.CreateThreadInput{UserID: httpx.UserID(c), Topic: req.Topic, Description: req.Description})
		if err != nil {
			httpx.RespondError(c, h.Logger, err)
			return
		}
		c.JSON(http.StatusCreated, t)
	}
}
