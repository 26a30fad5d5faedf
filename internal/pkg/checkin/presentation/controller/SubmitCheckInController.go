package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/httpx"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/checkin/application/usecase"
)

type SubmitCheckInController struct {
	UC     *usecase.SubmitCheckInUseCase
	Logger *zap.Logger
}

func NewSubmitCheckInController(uc *usecase.SubmitCheckInUseCase, logger *zap.Logger) *SubmitCheckInController {
	return &SubmitCheckInController{UC: uc, Logger: logger}
}

type submitRequest struct {
	PromptID string `json:"prompt_id" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
	Rating   int    `json:"rating" binding:"required"`
	IsShared bool   `json:"is_shared"`
}

func (h *SubmitCheckInController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req submitRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.BadRequest(c, err.Error())
			return
		}

		ctx, cancel := httpx.Timeout(c, httpx.DefaultTimeout)
		defer cancel()

		r, err := h.UC.Execute(ctx, usecase.SubmitCheckInInput{
			UserID:   httpx.UserID(c),
			PromptID: req.PromptID,
			Answer:   req.Answer,
			Rating:   req.Rating,
			IsShared: req.IsShared,
		})
		if err != nil {
			httpx.RespondError(c, h.Logger, err)
			return
		}
		c.JSON(http.StatusOK, r)
	}
}
