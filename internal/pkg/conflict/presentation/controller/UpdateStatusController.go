package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/httpx"
	conflict "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/conflict/application/domain"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/conflict/application/usecase"
)

// aiTimeout bounds handlers that may call the model.
const aiTimeout = 45 * time.Second

type UpdateStatusController struct {
	UC     *usecase.UpdateStatusUseCase
	Logger *zap.Logger
}

func NewUpdateStatusController(uc *usecase.UpdateStatusUseCase, logger *zap.Logger) *UpdateStatusController {
	return &UpdateStatusController{UC: uc, Logger: logger}
}

type updateStatusRequest struct {
	Status            string  `json:"status" binding:"required"`
	ResolutionSummary *string `json:"resolution_summary"`
}

func (h *UpdateStatusController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := httpx.ParamID(c, "id", conflict.ErrThreadNotFound)
		if !ok {
			return
		}

		var req updateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.BadRequest(c, err.Error())
			return
		}

		ctx, cancel := httpx.Timeout(c, aiTimeout)
		defer cancel()

		t, err := h.UC.Execute(ctx, usecase.UpdateStatusInput{
			ThreadID:          id,
			UserID:            httpx.UserID(c),
			Status:            req.Status,
			ResolutionSummary: req.ResolutionSummary,
		})
		if err != nil {
			httpx.RespondError(c, h.Logger, err)
			return
		}
		c.JSON(http.StatusOK, t)
	}
}
