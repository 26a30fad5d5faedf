package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/httpx"
	milestone "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/milestone/application/domain"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/milestone/application/usecase"
)

type DeleteMilestoneController struct {
	UC     *usecase.DeleteMilestoneUseCase
	Logger *zap.Logger
}

func NewDeleteMilestoneController(uc *usecase.DeleteMilestoneUseCase, logger *zap.Logger) *DeleteMilestoneController {
	return &DeleteMilestoneController{UC: uc, Logger: logger}
}

func (h *DeleteMilestoneController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := httpx.ParamID(c, "id", milestone.ErrMilestoneNotFound)
		if !ok {
			return
		}

		ctx, cancel := httpx.Timeout(c, httpx.DefaultTimeout)
		defer cancel()

		if err := h.UC.Execute(ctx, id, httpx.UserID(c)); err != nil {
			httpx.RespondError(c, h.Logger, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
