package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/httpx"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/milestone/application/usecase"
)

type ListMilestonesController struct {
	UC     *usecase.ListMilestonesUseCase
	Logger *zap.Logger
}

func NewListMilestonesController(uc *usecase.ListMilestonesUseCase, logger *zap.Logger) *ListMilestonesController {
	return &ListMilestonesController{UC: uc, Logger: logger}
}

func (h *ListMilestonesController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := httpx.Timeout(c, httpx.DefaultTimeout)
		defer cancel()

		out, err := h.UC.Execute(ctx, httpx.UserID(c))
		if err != nil {
			httpx.RespondError(c, h.Logger, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}
