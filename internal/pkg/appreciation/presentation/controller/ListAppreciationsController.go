package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/httpx"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/appreciation/application/usecase"
)

type ListAppreciationsController struct {
	UC     *usecase.ListAppreciationsUseCase
	Logger *zap.Logger
}

func NewListAppreciationsController(uc *usecase.ListAppreciationsUseCase, logger *zap.Logger) *ListAppreciationsController {
	return &ListAppreciationsController{UC: uc, Logger: logger}
}

func (h *ListAppreciationsController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, offset := httpx.Page(c)

		ctx, cancel := httpx.Timeout(c, httpx.DefaultTimeout)
		defer cancel()

		out, err := h.UC.Execute(ctx, httpx.UserID(c), limit, offset)
		if err != nil {
			httpx.RespondError(c, h.Logger, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}
