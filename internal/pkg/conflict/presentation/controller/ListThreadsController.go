package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/httpx"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/conflict/application/usecase"
)

type ListThreadsController struct {
	UC     *usecase.ListThreadsUseCase
	Logger *zap.Logger
}

func NewListThreadsController(uc *usecase.ListThreadsUseCase, logger *zap.Logger) *ListThreadsController {
	return &ListThreadsController{UC: uc, Logger: logger}
}

func (h *ListThreadsController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := httpx.Timeout(c, httpx.DefaultTimeout)
		defer cancel()

		out, err := h.UC.Execute(ctx, httpx.UserID(c), c.Query("status"))
		if err != nil {
			httpx.RespondError(c, h.Logger, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}
