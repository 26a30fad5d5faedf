package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/httpx"
	conflict "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/conflict/application/domain"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/conflict/application/usecase"
)

type ListThreadMessagesController struct {
	UC     *usecase.ListThreadMessagesUseCase
	Logger *zap.Logger
}

func NewListThreadMessagesController(uc *usecase.ListThreadMessagesUseCase, logger *zap.Logger) *ListThreadMessagesController {
	return &ListThreadMessagesController{UC: uc, Logger: logger}
}

func (h *ListThreadMessagesController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := httpx.ParamID(c, "id", conflict.ErrThreadNotFound)
		if !ok {
			return
		}

		ctx, cancel := httpx.Timeout(c, httpx.DefaultTimeout)
		defer cancel()

		out, err := h.UC.Execute(ctx, id, httpx.UserID(c))
		if err != nil {
			httpx.RespondError(c, h.Logger, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}
