package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/httpx"
	message "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/message/application/domain"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/message/application/usecase"
)

type ListResponsesController struct {
	UC     *usecase.ListResponsesUseCase
	Logger *zap.Logger
}

func NewListResponsesController(uc *usecase.ListResponsesUseCase, logger *zap.Logger) *ListResponsesController {
	return &ListResponsesController{UC: uc, Logger: logger}
}

func (h *ListResponsesController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := httpx.ParamID(c, "id", message.ErrMessageNotFound)
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
