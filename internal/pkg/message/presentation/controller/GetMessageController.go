package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/httpx"
	message "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/message/application/domain"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/message/application/usecase"
)

type GetMessageController struct {
	UC     *usecase.GetMessageUseCase
	Logger *zap.Logger
}

func NewGetMessageController(uc *usecase.GetMessageUseCase, logger *zap.Logger) *GetMessageController {
	return &GetMessageController{UC: uc, Logger: logger}
}

func (h *GetMessageController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := httpx.ParamID(c, "id", message.ErrMessageNotFound)
		if !ok {
			return
		}

		ctx, cancel := httpx.Timeout(c, httpx.DefaultTimeout)
		defer cancel()

		m, err := h.UC.Execute(ctx, id, httpx.UserID(c))
		if err != nil {
			httpx.RespondError(c, h.Logger, err)
			return
		}
		c.JSON(http.StatusOK, m)
	}
}
