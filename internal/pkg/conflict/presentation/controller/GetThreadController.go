package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/httpx"
	conflict "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/conflict/application/domain"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/conflict/application/usecase"
)

type GetThreadController struct {
	UC     *usecase.GetThreadUseCase
	Logger *zap.Logger
}

func NewGetThreadController(uc *usecase.GetThreadUseCase, logger *zap.Logger) *GetThreadController {
	return &GetThreadController{UC: uc, Logger: logger}
}

func (h *GetThreadController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := httpx.ParamID(c, "id", conflict.ErrThreadNotFound)
		if !ok {
			return
		}

		ctx, cancel := httpx.Timeout(c, httpx.DefaultTimeout)
		defer cancel()

		t, err := h.UC.Execute(ctx, id, httpx.UserID(c))
		if err != nil {
			httpx.RespondError(c, h.Logger, err)
			return
		}
		c.JSON(http.StatusOK, t)
	}
}
