package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/httpx"
	journal "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/journal/application/domain"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/journal/application/usecase"
)

type GetEntryController struct {
	UC     *usecase.GetEntryUseCase
	Logger *zap.Logger
}

func NewGetEntryController(uc *usecase.GetEntryUseCase, logger *zap.Logger) *GetEntryController {
	return &GetEntryController{UC: uc, Logger: logger}
}

func (h *GetEntryController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := httpx.ParamID(c, "id", journal.ErrEntryNotFound)
		if !ok {
			return
		}

		ctx, cancel := httpx.Timeout(c, httpx.DefaultTimeout)
		defer cancel()

		e, err := h.UC.Execute(ctx, id, httpx.UserID(c))
		if err != nil {
			httpx.RespondError(c, h.Logger, err)
			return
		}
		c.JSON(http.StatusOK, e)
	}
}
