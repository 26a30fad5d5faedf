package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/httpx"
	journal "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/journal/application/domain"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/journal/application/usecase"
)

type DeleteEntryController struct {
	UC     *usecase.DeleteEntryUseCase
	Logger *zap.Logger
}

func NewDeleteEntryController(uc *usecase.DeleteEntryUseCase, logger *zap.Logger) *DeleteEntryController {
	return &DeleteEntryController{UC: uc, Logger: logger}
}

func (h *DeleteEntryController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := httpx.ParamID(c, "id", journal.ErrEntryNotFound)
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
