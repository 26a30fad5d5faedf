package controller

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/httpx"
	journal "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/journal/application/domain"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/journal/application/usecase"
)

// ListEntriesController serves both the own and the shared listing; the
// lister decides whose entries are returned.
type ListEntriesController struct {
	List   func(ctx context.Context, userID string, limit, offset int) ([]journal.Entry, error)
	Logger *zap.Logger
}

func NewListEntriesController(uc *usecase.ListEntriesUseCase, logger *zap.Logger) *ListEntriesController {
	return &ListEntriesController{List: uc.Execute, Logger: logger}
}

func NewListSharedEntriesController(uc *usecase.ListSharedEntriesUseCase, logger *zap.Logger) *ListEntriesController {
	return &ListEntriesController{List: uc.Execute, Logger: logger}
}

func (h *ListEntriesController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, offset := httpx.Page(c)

		ctx, cancel := httpx.Timeout(c, httpx.DefaultTimeout)
		defer cancel()

		entries, err := h.List(ctx, httpx.UserID(c), limit, offset)
		if err != nil {
			httpx.RespondError(c, h.Logger, err)
			return
		}
		c.JSON(http.StatusOK, entries)
	}
}
