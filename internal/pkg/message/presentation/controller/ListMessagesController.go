package controller

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/httpx"
	message "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/message/application/domain"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/message/application/usecase"
)

// ListMessagesController pages through either the caller's own messages or
// the partner's shared ones.
type ListMessagesController struct {
	List   func(ctx context.Context, userID string, limit, offset int) ([]message.Message, error)
	Logger *zap.Logger
}

func NewListMessagesController(uc *usecase.ListMessagesUseCase, logger *zap.Logger) *ListMessagesController {
	return &ListMessagesController{List: uc.Execute, Logger: logger}
}

func NewListPartnerMessagesController(uc *usecase.ListPartnerMessagesUseCase, logger *zap.Logger) *ListMessagesController {
	return &ListMessagesController{List: uc.Execute, Logger: logger}
}

func (h *ListMessagesController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, offset := httpx.Page(c)

		ctx, cancel := httpx.Timeout(c, httpx.DefaultTimeout)
		defer cancel()

		out, err := h.List(ctx, httpx.UserID(c), limit, offset)
		if err != nil {
			httpx.RespondError(c, h.Logger, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}
