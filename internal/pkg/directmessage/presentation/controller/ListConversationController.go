package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/httpx"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/directmessage/application/usecase"
)

type ListConversationController struct {
	UC     *usecase.ListConversationUseCase
	Logger *zap.Logger
}

func NewListConversationController(uc *usecase.ListConversationUseCase, logger *zap.Logger) *ListConversationController {
	return &ListConversationController{UC: uc, Logger: logger}
}

func (h *ListConversationController) Handle() gin.HandlerFunc {
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
