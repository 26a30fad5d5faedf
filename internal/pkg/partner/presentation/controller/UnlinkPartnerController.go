package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/httpx"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/partner/application/usecase"
)

type UnlinkPartnerController struct {
	UC     *usecase.UnlinkPartnerUseCase
	Logger *zap.Logger
}

func NewUnlinkPartnerController(uc *usecase.UnlinkPartnerUseCase, logger *zap.Logger) *UnlinkPartnerController {
	return &UnlinkPartnerController{UC: uc, Logger: logger}
}

func (h *UnlinkPartnerController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := httpx.Timeout(c, httpx.DefaultTimeout)
		defer cancel()

		if err := h.UC.Execute(ctx, httpx.UserID(c)); err != nil {
			httpx.RespondError(c, h.Logger, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
