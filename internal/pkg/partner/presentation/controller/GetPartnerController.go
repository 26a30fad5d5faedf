package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/httpx"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/partner/application/usecase"
)

type GetPartnerController struct {
	UC     *usecase.GetPartnerUseCase
	Logger *zap.Logger
}

func NewGetPartnerController(uc *usecase.GetPartnerUseCase, logger *zap.Logger) *GetPartnerController {
	return &GetPartnerController{UC: uc, Logger: logger}
}

func (h *GetPartnerController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := httpx.Timeout(c, httpx.DefaultTimeout)
		defer cancel()

		p, err := h.UC.Execute(ctx, httpx.UserID(c))
		if err != nil {
			httpx.RespondError(c, h.Logger, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}
