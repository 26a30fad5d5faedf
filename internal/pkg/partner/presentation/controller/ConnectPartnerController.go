package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/httpx"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/partner/application/usecase"
)

// ConnectPartnerController links the signed-in account through an invitation.
type ConnectPartnerController struct {
	UC     *usecase.ConnectPartnerUseCase
	Logger *zap.Logger
}

func NewConnectPartnerController(uc *usecase.ConnectPartnerUseCase, logger *zap.Logger) *ConnectPartnerController {
	return &ConnectPartnerController{UC: uc, Logger: logger}
}

func (h *ConnectPartnerController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := httpx.Timeout(c, httpx.DefaultTimeout)
		defer cancel()

		userID := httpx.UserID(c)
		ps, err := h.UC.Execute(ctx, c.Param("token"), userID)
		if err != nil {
			respondRedeemError(c, h.Logger, err, nil)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"partnership_id": ps.ID,
			"partner_id":     ps.Other(userID),
		})
	}
}
