package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/httpx"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/partner/application/usecase"
)

// GetInvitationController lets an invitee preview an invitation without signing in.
type GetInvitationController struct {
	UC     *usecase.GetInvitationUseCase
	Logger *zap.Logger
}

func NewGetInvitationController(uc *usecase.GetInvitationUseCase, logger *zap.Logger) *GetInvitationController {
	return &GetInvitationController{UC: uc, Logger: logger}
}

func (h *GetInvitationController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := httpx.Timeout(c, httpx.DefaultTimeout)
		defer cancel()

		inv, err := h.UC.Execute(ctx, c.Param("token"))
		if err != nil {
			httpx.RespondError(c, h.Logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"inviter_name": inv.InviterName,
			"email":        inv.Email,
			"status":       inv.Status,
			"expires_at":   inv.ExpiresAt,
		})
	}
}
