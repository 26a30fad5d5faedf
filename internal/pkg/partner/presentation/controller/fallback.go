package controller

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/httpx"
	partner "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/partner/application/domain"
)

// FallbackLoginAndConnect tells the client to sign in and use the connect endpoint.
const FallbackLoginAndConnect = "login_and_connect"

// respondRedeemError adds the fallback hint to used or expired invitations.
func respondRedeemError(c *gin.Context, logger *zap.Logger, err error, extra gin.H) {
	if !errors.Is(err, partner.ErrInvitationUsed) {
		httpx.RespondError(c, logger, err)
		return
	}
	body := gin.H{"error": err.Error(), "fallback": FallbackLoginAndConnect}
	for k, v := range extra {
		body[k] = v
	}
	c.AbortWithStatusJSON(httpx.StatusFor(err), body)
}
