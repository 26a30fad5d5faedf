package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/auth"
)

type LogoutController struct {
	Sessions *auth.SessionManager
}

func NewLogoutController(sessions *auth.SessionManager) *LogoutController {
	return &LogoutController{Sessions: sessions}
}

func (h *LogoutController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		h.Sessions.ClearCookie(c)
		c.Status(http.StatusNoContent)
	}
}
