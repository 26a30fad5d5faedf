package controller

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/auth"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/httpx"
	user "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/user/application/domain"
)

// startSession issues a session cookie for u and writes u with the given status.
func startSession(c *gin.Context, sessions *auth.SessionManager, logger *zap.Logger, status int, u *user.User) {
	token, expires, err := sessions.Issue(u.ID)
	if err != nil {
		httpx.RespondError(c, logger, err)
		return
	}
	sessions.SetCookie(c, token)
	c.JSON(status, gin.H{
		"user":               u,
		"token":              token,
		"session_expires_at": expires,
	})
}

