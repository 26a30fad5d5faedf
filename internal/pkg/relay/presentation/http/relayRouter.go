package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/auth"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/realtime"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/relay/presentation/controller"
)

// RegisterRoutes mounts the relay socket at /ws. The controller authenticates
// the upgrade itself.
func RegisterRoutes(r gin.IRoutes, relay *realtime.Relay, sessions *auth.SessionManager, allowedOrigin string, logger *zap.Logger) {
	socketCtl := controller.NewSocketController(relay, sessions, allowedOrigin, logger)
	r.GET("/ws", socketCtl.Handle())
}
