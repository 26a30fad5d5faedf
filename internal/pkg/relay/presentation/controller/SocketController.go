package controller

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/auth"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/realtime"
)

const (
	defaultReadTimeout = 60 * time.Second
	readLimit          = 64 << 10
	forwardTimeout     = 5 * time.Second
)

// SocketController upgrades authenticated requests to relay sockets and
// pumps client frames into the relay.
type SocketController struct {
	relay    *realtime.Relay
	sessions *auth.SessionManager
	upgrader websocket.Upgrader
	logger   *zap.Logger
}

// NewSocketController accepts upgrades from the request's own host and from
// the host of allowedOrigin (the public app URL, may be empty).
func NewSocketController(relay *realtime.Relay, sessions *auth.SessionManager, allowedOrigin string, logger *zap.Logger) *SocketController {
	allowedHost := ""
	if u, err := url.Parse(allowedOrigin); err == nil {
		allowedHost = u.Host
	}
	return &SocketController{
		relay:    relay,
		sessions: sessions,
		logger:   logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return originAllowed(r, allowedHost)
			},
		},
	}
}

func originAllowed(r *http.Request, allowedHost string) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Host, r.Host) || (allowedHost != "" && strings.EqualFold(u.Host, allowedHost))
}

// userID authenticates the upgrade request. Browsers cannot set headers on
// websocket requests, so a ?token= query parameter is accepted as well.
func (ctl *SocketController) userID(r *http.Request) (string, error) {
	if id, err := ctl.sessions.Authenticate(r); err == nil {
		return id, nil
	}
	token := r.URL.Query().Get("token")
	if token == "" {
		return "", auth.ErrInvalidSession
	}
	claims, err := ctl.sessions.Parse(token)
	if err != nil {
		return "", err
	}
	return claims.UserID, nil
}

// Handle upgrades the connection and processes frames until the client
// disconnects.
func (ctl *SocketController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := ctl.userID(c.Request)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		ws, err := ctl.upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			// Upgrade already wrote the response.
			ctl.logger.Debug("websocket upgrade failed", zap.Error(err))
			return
		}

		hub := ctl.relay.Hub()
		conn := realtime.NewConnection(userID, ws)
		if !hub.Attach(conn) {
			return
		}
		defer func() {
			hub.Detach(conn)
			conn.Close(websocket.CloseNormalClosure, "session closed")
		}()

		ws.SetReadLimit(readLimit)
		_ = ws.SetReadDeadline(time.Now().Add(defaultReadTimeout))
		ws.SetPongHandler(func(string) error {
			return ws.SetReadDeadline(time.Now().Add(defaultReadTimeout))
		})

		_ = conn.Send(realtime.ControlFrame(realtime.TypeConnected, gin.H{"session_id": conn.SessionID}))

		for {
			_, data, err := ws.ReadMessage()
			if err != nil {
				if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived) &&
					!errors.Is(err, websocket.ErrCloseSent) {
					ctl.logger.Debug("websocket read ended", zap.String("user_id", userID), zap.Error(err))
				}
				return
			}
			_ = ws.SetReadDeadline(time.Now().Add(defaultReadTimeout))

			env, err := realtime.ParseEnvelope(data)
			if err != nil {
				_ = conn.Send(realtime.ErrorFrame("bad_request", "invalid payload"))
				continue
			}
			if env.Type == realtime.TypePing {
				_ = conn.Send(realtime.ControlFrame(realtime.TypePong, nil))
				continue
			}

			ctx, cancel := context.WithTimeout(c.Request.Context(), forwardTimeout)
			ctl.relay.Forward(ctx, conn, env)
			cancel()
		}
	}
}
