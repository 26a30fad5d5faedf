package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/httpx"
)

// RequireSession rejects requests without a valid session with 401 and
// records the user id for downstream handlers.
func RequireSession(m *SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c.Request)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		claims, err := m.Parse(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		httpx.SetUserID(c, claims.UserID)
		c.Next()
	}
}

// Authenticate resolves the session user of r without writing a response.
func (m *SessionManager) Authenticate(r *http.Request) (string, error) {
	token := tokenFromRequest(r)
	if token == "" {
		return "", ErrInvalidSession
	}
	claims, err := m.Parse(token)
	if err != nil {
		return "", err
	}
	return claims.UserID, nil
}

// SetCookie writes the session cookie.
func (m *SessionManager) SetCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, token, int(m.ttl.Seconds()), "/", "", m.secure, true)
}

// ClearCookie expires the session cookie.
func (m *SessionManager) ClearCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", m.secure, true)
}

func tokenFromRequest(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		parts := strings.SplitN(h, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	if ck, err := r.Cookie(CookieName); err == nil {
		return ck.Value
	}
	return ""
}
