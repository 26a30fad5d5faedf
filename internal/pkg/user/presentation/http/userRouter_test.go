package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/auth"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/httpx"
	queueadapter "github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/queue/adapter"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/user/usertest"
)

func newEngine(t *testing.T) (*gin.Engine, *auth.SessionManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	sessions := auth.NewSessionManager("0123456789abcdef0123456789abcdef", time.Hour, false)
	r := gin.New()
	api := r.Group("/api")
	private := api.Group("")
	private.Use(auth.RequireSession(sessions))
	q := queueadapter.NewInlineQueue(zap.NewNop())
	t.Cleanup(func() { _ = q.Close() })
	RegisterRoutes(httpx.Groups{Public: api, Private: private}, usertest.NewRepository(), q, sessions, auth.NewPasswordHasher(bcrypt.MinCost), nil, zap.NewNop())
	return r, sessions
}

func do(r *gin.Engine, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == auth.CookieName {
			return ck
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

func TestRegisterLoginMeFlow(t *testing.T) {
	r, _ := newEngine(t)

	rec := do(r, http.MethodPost, "/api/register", gin.H{"username": "robin", "email": "robin@example.com", "password": "s3cret-pass"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "password")

	rec = do(r, http.MethodPost, "/api/register", gin.H{"username": "robin", "email": "x@example.com", "password": "s3cret-pass"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(r, http.MethodPost, "/api/login", gin.H{"username": "robin", "password": "wrong-password"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(r, http.MethodPost, "/api/login", gin.H{"email": "robin@example.com", "password": "s3cret-pass"})
	require.Equal(t, http.StatusOK, rec.Code)
	cookie := sessionCookie(t, rec)

	rec = do(r, http.MethodGet, "/api/user", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	var me struct {
		Username string `json:"username"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &me))
	assert.Equal(t, "robin", me.Username)

	rec = do(r, http.MethodPatch, "/api/user", gin.H{"display_name": "Robin B."}, cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Robin B.")
}

func TestPrivateRoutesNeedSession(t *testing.T) {
	r, _ := newEngine(t)
	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/api/user", nil).Code)
}

func TestLogoutExpiresCookie(t *testing.T) {
	r, _ := newEngine(t)
	rec := do(r, http.MethodPost, "/api/logout", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	ck := sessionCookie(t, rec)
	assert.True(t, ck.MaxAge < 0)
}

func TestAvatarMissingIs404(t *testing.T) {
	r, sessions := newEngine(t)
	token, _, err := sessions.Issue("user-1")
	require.NoError(t, err)
	rec := do(r, http.MethodGet, "/api/users/user-1/avatar", nil, &http.Cookie{Name: auth.CookieName, Value: token})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
