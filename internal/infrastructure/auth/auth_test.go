package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/httpx"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestSessionRoundTrip(t *testing.T) {
	m := NewSessionManager(testSecret, time.Hour, false)
	token, exp, err := m.Issue("user-1")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, time.Minute)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
}

func TestSessionRejectsExpiredAndForeignTokens(t *testing.T) {
	m := NewSessionManager(testSecret, time.Hour, false)
	token, _, err := m.Issue("user-1")
	require.NoError(t, err)

	m.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = m.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidSession)

	other := NewSessionManager("another-secret-another-secret-xx", time.Hour, false)
	foreign, _, err := other.Issue("user-1")
	require.NoError(t, err)
	_, err = NewSessionManager(testSecret, time.Hour, false).Parse(foreign)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestPasswordHasher(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)
	hash, err := h.Hash("correct horse")
	require.NoError(t, err)

	ok, err := h.Compare(hash, "correct horse")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Compare(hash, "wrong")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = h.Compare("not-a-hash", "x")
	assert.Error(t, err)
}

func TestRequireSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewSessionManager(testSecret, time.Hour, false)
	r := gin.New()
	r.GET("/me", RequireSession(m), func(c *gin.Context) {
		c.String(http.StatusOK, httpx.UserID(c))
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token, _, err := m.Issue("user-7")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-7", rec.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
