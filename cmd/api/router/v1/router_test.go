package v1

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	aiadapter "github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/ai/adapter"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/auth"
	cacheadapter "github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/cache/adapter"
	qadapter "github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/queue/adapter"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/ratelimit"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/realtime"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared/sharedtest"
)

const testSecret = "0123456789abcdef0123456789abcdef"

// newTestEngine wires the engine without a database. Only routes that fail
// before reaching a repository are exercised.
func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	return NewEngine(testDeps(t))
}

func testDeps(t *testing.T) Deps {
	t.Helper()
	gin.SetMode(gin.TestMode)
	partners := sharedtest.NewPartners()
	return Deps{
		Cache:         cacheadapter.NewMemoryCache(),
		Queue:         qadapter.NewInlineQueue(zap.NewNop()),
		Relay:         realtime.NewRelay(realtime.NewHub(), partners, nil, zap.NewNop()),
		Partners:      partners,
		Sessions:      auth.NewSessionManager(testSecret, time.Hour, false),
		Hasher:        auth.NewPasswordHasher(bcrypt.MinCost),
		AI:            AI{Transformer: aiadapter.Unavailable{}, Summarizer: aiadapter.Unavailable{}},
		BaseURL:       "http://localhost:5000",
		InvitationTTL: time.Hour,
		Logger:        zap.NewNop(),
	}
}

func TestEngineRoutes(t *testing.T) {
	r := newTestEngine(t)

	cases := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{"root", http.MethodGet, "/", "", http.StatusOK},
		{"metrics", http.MethodGet, "/metrics", "", http.StatusOK},
		{"socket needs session", http.MethodGet, "/ws", "", http.StatusUnauthorized},
		{"private journal", http.MethodGet, "/api/journal", "", http.StatusUnauthorized},
		{"private transform", http.MethodPost, "/api/transform", `{"message":"hi"}`, http.StatusUnauthorized},
		{"private conflicts", http.MethodGet, "/api/conflict-threads", "", http.StatusUnauthorized},
		{"public login validates", http.MethodPost, "/api/login", `{}`, http.StatusBadRequest},
		{"unknown", http.MethodGet, "/api/nope", "", http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			if tc.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

func TestEngineServesExerciseTemplatesWithSession(t *testing.T) {
	r := newTestEngine(t)
	token, _, err := auth.NewSessionManager(testSecret, time.Hour, false).Issue("alice")
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/exercises/templates", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "active_listening")
}

func TestEngineThrottlesAvatarRequests(t *testing.T) {
	d := testDeps(t)
	d.AILimiter = ratelimit.New(10, 3)
	r := NewEngine(d)
	token, _, err := auth.NewSessionManager(testSecret, time.Hour, false).Issue("alice")
	assert.NoError(t, err)

	codes := map[int]int{}
	for i := 0; i < 20; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/user/avatar", strings.NewReader(`{"prompt":"a fox in a scarf"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		codes[rec.Code]++
	}
	assert.Equal(t, 3, codes[http.StatusAccepted])
	assert.Equal(t, 17, codes[http.StatusTooManyRequests])
}
