package sharedtest

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/auth"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/httpx"
)

// Server is a gin engine mounted like production: public and session-guarded
// groups under /api.
type Server struct {
	Engine   *gin.Engine
	Groups   httpx.Groups
	Sessions *auth.SessionManager
}

func NewServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	s := &Server{
		Engine:   gin.New(),
		Sessions: auth.NewSessionManager("0123456789abcdef0123456789abcdef", time.Hour, false),
	}
	api := s.Engine.Group("/api")
	private := api.Group("")
	private.Use(auth.RequireSession(s.Sessions))
	s.Groups = httpx.Groups{Public: api, Private: private}
	return s
}

// Do sends a JSON request as userID ("" for anonymous).
func (s *Server) Do(t *testing.T, method, path, userID string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		token, _, err := s.Sessions.Issue(userID)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.Engine.ServeHTTP(rec, req)
	return rec
}

// Decode unmarshals a response body into v.
func Decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}
