package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/auth"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/realtime"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared/sharedtest"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type relayServer struct {
	url      string
	sessions *auth.SessionManager
}

func newRelayServer(t *testing.T) *relayServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	partners := sharedtest.NewPartners()
	partners.Link("ps-1", "alice", "bob")
	sessions := auth.NewSessionManager(testSecret, time.Hour, false)
	relay := realtime.NewRelay(realtime.NewHub(), partners, nil, zap.NewNop())

	engine := gin.New()
	RegisterRoutes(engine, relay, sessions, "https://app.example.com", zap.NewNop())
	srv := httptest.NewServer(engine)
	t.Cleanup(func() {
		relay.Hub().Close()
		srv.Close()
	})
	return &relayServer{url: "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws", sessions: sessions}
}

func (s *relayServer) dial(t *testing.T, userID string, header http.Header) (*websocket.Conn, *http.Response, error) {
	t.Helper()
	u := s.url
	if userID != "" {
		token, _, err := s.sessions.Issue(userID)
		require.NoError(t, err)
		u += "?token=" + token
	}
	ws, resp, err := websocket.DefaultDialer.Dial(u, header)
	if err == nil {
		t.Cleanup(func() { _ = ws.Close() })
	}
	return ws, resp, err
}

func mustDial(t *testing.T, s *relayServer, userID string) *websocket.Conn {
	t.Helper()
	ws, _, err := s.dial(t, userID, nil)
	require.NoError(t, err)
	assert.Equal(t, realtime.TypeConnected, gjson.Get(readFrame(t, ws), "type").String())
	return ws
}

func readFrame(t *testing.T, ws *websocket.Conn) string {
	t.Helper()
	require.NoError(t, ws.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := ws.ReadMessage()
	require.NoError(t, err)
	return string(data)
}

func TestSocketRejectsAnonymousUpgrade(t *testing.T) {
	s := newRelayServer(t)
	_, resp, err := s.dial(t, "", nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSocketRejectsForeignOrigin(t *testing.T) {
	s := newRelayServer(t)
	_, resp, err := s.dial(t, "alice", http.Header{"Origin": []string{"https://evil.example.net"}})
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestSocketAcceptsConfiguredOrigin(t *testing.T) {
	s := newRelayServer(t)
	ws, _, err := s.dial(t, "alice", http.Header{"Origin": []string{"https://app.example.com"}})
	require.NoError(t, err)
	assert.Equal(t, realtime.TypeConnected, gjson.Get(readFrame(t, ws), "type").String())
}

func TestSocketForwardsToPartnerAndOtherSessions(t *testing.T) {
	s := newRelayServer(t)
	alice := mustDial(t, s, "alice")
	aliceTab := mustDial(t, s, "alice")
	bob := mustDial(t, s, "bob")

	require.NoError(t, alice.WriteMessage(websocket.TextMessage, []byte(`{"type":"typing","data":{"active":true}}`)))

	for _, ws := range []*websocket.Conn{aliceTab, bob} {
		frame := readFrame(t, ws)
		assert.Equal(t, "typing", gjson.Get(frame, "type").String())
		assert.True(t, gjson.Get(frame, "data.active").Bool())
	}

	require.NoError(t, alice.SetReadDeadline(time.Now().Add(150*time.Millisecond)))
	_, _, err := alice.ReadMessage()
	assert.Error(t, err, "sender must not receive its own frame")
}

func TestSocketAnswersPingAndBadFrames(t *testing.T) {
	s := newRelayServer(t)
	alice := mustDial(t, s, "alice")

	require.NoError(t, alice.WriteMessage(websocket.TextMessage, []byte(`{"type":"ping"}`)))
	assert.Equal(t, realtime.TypePong, gjson.Get(readFrame(t, alice), "type").String())

	require.NoError(t, alice.WriteMessage(websocket.TextMessage, []byte("not json")))
	frame := readFrame(t, alice)
	assert.Equal(t, realtime.TypeError, gjson.Get(frame, "type").String())
	assert.Equal(t, "bad_request", gjson.Get(frame, "code").String())
}
