package realtime

import (
	"sync"

	"github.com/gorilla/websocket"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/metrics"
)

// Hub tracks the open connections of this node, indexed by session and by user.
type Hub struct {
	mu       sync.RWMutex
	sessions map[string]*Connection            // sessionID -> connection
	users    map[string]map[string]*Connection // userID -> sessionID -> connection
	closed   bool
}

func NewHub() *Hub {
	return &Hub{
		sessions: make(map[string]*Connection),
		users:    make(map[string]map[string]*Connection),
	}
}

// Attach registers conn and starts its writer. After Close the hub refuses
// new sockets: conn is closed and false is returned.
func (h *Hub) Attach(conn *Connection) bool {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		conn.Close(websocket.CloseGoingAway, "server shutdown")
		return false
	}
	h.sessions[conn.SessionID] = conn
	byUser := h.users[conn.UserID]
	if byUser == nil {
		byUser = make(map[string]*Connection)
		h.users[conn.UserID] = byUser
	}
	byUser[conn.SessionID] = conn
	h.mu.Unlock()

	metrics.RelayConnectionOpened()
	conn.Start()
	return true
}

// Detach forgets conn if it is still tracked.
func (h *Hub) Detach(conn *Connection) {
	h.mu.Lock()
	_, ok := h.sessions[conn.SessionID]
	h.detachLocked(conn)
	h.mu.Unlock()
	if ok {
		metrics.RelayConnectionClosed()
	}
}

// SendToUser writes payload to every socket of userID except excludeSession
// and returns the number of sockets that accepted it.
func (h *Hub) SendToUser(userID string, payload []byte, excludeSession string) int {
	h.mu.RLock()
	targets := make([]*Connection, 0, len(h.users[userID]))
	for id, conn := range h.users[userID] {
		if id == excludeSession {
			continue
		}
		targets = append(targets, conn)
	}
	h.mu.RUnlock()

	delivered := 0
	for _, conn := range targets {
		if err := conn.Send(payload); err == nil {
			delivered++
		}
	}
	return delivered
}

// Count returns the number of open sockets of userID.
func (h *Hub) Count(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.users[userID])
}

// Len returns the number of open sockets on this node.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// Close disconnects every socket and stops accepting new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	conns := make([]*Connection, 0, len(h.sessions))
	for _, conn := range h.sessions {
		conns = append(conns, conn)
	}
	h.sessions = make(map[string]*Connection)
	h.users = make(map[string]map[string]*Connection)
	h.mu.Unlock()

	for _, conn := range conns {
		metrics.RelayConnectionClosed()
		conn.Close(websocket.CloseGoingAway, "server shutdown")
	}
}

func (h *Hub) detachLocked(conn *Connection) {
	if _, ok := h.sessions[conn.SessionID]; !ok {
		return
	}
	delete(h.sessions, conn.SessionID)
	if byUser := h.users[conn.UserID]; byUser != nil {
		delete(byUser, conn.SessionID)
		if len(byUser) == 0 {
			delete(h.users, conn.UserID)
		}
	}
}
