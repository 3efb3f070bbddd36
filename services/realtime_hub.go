package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// WSClient wraps one websocket connection. The connection permits at most
// one concurrent writer, and frames arrive from two places (the hub's
// broadcasts and the keep-alive pings), so every outbound frame goes
// through the write mutex.
type WSClient struct {
	SessionID string

	mu   sync.Mutex
	conn *websocket.Conn
}

func NewWSClient(sessionID string, conn *websocket.Conn) *WSClient {
	return &WSClient{SessionID: sessionID, conn: conn}
}

func (c *WSClient) write(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(messageType, data)
}

// Ping sends a keep-alive control frame.
func (c *WSClient) Ping() error {
	return c.write(websocket.PingMessage, nil)
}

func (c *WSClient) Close() error {
	return c.conn.Close()
}

// RealtimeHub pushes the freshly recomputed daily summary to every socket a
// session has open, so a mutation made in one tab is reflected everywhere
// without polling.
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[string]map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[string]map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.SessionID] == nil {
		h.clients[c.SessionID] = make(map[*WSClient]struct{})
	}
	h.clients[c.SessionID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.SessionID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.SessionID)
		}
	}
	h.mu.Unlock()
	_ = c.Close()
}

func (h *RealtimeHub) BroadcastSummary(sessionID string, summary *DailySummary) {
	msg, _ := json.Marshal(map[string]any{
		"kind":    "summary.updated",
		"summary": summary,
	})
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[sessionID] {
		_ = c.write(websocket.TextMessage, msg)
	}
}
