package httpapi

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"kidfun/internal/ports/output"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // origin is enforced by the CORS layer in front
	},
}

var _ output.Notifier = (*Hub)(nil)

// wsConn serializes writes to one connection. gorilla/websocket supports at
// most one concurrent writer, and notifications for the same user can arrive
// from concurrent requests.
type wsConn struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *wsConn) writeJSON(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

// Hub keeps one WebSocket connection set per user and pushes coarse change
// notifications. The notification only names the thread; clients re-fetch
// the aggregate, it carries no authoritative state.
type Hub struct {
	mu    sync.RWMutex
	conns map[string][]*wsConn
}

func NewHub() *Hub {
	return &Hub{conns: make(map[string][]*wsConn)}
}

type changeMessage struct {
	Type     string `json:"type"`
	ThreadID uint   `json:"thread_id"`
}

// ThreadChanged notifies every connected client of the given users.
func (h *Hub) ThreadChanged(threadID uint, userIDs []string) {
	msg := changeMessage{Type: "thread_changed", ThreadID: threadID}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, userID := range userIDs {
		for _, conn := range h.conns[userID] {
			if err := conn.writeJSON(msg); err != nil {
				log.Printf("ws: write to %s: %v", userID, err)
			}
		}
	}
}

func (h *Hub) add(userID string, conn *wsConn) {
	h.mu.Lock()
	h.conns[userID] = append(h.conns[userID], conn)
	h.mu.Unlock()
}

func (h *Hub) remove(userID string, conn *wsConn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	conns := h.conns[userID]
	for i := range conns {
		if conns[i] == conn {
			h.conns[userID] = append(conns[:i], conns[i+1:]...)
			break
		}
	}
	if len(h.conns[userID]) == 0 {
		delete(h.conns, userID)
	}
}

// handleWS upgrades the connection and parks it in the hub until the client
// goes away. Clients send nothing meaningful; reads only detect disconnect.
func (h *Handler) handleWS(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws: upgrade: %v", err)
		return
	}
	defer conn.Close()

	wc := &wsConn{conn: conn}
	h.hub.add(userID, wc)
	defer h.hub.remove(userID, wc)

	_ = wc.writeJSON(changeMessage{Type: "connected"})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
