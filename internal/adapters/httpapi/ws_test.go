package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Notifications for one user can arrive from concurrent requests; the hub
// must serialize writes per connection instead of panicking inside
// gorilla/websocket.
func TestHubConcurrentNotify(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		wc := &wsConn{conn: conn}
		hub.add("u1", wc)
		_ = wc.writeJSON(changeMessage{Type: "connected"})
	}))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer client.Close()

	var hello changeMessage
	require.NoError(t, client.ReadJSON(&hello))
	require.Equal(t, "connected", hello.Type)

	const writers = 16
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(threadID uint) {
			defer wg.Done()
			hub.ThreadChanged(threadID, []string{"u1"})
		}(uint(i + 1))
	}
	wg.Wait()

	for i := 0; i < writers; i++ {
		var msg changeMessage
		require.NoError(t, client.ReadJSON(&msg))
		assert.Equal(t, "thread_changed", msg.Type)
		assert.NotZero(t, msg.ThreadID)
	}
}

func TestHubAddRemove(t *testing.T) {
	hub := NewHub()
	a := &wsConn{}
	b := &wsConn{}
	hub.add("u1", a)
	hub.add("u1", b)

	hub.remove("u1", a)
	assert.Len(t, hub.conns["u1"], 1)

	hub.remove("u1", b)
	_, ok := hub.conns["u1"]
	assert.False(t, ok)
}
