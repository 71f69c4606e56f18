package hub

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHub_BroadcastReachesConnectedClients(t *testing.T) {
	h := NewHub(zap.NewNop())
	go h.Run()

	server := httptest.NewServer(http.HandlerFunc(h.HandleWebSocket))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	firstConn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer firstConn.Close()
	secondConn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer secondConn.Close()

	time.Sleep(100 * time.Millisecond)

	event := Event{
		Type:  EventTypeHealthStatus,
		AppID: "app-1",
		Payload: map[string]string{
			"health_status": "down",
		},
	}
	require.NoError(t, h.Broadcast(event))

	for _, conn := range []*websocket.Conn{firstConn, secondConn} {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, message, err := conn.ReadMessage()
		require.NoError(t, err)

		var got Event
		require.NoError(t, json.Unmarshal(message, &got))
		assert.Equal(t, EventTypeHealthStatus, got.Type)
		assert.Equal(t, "app-1", got.AppID)
	}
}

func TestHub_BroadcastDoesNotBlockWhenBufferIsFull(t *testing.T) {
	h := NewHub(zap.NewNop())

	event := Event{Type: EventTypeHealthStatus, AppID: "app-1"}
	for i := 0; i < 256; i++ {
		require.NoError(t, h.Broadcast(event))
	}

	err := h.Broadcast(event)
	assert.ErrorIs(t, err, ErrBroadcastBufferFull)
}

func TestHub_BroadcastUnmarshalableEvent(t *testing.T) {
	h := NewHub(zap.NewNop())

	err := h.Broadcast(Event{
		Type:    EventTypeHealthStatus,
		AppID:   "app-1",
		Payload: make(chan int),
	})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrBroadcastBufferFull)
}

func TestHub_HandleWebSocketRejectsPlainHTTP(t *testing.T) {
	h := NewHub(zap.NewNop())

	server := httptest.NewServer(http.HandlerFunc(h.HandleWebSocket))
	defer server.Close()

	res, err := http.Get(server.URL)
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}
