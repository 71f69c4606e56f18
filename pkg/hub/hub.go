package hub

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const EventTypeHealthStatus = "app.health_status"

const (
	clientSendBuffer = 64
	writeWait        = 10 * time.Second
)

var ErrBroadcastBufferFull = errors.New("broadcast buffer full, event dropped")

// Event is one live-dashboard message.
type Event struct {
	Type    string      `json:"type"`
	AppID   string      `json:"app_id"`
	Payload interface{} `json:"payload"`
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans broadcast events out to every connected dashboard client. Slow
// clients get their buffer dropped, never the whole hub blocked.
type Hub struct {
	mu         sync.RWMutex
	clients    map[*client]bool
	broadcast  chan []byte
	register   chan *client
	unregister chan *client
	upgrader   websocket.Upgrader
	logger     *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[*client]bool),
		broadcast:  make(chan []byte, 256),
		register:   make(chan *client),
		unregister: make(chan *client),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = true
			h.mu.Unlock()
		case c := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
			h.mu.Unlock()
		case message := <-h.broadcast:
			h.mu.RLock()
			for c := range h.clients {
				select {
				case c.send <- message:
				default:
					// slow client, drop the message for it
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Broadcast queues an event for all connected clients without blocking the
// caller. A full hub buffer drops the event and reports it.
func (h *Hub) Broadcast(event Event) error {
	b, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("Hub.Broadcast: %w", err)
	}
	select {
	case h.broadcast <- b:
		return nil
	default:
		return fmt.Errorf("Hub.Broadcast: %w", ErrBroadcastBufferFull)
	}
}

// HandleWebSocket upgrades the request and keeps the connection until the
// client disconnects.
func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	c := &client{
		conn: conn,
		send: make(chan []byte, clientSendBuffer),
	}
	h.register <- c
	go c.writePump(h)
	go c.readPump(h)
}

func (c *client) writePump(h *Hub) {
	defer c.conn.Close()
	for message := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			h.unregister <- c
			return
		}
	}
}

// readPump discards inbound frames; its only job is noticing the disconnect.
func (c *client) readPump(h *Hub) {
	defer c.conn.Close()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			h.unregister <- c
			return
		}
	}
}
