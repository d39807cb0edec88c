package ws

import (
	"context"
	"encoding/json"
	"sync"

	"aquamanager/internal/service"

	"github.com/gofiber/contrib/websocket"
	"go.uber.org/zap"
)

// Client is the part of a websocket connection the hub writes to.
type Client interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Hub fans invalidation events out to every connected client.
type Hub struct {
	clients    map[Client]bool
	Register   chan Client
	Unregister chan Client
	Broadcast  chan []byte
	mutex      sync.Mutex
	done       chan struct{}
	log        *zap.Logger
}

// conn is a client whose incoming frames are read until the peer goes away.
type conn interface {
	Client
	ReadMessage() (messageType int, p []byte, err error)
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[Client]bool),
		Register:   make(chan Client),
		Unregister: make(chan Client),
		Broadcast:  make(chan []byte, 64),
		done:       make(chan struct{}),
		log:        log.Named("ws"),
	}
}

// Run serves the hub until ctx is cancelled, then closes every client.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mutex.Lock()
			for c := range h.clients {
				c.Close()
				delete(h.clients, c)
			}
			h.mutex.Unlock()
			return

		case c := <-h.Register:
			h.mutex.Lock()
			h.clients[c] = true
			n := len(h.clients)
			h.mutex.Unlock()
			h.log.Debug("client connected", zap.Int("clients", n))

		case c := <-h.Unregister:
			h.mutex.Lock()
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				c.Close()
			}
			h.mutex.Unlock()

		case message := <-h.Broadcast:
			h.mutex.Lock()
			for c := range h.clients {
				if err := c.WriteMessage(websocket.TextMessage, message); err != nil {
					h.log.Debug("dropping client", zap.Error(err))
					c.Close()
					delete(h.clients, c)
				}
			}
			h.mutex.Unlock()
		}
	}
}

// Publish queues event for broadcast. Events are dropped when the queue is full.
func (h *Hub) Publish(event service.Event) {
	msg, err := json.Marshal(event)
	if err != nil {
		h.log.Error("encode event", zap.Error(err))
		return
	}
	select {
	case h.Broadcast <- msg:
	default:
		h.log.Warn("broadcast queue full, event dropped", zap.String("action", event.Action))
	}
}

// ClientCount reports the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.clients)
}

// Done is closed once Run has returned.
func (h *Hub) Done() <-chan struct{} {
	return h.done
}

// Serve keeps c registered until the peer goes away. Incoming messages are ignored.
func (h *Hub) Serve(c *websocket.Conn) {
	h.serve(c)
}

func (h *Hub) serve(c conn) {
	select {
	case h.Register <- c:
	case <-h.done:
		c.Close()
		return
	}
	defer func() {
		select {
		case h.Unregister <- c:
		case <-h.done:
		}
	}()

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}
