// Package ws pushes committed domain events to connected WebSocket clients.
// The hub subscribes to the in-process event bus and fans every publishable
// event out to all open connections as JSON frames.
package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"mealdrop/internal/core/domain/model/events"
	"mealdrop/internal/core/ports"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const writeTimeout = 10 * time.Second

// Frame is the wire format for pushed events. Type carries the event kind,
// Payload the event itself.
type Frame struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub tracks open WebSocket connections and broadcasts domain events to them.
type Hub struct {
	logger   *slog.Logger
	upgrader websocket.Upgrader

	mu    sync.Mutex
	conns map[*connection]struct{}

	subscription ports.Subscription
}

// connection serializes writes to one client. gorilla/websocket permits at
// most one concurrent writer per connection.
type connection struct {
	ws *websocket.Conn
	mu sync.Mutex
}

func (c *connection) writeMessage(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ws.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return err
	}
	return c.ws.WriteMessage(messageType, data)
}

// NewHub creates a hub subscribed to every publishable event kind on the
// default topic.
func NewHub(subscriber ports.EventSubscriber, logger *slog.Logger) *Hub {
	hub := &Hub{
		logger: logger.With("component", "ws_hub"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		conns: make(map[*connection]struct{}),
	}

	hub.subscription = subscriber.SubscribeAll(ports.DefaultTopic, events.PublishableKinds(), hub.broadcast)

	return hub
}

// Handle upgrades an HTTP request to a WebSocket connection and keeps it
// registered until the client disconnects. Incoming messages are discarded;
// the stream is push-only.
func (h *Hub) Handle(ctx echo.Context) error {
	ws, err := h.upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		return err
	}

	conn := &connection{ws: ws}
	h.register(conn)
	defer h.unregister(conn)

	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			return nil
		}
	}
}

// Ping sends a control ping to every connection and drops the ones that no
// longer answer their write.
func (h *Hub) Ping() {
	for _, conn := range h.snapshot() {
		if err := conn.writeMessage(websocket.PingMessage, nil); err != nil {
			h.logger.Info("dropping unresponsive connection", "error", err)
			h.unregister(conn)
			_ = conn.ws.Close()
		}
	}
}

// ConnectionCount reports the number of open connections.
func (h *Hub) ConnectionCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

// Close detaches the hub from the event bus and closes all connections.
func (h *Hub) Close() {
	if h.subscription != nil {
		h.subscription.Unsubscribe()
	}

	for _, conn := range h.snapshot() {
		h.unregister(conn)
		_ = conn.ws.Close()
	}
}

// broadcast fans one committed event out to every open connection. A failed
// write drops the connection; the client is expected to reconnect.
func (h *Hub) broadcast(_ context.Context, event events.DomainEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("failed to marshal event", "kind", event.Kind(), "error", err)
		return
	}

	frame, err := json.Marshal(Frame{
		Type:    string(event.Kind()),
		Payload: payload,
	})
	if err != nil {
		h.logger.Error("failed to marshal frame", "kind", event.Kind(), "error", err)
		return
	}

	for _, conn := range h.snapshot() {
		if err := conn.writeMessage(websocket.TextMessage, frame); err != nil {
			h.logger.Info("dropping connection after failed write", "error", err)
			h.unregister(conn)
			_ = conn.ws.Close()
		}
	}
}

func (h *Hub) register(conn *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[conn] = struct{}{}
}

func (h *Hub) unregister(conn *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, conn)
}

func (h *Hub) snapshot() []*connection {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns := make([]*connection, 0, len(h.conns))
	for conn := range h.conns {
		conns = append(conns, conn)
	}
	return conns
}
