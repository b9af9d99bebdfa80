package service

import (
	"encoding/json"
	"mindmate_backend/pkg/logger"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	notifyWriteWait  = 10 * time.Second
	notifySendBuffer = 16
)

// NotificationHub tracks websocket connections per user and pushes
// server-side events (e.g. a scored quiz result) to them. Delivery is best
// effort: a user with no open connection simply misses the event, and a
// client that stops reading has frames dropped rather than blocking the
// sender.
type NotificationHub struct {
	mu      sync.RWMutex
	clients map[uint]map[*notifyClient]bool

	upgrader websocket.Upgrader
}

// notifyClient owns the write side of one connection. Every outgoing frame
// goes through the send channel into writePump; the websocket.Conn permits
// only a single concurrent writer.
type notifyClient struct {
	conn *websocket.Conn
	send chan []byte
}

func NewNotificationHub() *NotificationHub {
	return &NotificationHub{
		clients: make(map[uint]map[*notifyClient]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type wsMessage struct {
	Type      string      `json:"type"`
	Message   string      `json:"message,omitempty"`
	Timestamp string      `json:"timestamp,omitempty"`
	Data      interface{} `json:"data,omitempty"`
}

func (c *notifyClient) writePump() {
	defer c.conn.Close()
	for payload := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(notifyWriteWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			return
		}
	}
	c.conn.SetWriteDeadline(time.Now().Add(notifyWriteWait))
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// enqueue hands a frame to writePump, dropping it when the buffer is full.
func (c *notifyClient) enqueue(payload []byte) {
	select {
	case c.send <- payload:
	default:
	}
}

func (c *notifyClient) enqueueJSON(msg wsMessage) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return
	}
	c.enqueue(payload)
}

// Serve upgrades the request and runs the read loop until the client leaves.
func (h *NotificationHub) Serve(w http.ResponseWriter, r *http.Request, userID uint) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	client := &notifyClient{conn: conn, send: make(chan []byte, notifySendBuffer)}
	h.register(userID, client)
	defer h.unregister(userID, client)

	go client.writePump()

	client.enqueueJSON(wsMessage{Type: "connection", Message: "Connected to MindMate notification server"})

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return nil
		}

		var msg wsMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			logger.Log.Debug("dropping malformed ws message", zap.Error(err))
			continue
		}

		if msg.Type == "ping" {
			client.enqueueJSON(wsMessage{Type: "pong", Timestamp: time.Now().Format(time.RFC3339)})
		}
	}
}

// Notify pushes an event to every open connection of one user.
func (h *NotificationHub) Notify(userID uint, eventType string, data interface{}) {
	payload, err := json.Marshal(wsMessage{
		Type:      eventType,
		Timestamp: time.Now().Format(time.RFC3339),
		Data:      data,
	})
	if err != nil {
		logger.Log.Warn("notification payload not serializable",
			zap.Uint("user_id", userID), zap.Error(err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients[userID] {
		client.enqueue(payload)
	}
}

func (h *NotificationHub) register(userID uint, client *notifyClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[userID] == nil {
		h.clients[userID] = make(map[*notifyClient]bool)
	}
	h.clients[userID][client] = true
}

// unregister removes the client and closes its send channel, which stops
// writePump and closes the connection. Closing under the write lock keeps
// Notify from enqueueing to a closed channel.
func (h *NotificationHub) unregister(userID uint, client *notifyClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients[userID], client)
	if len(h.clients[userID]) == 0 {
		delete(h.clients, userID)
	}
	close(client.send)
}
