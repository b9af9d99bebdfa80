package service

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func dialTestHub(t *testing.T, hub *NotificationHub, userID uint) (*websocket.Conn, func()) {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub.Serve(w, r, userID)
	}))

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		srv.Close()
		t.Fatalf("dial: %v", err)
	}

	return conn, func() {
		conn.Close()
		srv.Close()
	}
}

func TestServeSendsGreeting(t *testing.T) {
	hub := NewNotificationHub()
	conn, cleanup := dialTestHub(t, hub, 1)
	defer cleanup()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var greeting wsMessage
	if err := conn.ReadJSON(&greeting); err != nil {
		t.Fatalf("read greeting: %v", err)
	}
	if greeting.Type != "connection" {
		t.Fatalf("greeting type = %q, want %q", greeting.Type, "connection")
	}
}

// Pings from the client and Notify calls from other goroutines both write to
// the same connection; writePump must be the only goroutine touching it.
func TestNotifyConcurrentWithClientPings(t *testing.T) {
	hub := NewNotificationHub()
	conn, cleanup := dialTestHub(t, hub, 7)
	defer cleanup()

	conn.SetReadDeadline(time.Now().Add(3 * time.Second))
	var greeting wsMessage
	if err := conn.ReadJSON(&greeting); err != nil {
		t.Fatalf("read greeting: %v", err)
	}

	pingsDone := make(chan struct{})
	go func() {
		defer close(pingsDone)
		for i := 0; i < 50; i++ {
			if err := conn.WriteJSON(wsMessage{Type: "ping"}); err != nil {
				return
			}
		}
	}()

	for i := 0; i < 50; i++ {
		hub.Notify(7, "quiz_result", map[string]interface{}{"resultId": i})
	}

	pongs, events := 0, 0
	for pongs == 0 || events == 0 {
		var msg wsMessage
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("read (pongs=%d events=%d): %v", pongs, events, err)
		}
		switch msg.Type {
		case "pong":
			pongs++
		case "quiz_result":
			events++
		default:
			t.Fatalf("unexpected frame type %q", msg.Type)
		}
	}

	<-pingsDone
}

func TestNotifyAfterDisconnectIsNoop(t *testing.T) {
	hub := NewNotificationHub()
	conn, cleanup := dialTestHub(t, hub, 3)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var greeting wsMessage
	if err := conn.ReadJSON(&greeting); err != nil {
		t.Fatalf("read greeting: %v", err)
	}
	cleanup()

	deadline := time.Now().Add(2 * time.Second)
	for {
		hub.mu.RLock()
		gone := len(hub.clients[3]) == 0
		hub.mu.RUnlock()
		if gone {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("client never unregistered")
		}
		time.Sleep(10 * time.Millisecond)
	}

	hub.Notify(3, "quiz_result", map[string]interface{}{"resultId": 1})
}

func TestNotifyUnknownUserIsNoop(t *testing.T) {
	hub := NewNotificationHub()
	hub.Notify(42, "quiz_result", nil)
}
