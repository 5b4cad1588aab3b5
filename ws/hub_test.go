package ws

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Failed to dial websocket: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestBroadcastReachesClients(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(http.HandlerFunc(hub.HandleWebsocket))
	defer srv.Close()

	c1 := dial(t, srv)
	c2 := dial(t, srv)

	// Wait for both registrations
	deadline := time.After(2 * time.Second)
	for hub.ClientCount() < 2 {
		select {
		case <-deadline:
			t.Fatalf("expected 2 clients, got %d", hub.ClientCount())
		default:
			time.Sleep(5 * time.Millisecond)
		}
	}

	hub.Broadcast(map[string]string{"title": "hello"})

	for _, conn := range []*websocket.Conn{c1, c2} {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		var msg map[string]string
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("Failed to read broadcast: %v", err)
		}
		if msg["title"] != "hello" {
			t.Errorf("expected title hello, got %q", msg["title"])
		}
	}
}

func TestDisconnectRemovesClient(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(http.HandlerFunc(hub.HandleWebsocket))
	defer srv.Close()

	conn := dial(t, srv)

	deadline := time.After(2 * time.Second)
	for hub.ClientCount() != 1 {
		select {
		case <-deadline:
			t.Fatalf("expected 1 client, got %d", hub.ClientCount())
		default:
			time.Sleep(5 * time.Millisecond)
		}
	}

	conn.Close()

	deadline = time.After(2 * time.Second)
	for hub.ClientCount() != 0 {
		select {
		case <-deadline:
			t.Fatalf("expected client removal, still %d", hub.ClientCount())
		default:
			time.Sleep(5 * time.Millisecond)
		}
	}
}
