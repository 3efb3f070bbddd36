package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

// dialHubClient upgrades a real connection pair and registers the server
// side with the hub; the returned conn is the browser's end.
func dialHubClient(t *testing.T, hub *RealtimeHub, sessionID string) *websocket.Conn {
	t.Helper()

	up := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	serverSide := make(chan *websocket.Conn, 1)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := up.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		serverSide <- conn
	}))
	t.Cleanup(ts.Close)

	url := "ws" + strings.TrimPrefix(ts.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	conn := <-serverSide
	cl := NewWSClient(sessionID, conn)
	hub.Register(cl)
	t.Cleanup(func() { hub.Unregister(cl) })
	return client
}

func readSummaryEvent(t *testing.T, conn *websocket.Conn) DailySummary {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var event struct {
		Kind    string       `json:"kind"`
		Summary DailySummary `json:"summary"`
	}
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if err := json.Unmarshal(msg, &event); err != nil {
		t.Fatalf("decode event: %v", err)
	}
	if event.Kind != "summary.updated" {
		t.Fatalf("kind = %q, want summary.updated", event.Kind)
	}
	return event.Summary
}

func TestBroadcastSummaryReachesOnlyItsSession(t *testing.T) {
	t.Parallel()
	hub := NewRealtimeHub()

	mine := dialHubClient(t, hub, "sess-a")
	other := dialHubClient(t, hub, "sess-b")

	hub.BroadcastSummary("sess-a", &DailySummary{ConsumedCalories: 700, NetCalories: 500})

	sum := readSummaryEvent(t, mine)
	if sum.ConsumedCalories != 700 || sum.NetCalories != 500 {
		t.Errorf("unexpected summary: %+v", sum)
	}

	_ = other.SetReadDeadline(time.Now().Add(100 * time.Millisecond))
	if _, _, err := other.ReadMessage(); err == nil {
		t.Error("other session should receive nothing")
	}
}

func TestPingsAndBroadcastsInterleaveSafely(t *testing.T) {
	t.Parallel()
	hub := NewRealtimeHub()

	conn := dialHubClient(t, hub, "sess-a")

	// grab the registered client so the keep-alive path is the real one
	hub.mu.RLock()
	var cl *WSClient
	for c := range hub.clients["sess-a"] {
		cl = c
	}
	hub.mu.RUnlock()
	if cl == nil {
		t.Fatal("client not registered")
	}

	const n = 50
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			_ = cl.Ping()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			hub.BroadcastSummary("sess-a", &DailySummary{ConsumedCalories: float64(i)})
		}
	}()

	// every text frame must still decode; pings are absorbed as control frames
	for i := 0; i < n; i++ {
		readSummaryEvent(t, conn)
	}
	wg.Wait()
}
