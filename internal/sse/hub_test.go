package sse

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/petrichorlab/eightdays/internal/model"
	"github.com/petrichorlab/eightdays/internal/testutil"
)

func TestFormatSSEMessage(t *testing.T) {
	tests := []struct {
		name      string
		eventName string
		data      string
		expected  string
	}{
		{
			name:      "single line data",
			eventName: "day-completed",
			data:      `{"day":1}`,
			expected:  "event: day-completed\ndata: {\"day\":1}\n\n",
		},
		{
			name:      "multi-line data",
			eventName: "day-completed",
			data:      "line1\nline2",
			expected:  "event: day-completed\ndata: line1\ndata: line2\n\n",
		},
		{
			name:      "carriage returns normalized",
			eventName: "partner-acted",
			data:      "line1\r\nline2",
			expected:  "event: partner-acted\ndata: line1\ndata: line2\n\n",
		},
		{
			name:      "empty data",
			eventName: "ping",
			data:      "",
			expected:  "event: ping\ndata: \n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := formatSSEMessage(tt.eventName, tt.data)
			if string(result) != tt.expected {
				t.Errorf("formatSSEMessage(%q, %q)\ngot:  %q\nwant: %q",
					tt.eventName, tt.data, string(result), tt.expected)
			}
		})
	}
}

func TestHubBroadcastReachesClients(t *testing.T) {
	hub := NewHub("WBN7QX", testutil.NopLogger())
	go hub.Run()
	defer hub.Close()

	client := NewClient(hub, "p1")
	hub.Register(client)

	hub.Broadcast([]byte("event: ping\ndata: \n\n"))

	select {
	case msg := <-client.send:
		if string(msg) != "event: ping\ndata: \n\n" {
			t.Errorf("unexpected message: %q", msg)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for broadcast")
	}
}

func TestHubTracksClientCount(t *testing.T) {
	hub := NewHub("WBN7QX", testutil.NopLogger())
	go hub.Run()
	defer hub.Close()

	if got := hub.ClientCount(); got != 0 {
		t.Fatalf("expected empty hub, got %d clients", got)
	}

	client := NewClient(hub, "p1")
	hub.Register(client)
	waitForClientCount(t, hub, 1)

	hub.Unregister(client)
	waitForClientCount(t, hub, 0)
}

// waitForClientCount polls until the hub's Run loop has processed the
// pending register/unregister
func waitForClientCount(t *testing.T, hub *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if hub.ClientCount() == want {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("client count never reached %d (got %d)", want, hub.ClientCount())
}

func TestHubManagerReusesHubPerRoom(t *testing.T) {
	m := NewHubManager(testutil.NopLogger())
	defer m.CloseAll()

	a := m.GetOrCreateHub("WBN7QX")
	b := m.GetOrCreateHub("WBN7QX")
	c := m.GetOrCreateHub("XK2PQR")

	if a != b {
		t.Error("expected the same hub for the same room")
	}
	if a == c {
		t.Error("expected distinct hubs for distinct rooms")
	}
}

func TestBroadcasterPublishesEventPayload(t *testing.T) {
	m := NewHubManager(testutil.NopLogger())
	defer m.CloseAll()

	hub := m.GetOrCreateHub("WBN7QX")
	client := NewClient(hub, "p1")
	hub.Register(client)

	b := NewBroadcaster(m, testutil.NopLogger())
	b.Publish("WBN7QX", model.Event{
		Type:     model.EventDayCompleted,
		RoomCode: "WBN7QX",
		Payload:  model.DayCompletedPayload{Day: 3, Reflection: "a reflection"},
	})

	select {
	case msg := <-client.send:
		var payload model.DayCompletedPayload
		// Strip the SSE framing to get at the JSON
		line := string(msg)
		const prefix = "event: day-completed\ndata: "
		if len(line) < len(prefix) || line[:len(prefix)] != prefix {
			t.Fatalf("unexpected framing: %q", line)
		}
		body := line[len(prefix) : len(line)-2]
		if err := json.Unmarshal([]byte(body), &payload); err != nil {
			t.Fatalf("unmarshal payload: %v", err)
		}
		if payload.Day != 3 || payload.Reflection != "a reflection" {
			t.Errorf("unexpected payload: %+v", payload)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestBroadcasterNoHubIsNoop(t *testing.T) {
	m := NewHubManager(testutil.NopLogger())
	b := NewBroadcaster(m, testutil.NopLogger())

	// No hub exists for this room; publishing must not panic
	b.Publish("ZZZZZZ", model.Event{Type: model.EventPartnerActed})
}
