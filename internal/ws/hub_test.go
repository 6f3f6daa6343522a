package ws

import (
	"encoding/json"
	"testing"
	"time"
)

func TestBroadcastDoesNotBlockBeforeRouteRegistration(t *testing.T) {
	hub := NewHub()

	done := make(chan struct{})
	go func() {
		hub.Broadcast("reply", map[string]string{"text": "hola"})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("broadcast blocked on a hub with no clients")
	}
}

func TestBroadcastDeliversToRegisteredClients(t *testing.T) {
	hub := NewHub()
	c := &client{hub: hub, send: make(chan []byte, 1)}
	hub.register <- c

	hub.Broadcast("reply", map[string]string{"text": "hola"})

	select {
	case payload := <-c.send:
		var event Event
		if err := json.Unmarshal(payload, &event); err != nil {
			t.Fatalf("decode event: %v", err)
		}
		if event.Type != "reply" {
			t.Errorf("unexpected event type %q", event.Type)
		}
	case <-time.After(time.Second):
		t.Fatal("event was not delivered")
	}
}

func TestSlowClientIsDropped(t *testing.T) {
	hub := NewHub()
	// A full send buffer marks the client as too slow to keep.
	c := &client{hub: hub, send: make(chan []byte)}
	hub.register <- c

	hub.Broadcast("reply", map[string]string{"text": "first"})
	hub.Broadcast("reply", map[string]string{"text": "second"})

	select {
	case _, ok := <-c.send:
		if ok {
			t.Error("expected the slow client's channel to be closed")
		}
	case <-time.After(time.Second):
		t.Fatal("slow client was not dropped")
	}
}
