package handler

import (
	"testing"
	"time"
)

func TestHubDropsFullClient(t *testing.T) {
	hub := NewWSHub(nil)
	go hub.Run()

	// Zero-capacity Send with no reader, so the first broadcast cannot
	// be delivered and the hub has to drop the client.
	stalled := &Client{ID: "stalled", Send: make(chan []byte), Hub: hub}
	hub.register <- stalled

	hub.broadcast <- []byte(`{"type":"fuel_recorded"}`)

	// The hub must keep serving registrations afterwards.
	next := &Client{ID: "next", Send: make(chan []byte, 1), Hub: hub}
	select {
	case hub.register <- next:
	case <-time.After(2 * time.Second):
		t.Fatal("hub stopped accepting clients after broadcasting to a full one")
	}

	deadline := time.Now().Add(time.Second)
	for hub.GetClientCount() != 1 {
		if time.Now().After(deadline) {
			t.Fatalf("clients = %d, want 1 after the stalled client is dropped", hub.GetClientCount())
		}
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case _, ok := <-stalled.Send:
		if ok {
			t.Fatal("dropped client received a message instead of a close")
		}
	case <-time.After(time.Second):
		t.Fatal("dropped client's Send channel was not closed")
	}
}
