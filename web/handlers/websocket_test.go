package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/campuswatch/bugboard/internal/engine"
	"github.com/campuswatch/bugboard/internal/storage/memory"
)

// startHub runs a hub and guarantees it is stopped when the test ends.
func startHub(t *testing.T, origins []string) *WebSocketHub {
	t.Helper()
	hub := NewWebSocketHub(origins)
	go hub.Run()
	t.Cleanup(hub.Stop)
	return hub
}

// waitForMessage receives one broadcast payload or fails the test.
func waitForMessage(t *testing.T, ch chan []byte) []byte {
	t.Helper()
	select {
	case data := <-ch:
		return data
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for broadcast")
		return nil
	}
}

func TestHub_BroadcastReachesClients(t *testing.T) {
	hub := startHub(t, nil)

	client := &MockClient{SendChan: make(chan []byte, 8)}
	hub.Register(client)

	hub.Broadcast(map[string]string{"type": "ping"})

	data := waitForMessage(t, client.SendChan)

	var msg map[string]string
	require.NoError(t, json.Unmarshal(data, &msg))
	require.Equal(t, "ping", msg["type"])
}

func TestHub_SlowClientIsDropped(t *testing.T) {
	hub := startHub(t, nil)

	// Unbuffered channel with no reader: the first broadcast can't be
	// delivered and the client must be disconnected, not block the hub.
	slow := &MockClient{SendChan: make(chan []byte)}
	healthy := &MockClient{SendChan: make(chan []byte, 8)}
	hub.Register(slow)
	hub.Register(healthy)

	hub.Broadcast(map[string]string{"type": "first"})
	data := waitForMessage(t, healthy.SendChan)
	require.NotEmpty(t, data)

	hub.Broadcast(map[string]string{"type": "second"})
	data = waitForMessage(t, healthy.SendChan)

	var msg map[string]string
	require.NoError(t, json.Unmarshal(data, &msg))
	require.Equal(t, "second", msg["type"])
}

func TestHub_RejectsDisallowedOrigin(t *testing.T) {
	hub := startHub(t, []string{"http://localhost:8980"})

	req := httptest.NewRequest(http.MethodGet, "/ws", nil)
	req.Header.Set("Origin", "http://evil.example")
	w := httptest.NewRecorder()

	hub.ServeHTTP(w, req)

	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestCreateSighting_BroadcastsEvent(t *testing.T) {
	hub := startHub(t, nil)
	client := &MockClient{SendChan: make(chan []byte, 8)}
	hub.Register(client)

	store := memory.NewStore()
	eng := engine.New(store, engine.DefaultConfig())
	h := NewSightingHandlers(eng, store, hub, 100)

	body, contentType := multipartBody(t, strPtr("mantis on the railing @<Terrace>"), photoBytes)
	req := httptest.NewRequest(http.MethodPost, "/api/sightings", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	h.CreateSighting(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	data := waitForMessage(t, client.SendChan)

	var event SightingEvent
	require.NoError(t, json.Unmarshal(data, &event))
	require.Equal(t, "sighting.created", event.Type)
	require.Equal(t, "Terrace", event.Sighting.Location)
	require.Len(t, event.Distribution, 1)
	require.Equal(t, 1, event.Distribution[0].Count)
}

func TestStripScheme(t *testing.T) {
	require.Equal(t, "localhost:8980", stripScheme("http://localhost:8980"))
	require.Equal(t, "bugs.campus.edu", stripScheme("https://bugs.campus.edu"))
	require.Equal(t, "localhost:8980", stripScheme("localhost:8980"))
}

// Guard against the photo fixture accidentally shrinking below the sniff window.
func TestPhotoFixtureSniffsAsPNG(t *testing.T) {
	require.True(t, bytes.HasPrefix(photoBytes, []byte{0x89, 'P', 'N', 'G'}))
}
