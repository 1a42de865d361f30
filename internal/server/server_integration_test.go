package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ayusman/mudra/internal/store"
	"github.com/gorilla/websocket"
)

func TestAPI_ConfigWorkflow(t *testing.T) {
	tmpDir := t.TempDir()
	s, _ := store.New(filepath.Join(tmpDir, "test.db"))
	defer s.Close()

	srv := New(Config{Store: s})
	ts := httptest.NewServer(srv)
	defer ts.Close()

	client := ts.Client()

	// 1. Update a couple of options
	updateBody := `{"dominant_hand": "Left", "debounce_frames": "7"}`
	req, _ := http.NewRequest(http.MethodPut, ts.URL+"/api/config", bytes.NewBufferString(updateBody))
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("PUT /api/config error = %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("PUT status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	resp.Body.Close()

	// 2. Read back: stored values merged over defaults
	resp, _ = client.Get(ts.URL + "/api/config")
	var config map[string]string
	json.NewDecoder(resp.Body).Decode(&config)
	resp.Body.Close()

	if config[store.SettingDominantHand] != "Left" {
		t.Errorf("dominant_hand = %q, want Left", config[store.SettingDominantHand])
	}
	if config[store.SettingDebounceFrames] != "7" {
		t.Errorf("debounce_frames = %q, want 7", config[store.SettingDebounceFrames])
	}
	if config[store.SettingPinchDistance] != "0.05" {
		t.Errorf("pinch_distance = %q, want untouched default 0.05", config[store.SettingPinchDistance])
	}

	// 3. Unknown keys are rejected before anything persists
	req, _ = http.NewRequest(http.MethodPut, ts.URL+"/api/config", bytes.NewBufferString(`{"bogus": "1"}`))
	resp, _ = client.Do(req)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("PUT unknown key status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
	}
	resp.Body.Close()

	// 4. So are invalid values
	req, _ = http.NewRequest(http.MethodPut, ts.URL+"/api/config", bytes.NewBufferString(`{"dominant_hand": "Both"}`))
	resp, _ = client.Do(req)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("PUT invalid value status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
	}
	resp.Body.Close()
}

func TestAPI_Events(t *testing.T) {
	tmpDir := t.TempDir()
	s, _ := store.New(filepath.Join(tmpDir, "test.db"))
	defer s.Close()

	s.Events().Insert(&store.Event{Gesture: "fist", Hand: "Right"})
	s.Events().Insert(&store.Event{Gesture: "v-gesture", Hand: "Right"})

	srv := New(Config{Store: s})
	ts := httptest.NewServer(srv)
	defer ts.Close()

	resp, err := ts.Client().Get(ts.URL + "/api/events?limit=10")
	if err != nil {
		t.Fatalf("GET /api/events error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	var listed struct {
		Events []struct {
			ID      string `json:"id"`
			Gesture string `json:"gesture"`
		} `json:"events"`
	}
	json.NewDecoder(resp.Body).Decode(&listed)

	if len(listed.Events) != 2 {
		t.Fatalf("len(events) = %d, want 2", len(listed.Events))
	}
	if listed.Events[0].ID == "" {
		t.Error("event ID should be set")
	}
}

func TestWS_StateFeed(t *testing.T) {
	srv := New(Config{})
	ts := httptest.NewServer(srv)
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/api/state"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("websocket dial error = %v", err)
	}
	defer conn.Close()

	// The handler registers the client before its read loop starts, but
	// give the server a moment to finish the upgrade.
	deadline := time.Now().Add(time.Second)
	for srv.State().ClientCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if srv.State().ClientCount() != 1 {
		t.Fatalf("ClientCount() = %d, want 1", srv.State().ClientCount())
	}

	srv.State().Publish(StateMessage{Gesture: "pinch-minor", Hand: "Left", Hands: 2, Enabled: true})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg StateMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("ReadJSON error = %v", err)
	}

	if msg.Gesture != "pinch-minor" || msg.Hands != 2 {
		t.Errorf("message = %+v, want the published state", msg)
	}
	if msg.Timestamp == 0 {
		t.Error("Publish should stamp the message")
	}
}
