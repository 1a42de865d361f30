package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := New(filepath.Join(t.TempDir(), "mudra.db"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })

	return s
}

func TestSettings_SetAndGet(t *testing.T) {
	s := newTestStore(t)
	settings := s.Settings()

	if err := settings.Set(SettingDominantHand, "Left"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, err := settings.Get(SettingDominantHand)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "Left" {
		t.Errorf("Get() = %q, want %q", got, "Left")
	}
}

func TestSettings_SetReplaces(t *testing.T) {
	s := newTestStore(t)
	settings := s.Settings()

	settings.Set(SettingDebounceFrames, "5")
	settings.Set(SettingDebounceFrames, "7")

	got, err := settings.Get(SettingDebounceFrames)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "7" {
		t.Errorf("Get() = %q, want %q", got, "7")
	}
}

func TestSettings_GetMissing(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.Settings().Get("nonexistent"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestSettings_All(t *testing.T) {
	s := newTestStore(t)
	settings := s.Settings()

	settings.Set(SettingDominantHand, "Right")
	settings.Set(SettingPinchDistance, "0.05")

	all, err := settings.All()
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}
	if len(all) != 2 {
		t.Errorf("All() returned %d settings, want 2", len(all))
	}
	if all[SettingPinchDistance] != "0.05" {
		t.Errorf("All()[%q] = %q, want %q", SettingPinchDistance, all[SettingPinchDistance], "0.05")
	}
}

func TestSettings_Delete(t *testing.T) {
	s := newTestStore(t)
	settings := s.Settings()

	settings.Set(SettingEnabled, "true")
	if err := settings.Delete(SettingEnabled); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := settings.Get(SettingEnabled); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after Delete() error = %v, want ErrNotFound", err)
	}

	// Deleting a missing key is not an error.
	if err := settings.Delete("nonexistent"); err != nil {
		t.Errorf("Delete() on missing key error = %v", err)
	}
}

func TestEvents_InsertAndRecent(t *testing.T) {
	s := newTestStore(t)
	events := s.Events()

	first := &Event{Gesture: "fist", Hand: "Right", CreatedAt: time.Now().Add(-time.Minute)}
	second := &Event{Gesture: "pinch-minor", Hand: "Left"}

	if err := events.Insert(first); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if err := events.Insert(second); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	if first.ID == "" || second.ID == "" {
		t.Error("Insert() should assign IDs to events without one")
	}

	recent, err := events.Recent(10)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Recent() returned %d events, want 2", len(recent))
	}
	if recent[0].Gesture != "pinch-minor" {
		t.Errorf("Recent()[0].Gesture = %q, want newest first", recent[0].Gesture)
	}
}

func TestEvents_RecentLimit(t *testing.T) {
	s := newTestStore(t)
	events := s.Events()

	for i := 0; i < 5; i++ {
		if err := events.Insert(&Event{Gesture: "palm", Hand: "Right"}); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
	}

	recent, err := events.Recent(3)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(recent) != 3 {
		t.Errorf("Recent(3) returned %d events, want 3", len(recent))
	}
}

func TestEvents_Prune(t *testing.T) {
	s := newTestStore(t)
	events := s.Events()

	old := &Event{Gesture: "fist", Hand: "Right", CreatedAt: time.Now().Add(-48 * time.Hour)}
	fresh := &Event{Gesture: "v-gesture", Hand: "Right"}
	events.Insert(old)
	events.Insert(fresh)

	if err := events.Prune(24 * time.Hour); err != nil {
		t.Fatalf("Prune() error = %v", err)
	}

	recent, err := events.Recent(10)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(recent) != 1 {
		t.Fatalf("Recent() after prune returned %d events, want 1", len(recent))
	}
	if recent[0].Gesture != "v-gesture" {
		t.Errorf("surviving event = %q, want the fresh one", recent[0].Gesture)
	}
}
