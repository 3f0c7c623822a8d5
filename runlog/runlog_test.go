package runlog

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
)

func TestLogEventAndRecent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runlog", "events.db")
	l := NewLogger(dbPath)

	if !l.Enabled() {
		t.Fatal("logger with path reports disabled")
	}

	events := []struct {
		agent   string
		typ     string
		payload any
	}{
		{"Amazon Q CLI", "command.build", map[string]string{"task_id": "t1"}},
		{"Amazon Q CLI", "env.describe", map[string]int{"keys": 7}},
		{"Amazon Q CLI", "command.build", map[string]string{"task_id": "t2"}},
	}
	for _, ev := range events {
		if err := l.LogEvent(ev.agent, ev.typ, ev.payload); err != nil {
			t.Fatalf("LogEvent(%s): %v", ev.typ, err)
		}
	}

	got, err := l.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len(events) = %d, want 3", len(got))
	}

	// Newest first.
	if got[0].Type != "command.build" {
		t.Errorf("got[0].Type = %q", got[0].Type)
	}
	var payload map[string]string
	if err := json.Unmarshal(got[0].Payload, &payload); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if payload["task_id"] != "t2" {
		t.Errorf("payload task_id = %q, want t2 (newest)", payload["task_id"])
	}

	if got[0].ID <= got[2].ID {
		t.Errorf("ids not descending: %d .. %d", got[0].ID, got[2].ID)
	}
	if got[0].TS.IsZero() {
		t.Error("event timestamp is zero")
	}
	if got[0].Agent != "Amazon Q CLI" {
		t.Errorf("agent = %q", got[0].Agent)
	}
}

func TestRecentLimit(t *testing.T) {
	l := NewLogger(filepath.Join(t.TempDir(), "events.db"))

	for i := 0; i < 5; i++ {
		if err := l.LogEvent("a", "event", nil); err != nil {
			t.Fatalf("LogEvent: %v", err)
		}
	}

	got, err := l.Recent(2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("len(events) = %d, want 2", len(got))
	}

	got, err = l.Recent(0)
	if err != nil {
		t.Fatalf("Recent(0): %v", err)
	}
	if got != nil {
		t.Errorf("Recent(0) = %v, want nil", got)
	}
}

func TestDisabledLogger(t *testing.T) {
	l := NewLogger("")

	if l.Enabled() {
		t.Error("empty-path logger reports enabled")
	}
	if err := l.LogEvent("a", "event", nil); err != nil {
		t.Errorf("disabled LogEvent = %v, want nil", err)
	}
	if _, err := l.Recent(5); !errors.Is(err, ErrDisabled) {
		t.Errorf("disabled Recent error = %v, want ErrDisabled", err)
	}
}

func TestRecentEmptyDatabase(t *testing.T) {
	l := NewLogger(filepath.Join(t.TempDir(), "events.db"))

	got, err := l.Recent(5)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("len(events) = %d, want 0", len(got))
	}
}
