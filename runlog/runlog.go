// Package runlog keeps a local SQLite record of what the adapter handed to
// the harness: which agent, which event, and the payload that was produced.
//
// Recording is best effort and opt-in. A Logger with an empty path is
// disabled and discards writes. Payloads must never contain credential
// values; callers log key names and presence, not secrets.
package runlog

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// ErrDisabled indicates the logger has no database path configured.
var ErrDisabled = errors.New("run log disabled")

// Logger writes run events to a SQLite database at DBPath. An empty DBPath
// disables the logger.
type Logger struct {
	DBPath string
}

// NewLogger returns a Logger bound to the provided database path.
func NewLogger(dbPath string) *Logger {
	return &Logger{DBPath: dbPath}
}

// Enabled reports whether events will be persisted.
func (l *Logger) Enabled() bool {
	return l != nil && l.DBPath != ""
}

// Event is one recorded run event.
type Event struct {
	ID      int64
	TS      time.Time
	Agent   string
	Type    string
	Payload json.RawMessage
}

// LogEvent records an event for the named agent. Disabled loggers discard
// the event and return nil.
func (l *Logger) LogEvent(agent string, eventType string, payload any) error {
	if !l.Enabled() {
		return nil
	}

	dbPath, err := resolveDBPath(l.DBPath)
	if err != nil {
		return err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("open run log db: %w", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := ensureSchema(db); err != nil {
		return err
	}

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	_, err = db.Exec(
		"INSERT INTO events (ts, agent, type, payload_json) VALUES (?, ?, ?, ?)",
		time.Now().UTC().Format(time.RFC3339Nano),
		agent,
		eventType,
		string(payloadJSON),
	)
	if err != nil {
		return fmt.Errorf("insert run event: %w", err)
	}

	return nil
}

// Recent returns up to limit events, newest first.
func (l *Logger) Recent(limit int) ([]Event, error) {
	if !l.Enabled() {
		return nil, ErrDisabled
	}
	if limit <= 0 {
		return nil, nil
	}

	dbPath, err := resolveDBPath(l.DBPath)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open run log db: %w", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := ensureSchema(db); err != nil {
		return nil, err
	}

	rows, err := db.Query(
		"SELECT id, ts, agent, type, payload_json FROM events ORDER BY id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query run events: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var events []Event
	for rows.Next() {
		var (
			ev      Event
			ts      string
			payload string
		)
		if err := rows.Scan(&ev.ID, &ts, &ev.Agent, &ev.Type, &payload); err != nil {
			return nil, fmt.Errorf("scan run event: %w", err)
		}

		ev.TS, err = time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			return nil, fmt.Errorf("parse run event time: %w", err)
		}

		ev.Payload = json.RawMessage(payload)
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate run events: %w", err)
	}

	return events, nil
}

func ensureSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			ts TEXT NOT NULL,
			agent TEXT NOT NULL,
			type TEXT NOT NULL,
			payload_json TEXT NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("create run log schema: %w", err)
	}

	return nil
}

func resolveDBPath(dbPath string) (string, error) {
	absPath, err := filepath.Abs(dbPath)
	if err != nil {
		return "", fmt.Errorf("resolve run log db path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return "", fmt.Errorf("ensure run log db dir: %w", err)
	}

	return absPath, nil
}
