package journal

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// SQLite keeps the journal in a single events table.
type SQLite struct {
	db   *sql.DB
	path string
}

func OpenSQLite(ctx context.Context, path string) (*SQLite, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if err := migrateSQLite(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLite{db: db, path: path}, nil
}

func migrateSQLite(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS events (
			event_id TEXT PRIMARY KEY,
			session_id TEXT NOT NULL,
			seq INTEGER NOT NULL,
			ts_unixms INTEGER NOT NULL,
			type TEXT NOT NULL,
			entity_id TEXT NOT NULL,
			payload_json TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_events_entity ON events(entity_id);`,
		`CREATE INDEX IF NOT EXISTS idx_events_session ON events(session_id, seq);`,
	}
	for _, st := range stmts {
		if _, err := db.ExecContext(ctx, st); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLite) Path() string { return s.path }

func (s *SQLite) Append(ctx context.Context, ev Event) error {
	pb, err := json.Marshal(ev.Payload)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO events(event_id, session_id, seq, ts_unixms, type, entity_id, payload_json) VALUES(?, ?, ?, ?, ?, ?, ?)`,
		ev.ID, ev.SessionID, ev.Seq, ev.TS.UnixMilli(), ev.Type, ev.EntityID, string(pb),
	)
	return err
}

func (s *SQLite) ReadAll(ctx context.Context) ([]Event, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT event_id, session_id, seq, ts_unixms, type, entity_id, payload_json
		 FROM events
		 ORDER BY rowid ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Event{}
	for rows.Next() {
		var ev Event
		var tsMs int64
		var payloadJSON string
		if err := rows.Scan(&ev.ID, &ev.SessionID, &ev.Seq, &tsMs, &ev.Type, &ev.EntityID, &payloadJSON); err != nil {
			return nil, err
		}
		ev.TS = time.UnixMilli(tsMs).UTC()
		if err := json.Unmarshal([]byte(payloadJSON), &ev.Payload); err != nil {
			return nil, err
		}
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SQLite) Close() error { return s.db.Close() }
