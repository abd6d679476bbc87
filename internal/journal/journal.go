// Package journal records board mutations as an append-only event log.
//
// The journal is an audit trail. It is never replayed into the store.
package journal

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"projectboard/internal/model"

	"github.com/google/uuid"
)

const (
	EventProjectAdded = "project.added"
	EventProjectMoved = "project.moved"
)

type Event struct {
	ID        string         `json:"id"`
	SessionID string         `json:"sessionId"`
	Seq       int64          `json:"seq"`
	TS        time.Time      `json:"ts"`
	Type      string         `json:"type"`
	EntityID  string         `json:"entityId"`
	Payload   map[string]any `json:"payload"`
}

// Backend stores journal events.
type Backend interface {
	Append(ctx context.Context, ev Event) error
	ReadAll(ctx context.Context) ([]Event, error)
	Close() error
}

type BackendKind string

const (
	BackendJSONL  BackendKind = "jsonl"
	BackendSQLite BackendKind = "sqlite"
)

var ErrNoPath = errors.New("journal: missing path")

// DetectBackend picks the backend from the file extension.
func DetectBackend(path string) BackendKind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".sqlite", ".sqlite3", ".db":
		return BackendSQLite
	default:
		return BackendJSONL
	}
}

// Open opens (creating if needed) the journal at path.
func Open(ctx context.Context, path string) (Backend, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, ErrNoPath
	}
	switch DetectBackend(path) {
	case BackendSQLite:
		return OpenSQLite(ctx, path)
	default:
		return OpenJSONL(path)
	}
}

// Diff turns two consecutive snapshots into events. Seq, TS and ids are
// filled in by the Recorder.
func Diff(prev, next []model.Project) []Event {
	before := make(map[string]model.Project, len(prev))
	for _, p := range prev {
		before[p.ID] = p
	}
	var out []Event
	for _, p := range next {
		old, ok := before[p.ID]
		if !ok {
			out = append(out, Event{
				Type:     EventProjectAdded,
				EntityID: p.ID,
				Payload: map[string]any{
					"title":       p.Title,
					"description": p.Description,
					"people":      p.People,
					"status":      p.Status.String(),
				},
			})
			continue
		}
		if old.Status != p.Status {
			out = append(out, Event{
				Type:     EventProjectMoved,
				EntityID: p.ID,
				Payload: map[string]any{
					"from": old.Status.String(),
					"to":   p.Status.String(),
				},
			})
		}
	}
	return out
}

// Recorder is a store listener that appends one event per observed change.
// Write failures are logged and kept in Err; they never interrupt the board.
type Recorder struct {
	backend   Backend
	sessionID string
	seq       int64
	prev      []model.Project
	now       func() time.Time
	err       error
}

func NewRecorder(b Backend) *Recorder {
	return &Recorder{
		backend:   b,
		sessionID: uuid.NewString(),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (r *Recorder) SessionID() string { return r.sessionID }

// Listen has the store listener signature.
func (r *Recorder) Listen(projects []model.Project) {
	evs := Diff(r.prev, projects)
	r.prev = projects
	ctx := context.Background()
	for _, ev := range evs {
		r.seq++
		ev.ID = "evt-" + uuid.NewString()
		ev.SessionID = r.sessionID
		ev.Seq = r.seq
		ev.TS = r.now()
		if err := r.backend.Append(ctx, ev); err != nil {
			r.err = err
			slog.Warn("journal append failed", "type", ev.Type, "entity", ev.EntityID, "err", err)
		}
	}
}

// Err returns the last append failure, if any.
func (r *Recorder) Err() error { return r.err }

func (r *Recorder) Close() error { return r.backend.Close() }
