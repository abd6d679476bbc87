package journal

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"projectboard/internal/model"
	"projectboard/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectBackend(t *testing.T) {
	assert.Equal(t, BackendSQLite, DetectBackend("/tmp/board.sqlite"))
	assert.Equal(t, BackendSQLite, DetectBackend("board.DB"))
	assert.Equal(t, BackendJSONL, DetectBackend("board.jsonl"))
	assert.Equal(t, BackendJSONL, DetectBackend("journal"))
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrNoPath)
}

func TestDiff(t *testing.T) {
	prev := []model.Project{
		{ID: "a", Title: "A", Status: model.StatusActive},
		{ID: "b", Title: "B", Status: model.StatusActive},
	}
	next := []model.Project{
		{ID: "a", Title: "A", Status: model.StatusFinished},
		{ID: "b", Title: "B", Status: model.StatusActive},
		{ID: "c", Title: "C", People: 2, Status: model.StatusActive},
	}

	evs := Diff(prev, next)
	require.Len(t, evs, 2)
	assert.Equal(t, EventProjectMoved, evs[0].Type)
	assert.Equal(t, "a", evs[0].EntityID)
	assert.Equal(t, map[string]any{"from": "active", "to": "finished"}, evs[0].Payload)

	assert.Equal(t, EventProjectAdded, evs[1].Type)
	assert.Equal(t, "c", evs[1].EntityID)
	assert.Equal(t, "C", evs[1].Payload["title"])

	assert.Empty(t, Diff(next, next))
}

func recordSession(t *testing.T, b Backend) *Recorder {
	t.Helper()
	st := (&state.Handle{}).GetInstance()
	rec := NewRecorder(b)
	rec.now = func() time.Time { return time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC) }
	st.AddListener(rec.Listen)

	first := st.AddProject("Build site", "desc", 3)
	st.AddProject("Write docs", "desc", 2)
	st.MoveProject(first.ID, model.StatusFinished)
	st.MoveProject(first.ID, model.StatusFinished)
	return rec
}

func TestRecorderJSONL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "journal.jsonl")
	b, err := Open(context.Background(), path)
	require.NoError(t, err)
	_, ok := b.(*JSONL)
	require.True(t, ok, "expected JSONL backend, got %T", b)

	rec := recordSession(t, b)
	require.NoError(t, rec.Err())
	require.NoError(t, rec.Close())

	evs, err := b.ReadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, evs, 3)
	assert.Equal(t, []string{EventProjectAdded, EventProjectAdded, EventProjectMoved},
		[]string{evs[0].Type, evs[1].Type, evs[2].Type})
	assert.Equal(t, []int64{1, 2, 3}, []int64{evs[0].Seq, evs[1].Seq, evs[2].Seq})
	assert.Equal(t, rec.SessionID(), evs[2].SessionID)
	assert.Equal(t, float64(3), evs[0].Payload["people"])
	assert.Equal(t, "finished", evs[2].Payload["to"])
}

func TestRecorderSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.sqlite")
	b, err := Open(context.Background(), path)
	require.NoError(t, err)
	_, ok := b.(*SQLite)
	require.True(t, ok, "expected SQLite backend, got %T", b)

	rec := recordSession(t, b)
	require.NoError(t, rec.Err())

	evs, err := b.ReadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, evs, 3)
	assert.Equal(t, EventProjectMoved, evs[2].Type)
	assert.Equal(t, "active", evs[2].Payload["from"])
	assert.Equal(t, time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC), evs[0].TS)
	require.NoError(t, rec.Close())

	// Reopening appends to the same table.
	b2, err := OpenSQLite(context.Background(), path)
	require.NoError(t, err)
	defer b2.Close()
	evs, err = b2.ReadAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, evs, 3)
}

func TestJSONLReadAllMissingFile(t *testing.T) {
	j := &JSONL{path: filepath.Join(t.TempDir(), "none.jsonl")}
	evs, err := j.ReadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, evs)
}

type failingBackend struct{ appends int }

func (f *failingBackend) Append(context.Context, Event) error {
	f.appends++
	return errors.New("disk full")
}
func (f *failingBackend) ReadAll(context.Context) ([]Event, error) { return nil, nil }
func (f *failingBackend) Close() error                             { return nil }

func TestRecorderKeepsGoingOnAppendFailure(t *testing.T) {
	fb := &failingBackend{}
	st := (&state.Handle{}).GetInstance()
	rec := NewRecorder(fb)
	st.AddListener(rec.Listen)

	st.AddProject("one", "desc", 2)
	st.AddProject("two", "desc", 2)
	assert.Equal(t, 2, fb.appends)
	assert.EqualError(t, rec.Err(), "disk full")
	assert.Equal(t, 2, st.Len())
}
