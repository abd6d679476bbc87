package board

import (
	"testing"

	"projectboard/internal/model"
	"projectboard/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBoard(t *testing.T) (*state.ProjectState, *ProjectList, *ProjectList) {
	t.Helper()
	st := (&state.Handle{}).GetInstance()
	active := NewProjectList(st, model.StatusActive)
	finished := NewProjectList(st, model.StatusFinished)
	return st, active, finished
}

func titles(l *ProjectList) []string {
	var out []string
	for _, it := range l.Items() {
		out = append(out, it.Title())
	}
	return out
}

func TestNewProjectListRendersChrome(t *testing.T) {
	_, active, finished := newTestBoard(t)

	assert.Equal(t, "active-projects", active.ElementID())
	assert.Equal(t, "active-projects-list", active.ListID())
	assert.Equal(t, "ACTIVE PROJECTS", active.Heading())

	assert.Equal(t, "finished-projects", finished.ElementID())
	assert.Equal(t, "finished-projects-list", finished.ListID())
	assert.Equal(t, "FINISHED PROJECTS", finished.Heading())

	assert.Zero(t, active.Len())
	assert.Zero(t, active.Renders())
}

func TestFilterByStatusPreservesOrder(t *testing.T) {
	snap := []model.Project{
		{ID: "a", Status: model.StatusActive},
		{ID: "b", Status: model.StatusActive},
		{ID: "c", Status: model.StatusFinished},
	}

	act := FilterByStatus(snap, model.StatusActive)
	require.Len(t, act, 2)
	assert.Equal(t, "a", act[0].ID)
	assert.Equal(t, "b", act[1].ID)

	fin := FilterByStatus(snap, model.StatusFinished)
	require.Len(t, fin, 1)
	assert.Equal(t, "c", fin[0].ID)
}

func TestListsRenderFilteredSnapshot(t *testing.T) {
	st, active, finished := newTestBoard(t)
	st.AddProject("one", "desc", 2)
	st.AddProject("two", "desc", 2)
	three := st.AddProject("three", "desc", 2)
	require.True(t, st.MoveProject(three.ID, model.StatusFinished))

	assert.Equal(t, []string{"one", "two"}, titles(active))
	assert.Equal(t, []string{"three"}, titles(finished))
}

func TestScenarioBuildSiteWriteDocs(t *testing.T) {
	st, active, finished := newTestBoard(t)
	first := st.AddProject("Build site", "desc", 3)
	st.AddProject("Write docs", "desc", 2)
	st.MoveProject(first.ID, model.StatusFinished)

	assert.Equal(t, []string{"Write docs"}, titles(active))
	assert.Equal(t, []string{"Build site"}, titles(finished))
}

func TestListRerendersWholesaleOnEveryNotification(t *testing.T) {
	st, active, finished := newTestBoard(t)
	p := st.AddProject("Build site", "desc", 3)
	before := active.Items()
	require.Len(t, before, 1)

	st.AddProject("Write docs", "desc", 2)
	after := active.Items()
	require.Len(t, after, 2)
	assert.NotSame(t, before[0], after[0], "items are rebuilt, not patched")

	// Finished list re-renders too even though its content is unchanged.
	assert.Equal(t, 2, finished.Renders())
	assert.Zero(t, finished.Len())

	st.MoveProject(p.ID, model.StatusActive)
	assert.Equal(t, 2, active.Renders(), "no-op move must not re-render")
}

func TestItemsAreAttachedToListContainer(t *testing.T) {
	st, active, _ := newTestBoard(t)
	p := st.AddProject("Build site", "desc", 1)

	it, ok := active.Item(0)
	require.True(t, ok)
	assert.Equal(t, p.ID, it.ID())
	assert.Equal(t, "active-projects-list", it.HostID())
	assert.Equal(t, "1 person", it.Persons())
	assert.Equal(t, "1 person assigned", it.Assigned())
	assert.Equal(t, 0, active.IndexOf(p.ID))
	assert.Equal(t, -1, active.IndexOf("prj-missing"))

	_, ok = active.Item(1)
	assert.False(t, ok)
}
