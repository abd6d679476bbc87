// Package board renders store snapshots into the active and finished project
// lists and coordinates drag-and-drop between them.
package board

import (
	"strings"

	"projectboard/internal/model"
	"projectboard/internal/state"
)

// Store is the part of the project store the board depends on.
type Store interface {
	AddListener(fn state.Listener) state.ListenerID
	RemoveListener(id state.ListenerID) bool
	AddProject(title, description string, people int) model.Project
	MoveProject(id string, status model.ProjectStatus) bool
	Projects() []model.Project
}

// ProjectList shows the projects of one status and accepts drops.
//
// Every notification replaces the rendered items wholesale. That keeps the list
// stateless between notifications; it is linear in the number of projects per
// mutation, which is the known scaling limit for very large boards.
type ProjectList struct {
	status model.ProjectStatus
	store  Store

	elementID string
	listID    string
	heading   string

	assigned  []model.Project
	items     []*ProjectItem
	droppable bool
	renders   int
}

// NewProjectList registers the list with the store and renders its chrome.
func NewProjectList(store Store, status model.ProjectStatus) *ProjectList {
	l := &ProjectList{status: status, store: store}
	l.configure()
	l.renderContent()
	return l
}

func (l *ProjectList) configure() {
	l.store.AddListener(func(projects []model.Project) {
		l.assigned = FilterByStatus(projects, l.status)
		l.renderProjects()
	})
}

func (l *ProjectList) renderContent() {
	l.elementID = l.status.String() + "-projects"
	l.listID = l.elementID + "-list"
	l.heading = strings.ToUpper(l.status.String()) + " PROJECTS"
}

func (l *ProjectList) renderProjects() {
	l.items = make([]*ProjectItem, 0, len(l.assigned))
	for _, p := range l.assigned {
		l.items = append(l.items, newProjectItem(l.listID, p))
	}
	l.renders++
}

// FilterByStatus returns the projects with the given status, in snapshot order.
func FilterByStatus(projects []model.Project, status model.ProjectStatus) []model.Project {
	out := make([]model.Project, 0, len(projects))
	for _, p := range projects {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out
}

func (l *ProjectList) Status() model.ProjectStatus { return l.status }

// ElementID is the id of the list section, e.g. "active-projects".
func (l *ProjectList) ElementID() string { return l.elementID }

// ListID is the id of the item container, e.g. "active-projects-list".
func (l *ProjectList) ListID() string { return l.listID }

func (l *ProjectList) Heading() string { return l.heading }

// Items returns the currently rendered items.
func (l *ProjectList) Items() []*ProjectItem {
	out := make([]*ProjectItem, len(l.items))
	copy(out, l.items)
	return out
}

func (l *ProjectList) Len() int { return len(l.items) }

// Item returns the rendered item at index i.
func (l *ProjectList) Item(i int) (*ProjectItem, bool) {
	if i < 0 || i >= len(l.items) {
		return nil, false
	}
	return l.items[i], true
}

// IndexOf returns the position of the item rendered for projectID.
func (l *ProjectList) IndexOf(projectID string) int {
	for i, it := range l.items {
		if it.ID() == projectID {
			return i
		}
	}
	return -1
}

// Droppable reports whether the list currently shows the drop affordance.
func (l *ProjectList) Droppable() bool { return l.droppable }

// Renders counts how many times the item collection was rebuilt.
func (l *ProjectList) Renders() int { return l.renders }

func (l *ProjectList) DragOver(t *Transfer) bool {
	if t.Type() != MIMEPlainText {
		return false
	}
	l.droppable = true
	return true
}

func (l *ProjectList) DragLeave(_ *Transfer) {
	l.droppable = false
}

// Drop moves the dragged project into this list's status. The list re-renders
// through the store notification, not here.
func (l *ProjectList) Drop(t *Transfer) {
	l.droppable = false
	id := t.Data(MIMEPlainText)
	if id == "" {
		return
	}
	l.store.MoveProject(id, l.status)
}
