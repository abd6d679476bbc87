// Package state holds the single source of truth for all projects on the board
// and fans out change notifications to registered listeners.
package state

import (
	"log/slog"
	"sync"

	"projectboard/internal/model"
)

// Listener receives a full snapshot of every project after each accepted mutation.
type Listener func(projects []model.Project)

// ListenerID identifies a registered listener for RemoveListener.
type ListenerID uint64

type registration struct {
	id ListenerID
	fn Listener
}

// ProjectState owns the ordered project sequence and the listener list.
//
// It is used from a single goroutine (the UI loop or the script runner) and is
// not safe for concurrent use. Listeners run synchronously, in registration
// order, before the mutating call returns.
type ProjectState struct {
	projects  []model.Project
	listeners []registration
	nextID    ListenerID
}

// Handle owns the lazily constructed store for one process. The composition
// root keeps exactly one Handle and passes the store it returns to every
// component that needs it.
type Handle struct {
	once sync.Once
	st   *ProjectState
}

// GetInstance returns the shared store, constructing it on the first call.
func (h *Handle) GetInstance() *ProjectState {
	h.once.Do(func() {
		h.st = &ProjectState{}
	})
	return h.st
}

// AddListener registers fn. Registering the same function twice yields two
// invocations per mutation.
func (s *ProjectState) AddListener(fn Listener) ListenerID {
	s.nextID++
	s.listeners = append(s.listeners, registration{id: s.nextID, fn: fn})
	return s.nextID
}

// RemoveListener unregisters a listener. It reports false for unknown ids.
func (s *ProjectState) RemoveListener(id ListenerID) bool {
	for i, r := range s.listeners {
		if r.id == id {
			s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
			return true
		}
	}
	return false
}

// AddProject appends a new active project and notifies all listeners.
// Inputs are expected to be validated by the caller.
func (s *ProjectState) AddProject(title, description string, people int) model.Project {
	p := model.Project{
		ID:          newProjectID(),
		Title:       title,
		Description: description,
		People:      people,
		Status:      model.StatusActive,
	}
	s.projects = append(s.projects, p)
	slog.Debug("project added", "id", p.ID, "title", p.Title)
	s.updateListeners()
	return p
}

// MoveProject sets the status of the project with the given id. Unknown ids,
// statuses outside the defined set and moves to the current status are no-ops
// and do not notify. It reports whether the project changed.
func (s *ProjectState) MoveProject(id string, status model.ProjectStatus) bool {
	if !status.Valid() {
		return false
	}
	for i := range s.projects {
		if s.projects[i].ID != id {
			continue
		}
		if s.projects[i].Status == status {
			return false
		}
		from := s.projects[i].Status
		s.projects[i].Status = status
		slog.Debug("project moved", "id", id, "from", from.String(), "to", status.String())
		s.updateListeners()
		return true
	}
	return false
}

// Projects returns a snapshot of every project in insertion order.
func (s *ProjectState) Projects() []model.Project {
	return s.snapshot()
}

// Len returns the number of projects.
func (s *ProjectState) Len() int { return len(s.projects) }

func (s *ProjectState) snapshot() []model.Project {
	out := make([]model.Project, len(s.projects))
	copy(out, s.projects)
	return out
}

func (s *ProjectState) updateListeners() {
	// Listeners added or removed from inside a callback take effect on the
	// next mutation.
	regs := make([]registration, len(s.listeners))
	copy(regs, s.listeners)
	for _, r := range regs {
		r.fn(s.snapshot())
	}
	slog.Debug("listeners notified", "listeners", len(regs), "projects", len(s.projects))
}
