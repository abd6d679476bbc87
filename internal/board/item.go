package board

import (
	"log/slog"

	"projectboard/internal/model"
)

// ProjectItem is the rendered view of one project inside a list container.
// It is the drag source of the board.
type ProjectItem struct {
	hostID  string
	project model.Project
}

func newProjectItem(hostID string, p model.Project) *ProjectItem {
	return &ProjectItem{hostID: hostID, project: p}
}

// ID is the key the item is rendered under.
func (it *ProjectItem) ID() string { return it.project.ID }

// HostID is the id of the list container the item is attached to.
func (it *ProjectItem) HostID() string { return it.hostID }

func (it *ProjectItem) Project() model.Project { return it.project }

func (it *ProjectItem) Title() string { return it.project.Title }

func (it *ProjectItem) Description() string { return it.project.Description }

func (it *ProjectItem) Persons() string { return it.project.Persons() }

func (it *ProjectItem) Assigned() string { return it.project.Persons() + " assigned" }

func (it *ProjectItem) DragStart(t *Transfer) {
	t.SetData(MIMEPlainText, it.project.ID)
	t.EffectAllowed = EffectMove
}

func (it *ProjectItem) DragEnd(t *Transfer) {
	slog.Debug("drag end", "project", it.project.ID, "host", it.hostID)
}
