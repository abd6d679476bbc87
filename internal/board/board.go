package board

import "projectboard/internal/model"

// Board wires the two project lists, the input form and the drag coordinator
// around one store.
type Board struct {
	Store    Store
	Active   *ProjectList
	Finished *ProjectList
	Form     *InputForm
	Drag     *Coordinator
}

// New builds the board. The active list registers with the store before the
// finished list, so it is always notified first.
func New(store Store) *Board {
	return &Board{
		Store:    store,
		Active:   NewProjectList(store, model.StatusActive),
		Finished: NewProjectList(store, model.StatusFinished),
		Form:     NewInputForm(store),
		Drag:     NewCoordinator(),
	}
}

// Lists returns the lists in column order.
func (b *Board) Lists() []*ProjectList {
	return []*ProjectList{b.Active, b.Finished}
}

func (b *Board) List(status model.ProjectStatus) *ProjectList {
	if status == model.StatusFinished {
		return b.Finished
	}
	return b.Active
}

// FindItem returns the rendered item for projectID and the list holding it.
func (b *Board) FindItem(projectID string) (*ProjectItem, *ProjectList, bool) {
	for _, l := range b.Lists() {
		if i := l.IndexOf(projectID); i >= 0 {
			it, _ := l.Item(i)
			return it, l, true
		}
	}
	return nil, nil, false
}

// View is what the lists currently show.
type View struct {
	Active   []model.Project `json:"active"`
	Finished []model.Project `json:"finished"`
}

func (b *Board) View() View {
	return View{Active: rendered(b.Active), Finished: rendered(b.Finished)}
}

func rendered(l *ProjectList) []model.Project {
	out := make([]model.Project, 0, l.Len())
	for _, it := range l.Items() {
		out = append(out, it.Project())
	}
	return out
}
