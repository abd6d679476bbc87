package tui

import (
	"errors"
	"log/slog"

	"projectboard/internal/board"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type focusArea int

const (
	focusForm focusArea = iota
	focusBoard
)

const (
	fieldTitle = iota
	fieldDescription
	fieldPeople
	fieldCount
)

var fieldLabels = [fieldCount]string{"Title", "Description", "People"}

// boardModel is the bubbletea model for the project board. All project state
// lives in the store behind b; the model only tracks focus, selection and the
// form's raw text.
type boardModel struct {
	b    *board.Board
	keys keyMap

	width  int
	height int

	inputs [fieldCount]textinput.Model
	field  int
	focus  focusArea

	col int
	row [2]int
	off [2]int

	alert      string
	showHelp   bool
	mouseDrag  bool
	minibuffer string
}

func newBoardModel(b *board.Board) boardModel {
	m := boardModel{b: b, keys: defaultKeyMap()}
	placeholders := [fieldCount]string{"Project title", "What is it about? (markdown)", "2-4"}
	for i := range m.inputs {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = placeholders[i]
		in.CharLimit = 200
		m.inputs[i] = in
	}
	m.inputs[fieldPeople].CharLimit = 3
	m.inputs[fieldTitle].Focus()
	return m
}

func (m boardModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		w := m.width - formLabelW - 2
		if w < 10 {
			w = 10
		}
		for i := range m.inputs {
			m.inputs[i].Width = w
		}
		m.clampSelection()
		return m, nil
	case tea.MouseMsg:
		return m.updateMouse(msg)
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			m.b.Drag.Cancel()
			return m, tea.Quit
		}
		if m.alert != "" {
			return m.updateAlert(msg)
		}
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		m.minibuffer = ""
		if m.focus == focusForm {
			return m.updateForm(msg)
		}
		return m.updateBoard(msg)
	}

	if m.focus == focusForm {
		var cmd tea.Cmd
		m.inputs[m.field], cmd = m.inputs[m.field].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m boardModel) updateAlert(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Enter) || key.Matches(msg, m.keys.Back) || key.Matches(msg, m.keys.PickUp) {
		m.alert = ""
	}
	return m, nil
}

func (m boardModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	case key.Matches(msg, m.keys.Enter):
		if m.field == fieldPeople {
			return m.submit()
		}
		return m.focusField(m.field + 1)
	case key.Matches(msg, m.keys.NextField):
		if m.field == fieldPeople {
			return m.focusBoard(), nil
		}
		return m.focusField(m.field + 1)
	case key.Matches(msg, m.keys.PrevField):
		if m.field == fieldTitle {
			return m.focusBoard(), nil
		}
		return m.focusField(m.field - 1)
	case key.Matches(msg, m.keys.Back):
		return m.focusBoard(), nil
	}

	var cmd tea.Cmd
	m.inputs[m.field], cmd = m.inputs[m.field].Update(msg)
	return m, cmd
}

func (m boardModel) focusField(i int) (boardModel, tea.Cmd) {
	if i < 0 {
		i = 0
	}
	if i >= fieldCount {
		i = fieldCount - 1
	}
	for j := range m.inputs {
		m.inputs[j].Blur()
	}
	m.focus = focusForm
	m.field = i
	cmd := m.inputs[i].Focus()
	return m, cmd
}

func (m boardModel) focusBoard() boardModel {
	for j := range m.inputs {
		m.inputs[j].Blur()
	}
	m.focus = focusBoard
	m.clampSelection()
	return m
}

// submit hands the raw field text to the form. Rejected input raises the
// alert and leaves the fields as typed.
func (m boardModel) submit() (tea.Model, tea.Cmd) {
	f := m.b.Form
	f.Title = m.inputs[fieldTitle].Value()
	f.Description = m.inputs[fieldDescription].Value()
	f.People = m.inputs[fieldPeople].Value()

	p, err := f.Submit()
	if err != nil {
		if errors.Is(err, board.ErrInvalidInput) {
			m.alert = board.AlertInvalidInput
			return m, nil
		}
		slog.Error("add project failed", "err", err)
		m.minibuffer = err.Error()
		return m, nil
	}

	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.minibuffer = "Added " + p.Title
	m.selectProject(p.ID)
	return m.focusField(fieldTitle)
}

func (m boardModel) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	dragging := m.b.Drag.Dragging()
	switch {
	case key.Matches(msg, m.keys.Quit) && !dragging:
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help) && !dragging:
		m.showHelp = true
	case (key.Matches(msg, m.keys.NextField) || key.Matches(msg, m.keys.NewProj)) && !dragging:
		return m.focusField(fieldTitle)
	case key.Matches(msg, m.keys.PrevField) && !dragging:
		return m.focusField(fieldPeople)
	case key.Matches(msg, m.keys.Left):
		m.moveColumn(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveColumn(1)
	case key.Matches(msg, m.keys.Up):
		m.row[m.col]--
		m.clampSelection()
	case key.Matches(msg, m.keys.Down):
		m.row[m.col]++
		m.clampSelection()
	case key.Matches(msg, m.keys.PickUp):
		if dragging {
			m.drop(m.lists()[m.col])
		} else {
			m.pickUp()
		}
	case key.Matches(msg, m.keys.Enter):
		if dragging {
			m.drop(m.lists()[m.col])
		}
	case key.Matches(msg, m.keys.Back):
		if dragging {
			m.cancelDrag()
		}
	}
	return m, nil
}

func (m *boardModel) lists() []*board.ProjectList {
	return m.b.Lists()
}

func (m *boardModel) moveColumn(delta int) {
	c := m.col + delta
	if c < 0 || c >= len(m.lists()) {
		return
	}
	m.col = c
	m.clampSelection()
	if m.b.Drag.Dragging() {
		m.b.Drag.Over(m.lists()[c])
	}
}

func (m *boardModel) selected() (*board.ProjectItem, bool) {
	return m.lists()[m.col].Item(m.row[m.col])
}

// carried returns the item being dragged, if any.
func (m *boardModel) carried() (*board.ProjectItem, bool) {
	it, ok := m.b.Drag.Source().(*board.ProjectItem)
	return it, ok && it != nil
}

func (m *boardModel) pickUp() {
	it, ok := m.selected()
	if !ok {
		return
	}
	if err := m.b.Drag.Start(it); err != nil {
		m.minibuffer = err.Error()
		return
	}
	m.b.Drag.Over(m.lists()[m.col])
}

func (m *boardModel) drop(target *board.ProjectList) {
	it, ok := m.carried()
	if !ok {
		return
	}
	id, title := it.ID(), it.Title()
	if m.b.Drag.Drop(target) {
		m.minibuffer = "Moved " + title + " " + glyphArrow() + " " + target.Status().String()
	} else {
		m.minibuffer = "Drag cancelled"
	}
	m.selectProject(id)
}

func (m *boardModel) cancelDrag() {
	it, ok := m.carried()
	m.b.Drag.Cancel()
	m.minibuffer = "Drag cancelled"
	if ok {
		m.selectProject(it.ID())
	}
}

// selectProject moves the cursor to wherever projectID is rendered now.
func (m *boardModel) selectProject(projectID string) {
	_, l, ok := m.b.FindItem(projectID)
	if !ok {
		m.clampSelection()
		return
	}
	for c, cand := range m.lists() {
		if cand == l {
			m.col = c
			m.row[c] = l.IndexOf(projectID)
		}
	}
	m.clampSelection()
}

// clampSelection keeps cursors and scroll offsets inside the rendered lists.
// The lists re-render on every store change, so this runs after each action.
func (m *boardModel) clampSelection() {
	visible := m.visibleCards()
	for c, l := range m.lists() {
		n := l.Len()
		if m.row[c] >= n {
			m.row[c] = n - 1
		}
		if m.row[c] < 0 {
			m.row[c] = 0
		}
		if m.row[c] < m.off[c] {
			m.off[c] = m.row[c]
		}
		if m.row[c] >= m.off[c]+visible {
			m.off[c] = m.row[c] - visible + 1
		}
		if m.off[c] > n-visible {
			m.off[c] = n - visible
		}
		if m.off[c] < 0 {
			m.off[c] = 0
		}
	}
}
