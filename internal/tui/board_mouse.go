package tui

import (
	"projectboard/internal/board"

	tea "github.com/charmbracelet/bubbletea"
)

// columnAt returns the column under (x, y).
func (m boardModel) columnAt(x, y int) (int, bool) {
	for c := range m.lists() {
		if m.columnRect(c).contains(x, y) {
			return c, true
		}
	}
	return 0, false
}

// cardAt returns the column and row of the card under (x, y).
func (m boardModel) cardAt(x, y int) (int, int, bool) {
	c, ok := m.columnAt(x, y)
	if !ok {
		return 0, 0, false
	}
	l := m.lists()[c]
	end := min(l.Len(), m.off[c]+m.visibleCards())
	for i := m.off[c]; i < end; i++ {
		if r, ok := m.cardRect(c, i); ok && r.contains(x, y) {
			return c, i, true
		}
	}
	return 0, 0, false
}

func (m boardModel) fieldAt(y int) (int, bool) {
	i := y - headerH
	if i < 0 || i >= fieldCount {
		return 0, false
	}
	return i, true
}

// updateMouse maps pointer gestures onto the drag coordinator: press on a card
// starts a gesture, motion reports over/leave per column, release drops on the
// column under the pointer or cancels outside of both.
func (m boardModel) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.alert != "" {
		if msg.Action == tea.MouseActionPress {
			m.alert = ""
		}
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if c, ok := m.columnAt(msg.X, msg.Y); ok {
				m.col = c
				m.row[c]--
				m.clampSelection()
			}
			return m, nil
		case tea.MouseButtonWheelDown:
			if c, ok := m.columnAt(msg.X, msg.Y); ok {
				m.col = c
				m.row[c]++
				m.clampSelection()
			}
			return m, nil
		case tea.MouseButtonLeft:
		default:
			return m, nil
		}

		if i, ok := m.fieldAt(msg.Y); ok {
			return m.focusField(i)
		}
		c, i, ok := m.cardAt(msg.X, msg.Y)
		if !ok {
			return m, nil
		}
		m = m.focusBoard()
		m.col = c
		m.row[c] = i
		m.minibuffer = ""
		if m.b.Drag.Dragging() {
			return m, nil
		}
		m.pickUp()
		m.mouseDrag = m.b.Drag.Dragging()
		return m, nil

	case tea.MouseActionMotion:
		if !m.mouseDrag {
			return m, nil
		}
		if c, ok := m.columnAt(msg.X, msg.Y); ok {
			m.b.Drag.Over(m.lists()[c])
			return m, nil
		}
		if hover := m.b.Drag.Hover(); hover != nil {
			m.b.Drag.Leave(hover)
		}
		return m, nil

	case tea.MouseActionRelease:
		if !m.mouseDrag {
			return m, nil
		}
		m.mouseDrag = false
		var target *board.ProjectList
		if c, ok := m.columnAt(msg.X, msg.Y); ok {
			target = m.lists()[c]
		}
		if target == nil {
			m.cancelDrag()
			return m, nil
		}
		m.drop(target)
		return m, nil
	}
	return m, nil
}
