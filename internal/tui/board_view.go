package tui

import (
	"fmt"
	"strings"

	"projectboard/internal/board"
	"projectboard/internal/docs"
	"projectboard/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// Screen rows, top to bottom: header, form, the two columns, the detail strip
// and the footer. Mouse hit-testing uses the same geometry as View.
const (
	headerH    = 2
	formH      = 4
	detailH    = 5
	footerH    = 1
	cardH      = 4
	colGap     = 2
	colChromeH = 2 // heading + rule
	formLabelW = 13
	minColH    = 2 + colChromeH + cardH
)

func (m boardModel) colTop() int { return headerH + formH }

func (m boardModel) colHeight() int {
	h := m.height - m.colTop() - detailH - footerH
	if h < minColH {
		h = minColH
	}
	return h
}

func (m boardModel) colWidth() int {
	w := (m.width - colGap) / 2
	if w < 12 {
		w = 12
	}
	return w
}

// columnRect is the outer (bordered) area of column c.
func (m boardModel) columnRect(c int) rect {
	w := m.colWidth()
	return rect{x: c * (w + colGap), y: m.colTop(), w: w, h: m.colHeight()}
}

func (m boardModel) visibleCards() int {
	n := (m.colHeight() - 2 - colChromeH) / cardH
	if n < 1 {
		n = 1
	}
	return n
}

// cardRect is the area of the i-th card of column c, if it is on screen.
func (m boardModel) cardRect(c, i int) (rect, bool) {
	slot := i - m.off[c]
	if slot < 0 || slot >= m.visibleCards() {
		return rect{}, false
	}
	col := m.columnRect(c)
	return rect{
		x: col.x + 1,
		y: col.y + 1 + colChromeH + slot*cardH,
		w: col.w - 2,
		h: cardH,
	}, true
}

func (m boardModel) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "Loading…"
	}

	if m.alert != "" {
		modal := renderAlertModal(m.width, m.alert)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
	}
	if m.showHelp {
		return m.viewHelp()
	}

	return strings.Join([]string{
		m.viewHeader(),
		m.viewForm(),
		m.viewColumns(),
		m.viewDetail(),
		m.viewFooter(),
	}, "\n")
}

func (m boardModel) viewHeader() string {
	title := styleHeading().Render("Projects")
	counts := styleMuted().Render(fmt.Sprintf("%d active  %d finished", m.b.Active.Len(), m.b.Finished.Len()))
	rule := styleMuted().Render(strings.Repeat(glyphHRule(), max(0, m.width)))
	return fitBlock(title+"  "+counts+"\n"+rule, m.width, headerH)
}

func (m boardModel) viewForm() string {
	lines := make([]string, 0, formH)
	for i := range m.inputs {
		label := fieldLabels[i] + ":"
		ls := styleMuted()
		if m.focus == focusForm && m.field == i {
			ls = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
		}
		label = ls.Render(fmt.Sprintf("%-*s", formLabelW, label))
		in := lipgloss.NewStyle().Background(colorInputBg).Render(m.inputs[i].View())
		lines = append(lines, label+in)
	}
	lines = append(lines, "")
	return fitBlock(strings.Join(lines, "\n"), m.width, formH)
}

func (m boardModel) viewColumns() string {
	cols := make([]string, 0, 2)
	for c, l := range m.lists() {
		cols = append(cols, m.viewColumn(c, l))
	}
	gap := strings.Repeat(" ", colGap)
	out := lipgloss.JoinHorizontal(lipgloss.Top, cols[0], gap, cols[1])
	return fitBlock(out, m.width, m.colHeight())
}

func (m boardModel) viewColumn(c int, l *board.ProjectList) string {
	r := m.columnRect(c)
	innerW, innerH := r.w-2, r.h-2

	heading := styleHeading().Render(fmt.Sprintf("%s (%d)", l.Heading(), l.Len()))
	if l.Droppable() {
		heading += "  " + lipgloss.NewStyle().Foreground(colorDroppable).Render(glyphArrow()+" drop here")
	}
	lines := []string{
		fitLine(heading, innerW),
		styleMuted().Render(strings.Repeat(glyphHRule(), innerW)),
	}

	if l.Len() == 0 {
		lines = append(lines, styleMuted().Render("No projects."))
	}
	carriedID := ""
	if it, ok := m.carried(); ok {
		carriedID = it.ID()
	}
	end := min(l.Len(), m.off[c]+m.visibleCards())
	for i := m.off[c]; i < end; i++ {
		it, _ := l.Item(i)
		sel := m.focus == focusBoard && m.col == c && m.row[c] == i
		lines = append(lines, m.viewCard(it, innerW, sel, it.ID() == carriedID))
	}

	border := colorCardBorder
	switch {
	case l.Droppable():
		border = colorDroppable
	case m.focus == focusBoard && m.col == c:
		border = colorAccent
	}
	content := fitBlock(strings.Join(lines, "\n"), innerW, innerH)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Render(content)
}

func (m boardModel) viewCard(it *board.ProjectItem, width int, selected, carried bool) string {
	handle := styleMuted().Render(glyphHandle())
	titleStyle := lipgloss.NewStyle().Bold(true)
	if carried {
		handle = lipgloss.NewStyle().Foreground(colorCarriedFg).Render(glyphCarry())
		titleStyle = titleStyle.Foreground(colorCarriedFg)
	}
	if it.Project().Status == model.StatusFinished {
		handle = lipgloss.NewStyle().Foreground(colorFinishedMark).Render(glyphCheck())
	}
	desc := it.Description()
	if i := strings.IndexByte(desc, '\n'); i >= 0 {
		desc = desc[:i]
	}
	lines := []string{
		handle + " " + titleStyle.Render(it.Title()),
		"  " + styleMuted().Render(it.Assigned()),
		"  " + desc,
		"",
	}
	card := fitBlock(strings.Join(lines, "\n"), width, cardH)
	if selected {
		return lipgloss.NewStyle().Background(colorSelectedBg).Foreground(colorSelectedFg).Render(card)
	}
	return card
}

func (m boardModel) viewDetail() string {
	var lines []string
	if it, ok := m.selected(); ok && m.focus == focusBoard {
		lines = append(lines, styleHeading().Render(it.Title())+"  "+styleMuted().Render(it.Assigned()))
		if md := renderMarkdown(it.Description(), m.width-2); md != "" {
			lines = append(lines, md)
		}
	}
	return fitBlock(strings.Join(lines, "\n"), m.width, detailH)
}

func (m boardModel) viewFooter() string {
	if m.minibuffer != "" {
		return fitLine(m.minibuffer, m.width)
	}
	var help string
	switch {
	case m.b.Drag.Dragging():
		title := ""
		if it, ok := m.carried(); ok {
			title = it.Title()
		}
		help = fmt.Sprintf("carrying %s  h/l: column  enter: drop  esc: cancel", title)
	case m.focus == focusForm:
		help = helpLine(m.keys.NextField, m.keys.Enter, m.keys.Submit, m.keys.Back, m.keys.ForceQuit)
	default:
		help = helpLine(m.keys.Left, m.keys.Up, m.keys.PickUp, m.keys.NewProj, m.keys.Help, m.keys.Quit)
	}
	return fitLine(styleMuted().Render(help), m.width)
}

func (m boardModel) viewHelp() string {
	body, _ := docs.Get("board")
	w := min(m.width-4, 80)
	out := renderMarkdown(body, w)
	out += "\n\n" + styleMuted().Render("any key: close")
	return fitBlock(lipgloss.NewStyle().Padding(1, 2).Render(out), m.width, m.height)
}
