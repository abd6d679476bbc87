package tui

import (
	"projectboard/internal/board"

	tea "github.com/charmbracelet/bubbletea"
)

// Options carries the appearance preferences resolved by the CLI.
type Options struct {
	Theme  string // light|dark|auto
	Glyphs string // unicode|ascii
}

// Run shows the board full-screen until the user quits. Mouse cell motion is
// enabled so cards can be dragged between columns.
func Run(b *board.Board, opts Options) error {
	applyColorProfilePreference()
	applyThemePreference(opts.Theme)
	applyGlyphPreference(opts.Glyphs)

	m := newBoardModel(b)
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}
