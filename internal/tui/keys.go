package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit      key.Binding
	ForceQuit key.Binding
	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding
	Enter     key.Binding
	Back      key.Binding
	NewProj   key.Binding
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	PickUp    key.Binding
	Help      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		NextField: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Submit:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "add project")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		NewProj:   key.NewBinding(key.WithKeys("n", "a"), key.WithHelp("n", "new project")),
		Left:      key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/l", "column")),
		Right:     key.NewBinding(key.WithKeys("l", "right")),
		Up:        key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("j/k", "select")),
		Down:      key.NewBinding(key.WithKeys("j", "down")),
		PickUp:    key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "pick up / drop")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	}
}

func helpLine(bs ...key.Binding) string {
	out := ""
	for _, b := range bs {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		if out != "" {
			out += "  "
		}
		out += h.Key + ": " + h.Desc
	}
	return out
}
