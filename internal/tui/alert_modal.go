package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func modalBodyWidth(width int) int {
	w := width - 12
	if w > 56 {
		w = 56
	}
	if w < 20 {
		w = 20
	}
	return w
}

// renderModalBox frames content with a title. The box is not placed; callers
// center it over the screen.
func renderModalBox(width int, title string, content string) string {
	bodyW := modalBodyWidth(width)
	head := styleHeading().Width(bodyW).Render(title)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAlertBorder).
		Padding(0, 1).
		Render(head + "\n\n" + lipgloss.NewStyle().Width(bodyW).Render(content))
}

func renderAlertModal(width int, message string) string {
	bodyW := modalBodyWidth(width)
	help := styleMuted().Width(bodyW).Render("enter/esc: dismiss")
	content := strings.Join([]string{
		message,
		"",
		help,
	}, "\n")
	return renderModalBox(width, "Add project", content)
}
