package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cesd/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for cards.
// All cards are rendered at this width so they visually align.
func ContentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 72 {
		w = 72
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Card wraps content in a rounded-border card at the given content width.
func Card(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw).
		Padding(0, 2).
		Render(content)
}

// Notice renders a highlighted box, used for the privacy notice, the install
// banner and blocking messages.
func Notice(title, body string, cw int) string {
	t := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(title)
	b := lipgloss.NewStyle().Foreground(theme.Text).Width(cw - 6).Render(body)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Secondary).
		Width(cw).
		Padding(0, 2).
		Render(t + "\n" + b)
}
