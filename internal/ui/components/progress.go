package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/cesd/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label   string
	Percent float64
	Counter string // e.g. "7 / 20", shown right of the bar
	Width   int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent float64, counter string, width int) ProgressBar {
	return ProgressBar{
		Label:   label,
		Percent: percent,
		Counter: counter,
		Width:   width,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.TextDim).Render(p.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	counterWidth := 0
	if p.Counter != "" {
		counterWidth = len(p.Counter) + 2
	}

	barWidth := p.Width - labelWidth - counterWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	result += lipgloss.NewStyle().Foreground(theme.Secondary).Render(strings.Repeat("█", filled))
	result += lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("░", empty))

	if p.Counter != "" {
		result += lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render(fmt.Sprintf("  %s", p.Counter))
	}

	return result
}
