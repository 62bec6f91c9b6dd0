package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cesd/internal/ui/theme"
)

// RadioOption is one choice in a RadioGroup.
type RadioOption struct {
	Label    string
	Sublabel string
}

// RadioGroup renders one question with a single-choice option list.
// Cursor is the highlighted row; Chosen is the recorded choice or -1.
type RadioGroup struct {
	Prompt  string
	Options []RadioOption
	Cursor  int
	Chosen  int
}

// NewRadioGroup creates a radio group with nothing chosen.
func NewRadioGroup(prompt string, options []RadioOption) RadioGroup {
	return RadioGroup{
		Prompt:  prompt,
		Options: options,
		Chosen:  -1,
	}
}

// Update moves the cursor. Choosing is left to the caller, which owns the
// answer state.
func (r RadioGroup) Update(msg tea.Msg) (RadioGroup, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if r.Cursor > 0 {
			r.Cursor--
		}
	case "down", "j":
		if r.Cursor < len(r.Options)-1 {
			r.Cursor++
		}
	}
	return r, nil
}

// View renders the prompt and options.
func (r RadioGroup) View() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(r.Prompt))
	b.WriteString("\n\n")

	for i, opt := range r.Options {
		mark := "○"
		if i == r.Chosen {
			mark = "●"
		}
		prefix := "  "
		if i == r.Cursor {
			prefix = "▸ "
		}

		labelStyle := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case i == r.Cursor:
			labelStyle = labelStyle.Foreground(theme.Primary).Bold(true)
		case i == r.Chosen:
			labelStyle = labelStyle.Foreground(theme.Secondary)
		}

		line := fmt.Sprintf("%s%s %d  %s", prefix, mark, i+1, opt.Label)
		b.WriteString(labelStyle.Render(line))
		if opt.Sublabel != "" {
			b.WriteString(" ")
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(opt.Sublabel))
		}
		b.WriteString("\n")
	}
	return b.String()
}
