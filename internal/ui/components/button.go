package components

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cesd/internal/ui/theme"
)

// Button fires OnPress when its binding is pressed while Active. An inactive
// button shows Reason beneath its label.
type Button struct {
	Label   string
	Active  bool
	Reason  string
	Binding key.Binding
	OnPress func() tea.Cmd
}

// NewButton creates a button bound to enter.
func NewButton(label string, active bool, onPress func() tea.Cmd) Button {
	return Button{
		Label:   label,
		Active:  active,
		Binding: key.NewBinding(key.WithKeys("enter")),
		OnPress: onPress,
	}
}

// WithReason returns a copy of b that explains why it is inactive.
func (b Button) WithReason(reason string) Button {
	b.Reason = reason
	return b
}

func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	if !b.Active || b.OnPress == nil {
		return b, nil
	}
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && key.Matches(kmsg, b.Binding) {
		return b, b.OnPress()
	}
	return b, nil
}

func (b Button) View() string {
	if b.Active {
		return theme.ButtonActive.Render("▸ " + b.Label)
	}
	label := theme.ButtonInactive.Render(b.Label)
	if b.Reason == "" {
		return label
	}
	reason := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(b.Reason)
	return lipgloss.JoinVertical(lipgloss.Center, label, reason)
}
