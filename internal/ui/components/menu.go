package components

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cesd/internal/ui/theme"
)

// MenuItem is one action in a Menu. Hint is rendered dimmed after the label.
type MenuItem struct {
	Label    string
	Hint     string
	Action   func() tea.Cmd
	Disabled bool
}

var menuKeys = struct {
	Up, Down, Select key.Binding
}{
	Up:     key.NewBinding(key.WithKeys("up", "k")),
	Down:   key.NewBinding(key.WithKeys("down", "j")),
	Select: key.NewBinding(key.WithKeys("enter", "space")),
}

// Menu is a vertical list of actions. Disabled items are skipped by the
// cursor and never run.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a menu with the first enabled item selected.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	m.Selected = m.next(-1, 1)
	if m.Selected < 0 {
		m.Selected = 0
	}
	return m
}

// next returns the nearest enabled index from i in direction dir, or -1.
func (m Menu) next(i, dir int) int {
	for j := i + dir; j >= 0 && j < len(m.Items); j += dir {
		if !m.Items[j].Disabled {
			return j
		}
	}
	return -1
}

// Update moves the selection and runs the selected action on enter or space.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(kmsg, menuKeys.Up):
		if j := m.next(m.Selected, -1); j >= 0 {
			m.Selected = j
		}
	case key.Matches(kmsg, menuKeys.Down):
		if j := m.next(m.Selected, 1); j >= 0 {
			m.Selected = j
		}
	case key.Matches(kmsg, menuKeys.Select):
		if m.Selected < 0 || m.Selected >= len(m.Items) {
			return m, nil
		}
		if item := m.Items[m.Selected]; item.Action != nil && !item.Disabled {
			return m, item.Action()
		}
	}
	return m, nil
}

// View renders one line per item.
func (m Menu) View() string {
	lines := make([]string, len(m.Items))
	hint := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true)

	for i, item := range m.Items {
		var line string
		switch {
		case item.Disabled:
			line = lipgloss.NewStyle().Foreground(theme.Border).Render("    " + item.Label)
		case i == m.Selected:
			line = theme.Selected.Render("  ▸ " + item.Label)
		default:
			line = theme.Unselected.Render("    " + item.Label)
		}
		if item.Hint != "" {
			line += "  " + hint.Render(item.Hint)
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
