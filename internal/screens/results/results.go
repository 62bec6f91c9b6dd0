package results

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cesd/internal/cesd"
	"github.com/abhisek/cesd/internal/screen"
	"github.com/abhisek/cesd/internal/ui/components"
	"github.com/abhisek/cesd/internal/ui/theme"
)

const disclaimer = "This assessment is a screening tool and not a diagnostic instrument. " +
	"For proper evaluation and treatment, please consult with a qualified mental health professional."

// RetakeMsg asks the app to reset the assessment and start over.
type RetakeMsg struct{}

// ResultsScreen shows a submitted score with its interpretation.
type ResultsScreen struct {
	result   cesd.Result
	menu     components.Menu
	showHelp bool
	keys     keyMap
}

type keyMap struct {
	Nav    key.Binding
	Select key.Binding
	Retake key.Binding
	Quit   key.Binding
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyBindingProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen for result.
func New(result cesd.Result) *ResultsScreen {
	s := &ResultsScreen{
		result: result,
		keys: keyMap{
			Nav:    key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑↓", "Navigate")),
			Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Select")),
			Retake: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "Take again")),
			Quit:   key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "Quit")),
		},
	}

	items := []components.MenuItem{
		{Label: "Take again", Hint: "clears every answer", Action: retake},
	}
	if result.ShowHelpLine() {
		items = append(items, components.MenuItem{
			Label: "Get help",
			Hint:  "SAMHSA National Helpline",
			Action: func() tea.Cmd {
				s.showHelp = !s.showHelp
				return nil
			},
		})
	}
	items = append(items, components.MenuItem{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }})
	s.menu = components.NewMenu(items)
	return s
}

func retake() tea.Cmd {
	return func() tea.Msg { return RetakeMsg{} }
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyBindings() []key.Binding {
	return []key.Binding{s.keys.Nav, s.keys.Select, s.keys.Retake, s.keys.Quit}
}

// Result returns the result on display.
func (s *ResultsScreen) Result() cesd.Result {
	return s.result
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	switch {
	case key.Matches(kmsg, s.keys.Retake):
		return s, retake()
	case key.Matches(kmsg, s.keys.Quit):
		return s, tea.Quit
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(kmsg)
	return s, cmd
}

func (s *ResultsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	interp := s.result.Interpretation

	score := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(fmt.Sprintf("Your CES-D Score: %d", s.result.Score))
	heading := lipgloss.NewStyle().
		Foreground(severityColor(interp.Severity)).
		Bold(true).
		Render(interp.Heading)
	desc := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw - 6).
		Align(lipgloss.Center).
		Render(interp.Description)

	summary := components.Card(
		lipgloss.JoinVertical(lipgloss.Center, score, heading, "", desc),
		cw,
	)

	sections := []string{
		summary,
		components.Notice("Important Note", disclaimer, cw),
		"",
		s.menu.View(),
	}
	if s.showHelp {
		sections = append(sections, components.Notice(
			"SAMHSA National Helpline",
			"Free, confidential, 24/7 treatment referral and information:\n"+cesd.HelpLineURL,
			cw,
		))
	}
	sections = append(sections, renderLegend(cw))

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, content)
}

func renderLegend(cw int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Score Interpretation Guide"))
	for _, in := range cesd.Bands() {
		b.WriteString("\n")
		rng := lipgloss.NewStyle().Foreground(theme.TextDim).Width(8).Render(in.Band.RangeLabel() + ":")
		label := lipgloss.NewStyle().Foreground(severityColor(in.Severity)).Bold(true).Render(in.Heading)
		b.WriteString(rng + label)
	}
	return components.Card(b.String(), cw)
}

func severityColor(s cesd.Severity) color.Color {
	switch s {
	case cesd.SeverityWarn:
		return theme.Warning
	case cesd.SeverityAlert:
		return theme.Error
	default:
		return theme.Success
	}
}
