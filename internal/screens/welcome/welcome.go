package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cesd/internal/router"
	"github.com/abhisek/cesd/internal/screen"
	"github.com/abhisek/cesd/internal/ui/components"
	"github.com/abhisek/cesd/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	revealAt     = 600 * time.Millisecond
	totalDur     = 1200 * time.Millisecond
)

const privacyText = "This test is completely anonymous and your responses are not stored anywhere. " +
	"All processing happens locally on your device."

type tickMsg time.Time

// WelcomeScreen shows the banner and privacy notice, then hands off to the
// questionnaire on any key.
type WelcomeScreen struct {
	next         func() screen.Screen
	elapsed      time.Duration
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by next.
func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed >= totalDur {
			return w, nil
		}
		w.elapsed += tickInterval
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	nextScreen := w.next()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: nextScreen}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	sections := []string{
		RenderBanner(width),
		"",
		lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("Center for Epidemiologic Studies Depression Scale"),
	}

	if w.elapsed >= revealAt {
		sections = append(sections,
			"",
			components.Notice("Privacy Notice", privacyText, cw),
		)
	}

	if w.elapsed >= totalDur {
		sections = append(sections,
			"",
			lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Italic(true).
				Render("press any key to begin"),
		)
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.TrimRight(content, "\n"))
}
