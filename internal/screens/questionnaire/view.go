package questionnaire

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/cesd/internal/cesd"
	sess "github.com/abhisek/cesd/internal/session"
	"github.com/abhisek/cesd/internal/ui/components"
	"github.com/abhisek/cesd/internal/ui/theme"
)

func (s *QuestionnaireScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	if s.notice != "" {
		return renderNotice(s.notice, cw, width, height)
	}

	progress := s.state.Progress()
	sections := []string{
		s.renderStrip(),
		"",
		lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("How often have you felt this way during the past week?"),
		"",
		components.Card(s.radio.View(), cw),
		"",
		components.NewProgressBar(
			"Progress",
			progress.Percent(),
			fmt.Sprintf("%d / %d", progress.Answered, progress.Total),
			cw,
		).View(),
		"",
		s.submitButton(progress).View(),
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, content)
}

func (s *QuestionnaireScreen) submitButton(p sess.Progress) components.Button {
	b := components.NewButton("Calculate My Score  (s)", p.Complete(), nil)
	if !p.Complete() {
		b = b.WithReason(fmt.Sprintf("%d of %d answered", p.Answered, p.Total))
	}
	return b
}

// renderStrip draws one cell per question: filled when answered, with the
// current question highlighted.
func (s *QuestionnaireScreen) renderStrip() string {
	cells := make([]string, cesd.NumQuestions)
	for i := range cells {
		mark := "○"
		style := lipgloss.NewStyle().Foreground(theme.Border)
		if _, ok := s.state.Response(i); ok {
			mark = "●"
			style = style.Foreground(theme.Secondary)
		}
		if i == s.current {
			style = style.Foreground(theme.Primary).Bold(true)
			mark = "◆"
		}
		cells[i] = style.Render(mark)
	}
	return strings.Join(cells, " ")
}

func renderNotice(text string, cw, width, height int) string {
	box := components.Notice("Incomplete", text, cw)
	hint := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("press any key to continue")
	content := lipgloss.JoinVertical(lipgloss.Center, box, "", hint)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
