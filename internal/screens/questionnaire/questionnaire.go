package questionnaire

import (
	"errors"
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/cesd/internal/cesd"
	"github.com/abhisek/cesd/internal/screen"
	sess "github.com/abhisek/cesd/internal/session"
	"github.com/abhisek/cesd/internal/ui/components"
)

// QuestionnaireScreen presents one question at a time and collects answers
// into the shared session state.
type QuestionnaireScreen struct {
	state   *sess.State
	log     zerolog.Logger
	keys    keyMap
	current int
	radio   components.RadioGroup
	notice  string // blocking notice; any key dismisses
}

var _ screen.Screen = (*QuestionnaireScreen)(nil)
var _ screen.KeyBindingProvider = (*QuestionnaireScreen)(nil)

// New creates a QuestionnaireScreen over state. It starts at the first
// unanswered question.
func New(state *sess.State, log zerolog.Logger) *QuestionnaireScreen {
	s := &QuestionnaireScreen{
		state: state,
		log:   log,
		keys:  defaultKeyMap(),
	}
	s.goTo(s.firstUnanswered(0))
	return s
}

func (s *QuestionnaireScreen) Init() tea.Cmd {
	return nil
}

func (s *QuestionnaireScreen) Title() string {
	return fmt.Sprintf("Question %d of %d", s.current+1, cesd.NumQuestions)
}

func (s *QuestionnaireScreen) KeyBindings() []key.Binding {
	if s.notice != "" {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("any key", "Continue")),
		}
	}
	return []key.Binding{s.keys.Up, s.keys.Prev, s.keys.Choose, s.keys.Pick, s.keys.Submit, s.keys.Reset}
}

// Current returns the index of the question on screen.
func (s *QuestionnaireScreen) Current() int {
	return s.current
}

// Notice returns the blocking notice, or "" when none is shown.
func (s *QuestionnaireScreen) Notice() string {
	return s.notice
}

func (s *QuestionnaireScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	if s.notice != "" {
		s.notice = ""
		return s, nil
	}

	switch {
	case key.Matches(kmsg, s.keys.Up, s.keys.Down):
		s.radio, _ = s.radio.Update(kmsg)

	case key.Matches(kmsg, s.keys.Prev):
		if s.current > 0 {
			s.goTo(s.current - 1)
		}

	case key.Matches(kmsg, s.keys.Next):
		if s.current < cesd.NumQuestions-1 {
			s.goTo(s.current + 1)
		}

	case key.Matches(kmsg, s.keys.Choose):
		s.choose(s.radio.Cursor)

	case key.Matches(kmsg, s.keys.Pick):
		s.choose(int(kmsg.String()[0] - '1'))

	case key.Matches(kmsg, s.keys.Submit):
		return s, s.submit()

	case key.Matches(kmsg, s.keys.Reset):
		s.state.Reset()
		s.log.Info().Str("assessment", s.state.ID).Msg("assessment reset")
		s.goTo(0)
	}

	return s, nil
}

// choose records value for the current question and advances to the next
// unanswered one.
func (s *QuestionnaireScreen) choose(value int) {
	if err := s.state.Answer(s.current, value); err != nil {
		s.log.Warn().Err(err).Int("question", s.current).Msg("answer rejected")
		return
	}
	s.goTo(s.firstUnanswered(s.current + 1))
}

func (s *QuestionnaireScreen) submit() tea.Cmd {
	res, err := s.state.Submit()
	var inc *cesd.IncompleteError
	if errors.As(err, &inc) {
		s.notice = inc.Notice()
		s.log.Info().
			Str("assessment", s.state.ID).
			Int("remaining", inc.Remaining).
			Msg("submission rejected")
		s.goTo(s.firstUnanswered(0))
		return nil
	}
	if err != nil {
		s.notice = err.Error()
		return nil
	}

	s.log.Info().Str("assessment", s.state.ID).Msg("assessment submitted")
	return func() tea.Msg {
		return SubmittedMsg{Result: res}
	}
}

// firstUnanswered returns the first unanswered question at or after from,
// wrapping around. It returns the current question when all are answered.
func (s *QuestionnaireScreen) firstUnanswered(from int) int {
	for i := 0; i < cesd.NumQuestions; i++ {
		q := (from + i) % cesd.NumQuestions
		if _, ok := s.state.Response(q); !ok {
			return q
		}
	}
	if from >= cesd.NumQuestions {
		return cesd.NumQuestions - 1
	}
	return from
}

func (s *QuestionnaireScreen) goTo(q int) {
	s.current = q

	opts := make([]components.RadioOption, len(cesd.Options))
	for i, o := range cesd.Options {
		opts[i] = components.RadioOption{Label: o.Label, Sublabel: o.Sublabel}
	}
	s.radio = components.NewRadioGroup(
		fmt.Sprintf("%d. %s", q+1, cesd.Questions[q]),
		opts,
	)
	if v, ok := s.state.Response(q); ok {
		s.radio.Chosen = v
		s.radio.Cursor = v
	}
}
