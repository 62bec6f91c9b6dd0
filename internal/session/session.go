package session

import (
	"errors"

	"github.com/abhisek/cesd/internal/cesd"
)

// ErrNotAnswering is returned when answers are changed after submission.
var ErrNotAnswering = errors.New("assessment already submitted")

// Answer records value as the response to question q.
func (s *State) Answer(q, value int) error {
	if s.Phase != PhaseAnswering {
		return ErrNotAnswering
	}
	return s.Answers.Set(q, value)
}

// Response returns the recorded answer for question q.
func (s *State) Response(q int) (int, bool) {
	v, ok := s.Answers[q]
	return v, ok
}

// Submit scores the answers and moves to PhaseShowingResults. When any
// question is unanswered it returns *cesd.IncompleteError and the phase is
// left unchanged.
func (s *State) Submit() (cesd.Result, error) {
	if s.Phase == PhaseShowingResults && s.Result != nil {
		return *s.Result, nil
	}
	res, err := cesd.Evaluate(s.Answers)
	if err != nil {
		return cesd.Result{}, err
	}
	s.Result = &res
	s.Phase = PhaseShowingResults
	return res, nil
}

// Reset discards all answers and returns to PhaseAnswering under a new ID.
func (s *State) Reset() {
	fresh := NewState()
	*s = *fresh
}

// Progress reports how far through the questionnaire the run is.
func (s *State) Progress() Progress {
	return Progress{
		Answered: s.Answers.Answered(),
		Total:    cesd.NumQuestions,
	}
}
