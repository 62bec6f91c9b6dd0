package session

import (
	"github.com/google/uuid"

	"github.com/abhisek/cesd/internal/cesd"
)

// Phase represents the current phase of an assessment.
type Phase int

const (
	PhaseAnswering      Phase = iota // Collecting responses
	PhaseShowingResults              // Submitted; score is fixed until reset
)

func (p Phase) String() string {
	switch p {
	case PhaseAnswering:
		return "answering"
	case PhaseShowingResults:
		return "showing_results"
	default:
		return "unknown"
	}
}

// State tracks one run through the questionnaire. It is owned by a single
// UI session and is never persisted.
type State struct {
	// ID correlates log lines for this run. It changes on Reset.
	ID string

	// Phase is the current phase.
	Phase Phase

	// Answers holds the responses recorded so far.
	Answers cesd.AnswerMap

	// Result is set once Submit succeeds and cleared by Reset.
	Result *cesd.Result
}

// NewState creates an empty assessment in PhaseAnswering.
func NewState() *State {
	return &State{
		ID:      uuid.New().String(),
		Phase:   PhaseAnswering,
		Answers: make(cesd.AnswerMap, cesd.NumQuestions),
	}
}
