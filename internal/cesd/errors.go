package cesd

import (
	"errors"
	"fmt"
)

var (
	ErrQuestionOutOfRange = errors.New("question index out of range")
	ErrResponseOutOfRange = errors.New("response value out of range")
)

// IncompleteError is returned when a questionnaire is submitted before every
// question has been answered.
type IncompleteError struct {
	Remaining int
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("please answer all questions: %d %s remaining", e.Remaining, questionNoun(e.Remaining))
}

// Notice returns the message shown to the user when submission is blocked.
func (e *IncompleteError) Notice() string {
	return fmt.Sprintf("Please answer all questions. You have %d %s remaining.", e.Remaining, questionNoun(e.Remaining))
}

func questionNoun(n int) string {
	if n == 1 {
		return "question"
	}
	return "questions"
}
