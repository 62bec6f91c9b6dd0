package cesd

import "fmt"

// AnswerMap maps a question index to the chosen response value.
type AnswerMap map[int]int

// Set records value as the answer to question q, replacing any earlier answer.
func (a AnswerMap) Set(q, value int) error {
	if !ValidQuestion(q) {
		return fmt.Errorf("%w: %d", ErrQuestionOutOfRange, q)
	}
	if !ValidResponse(value) {
		return fmt.Errorf("%w: %d", ErrResponseOutOfRange, value)
	}
	a[q] = value
	return nil
}

// Answered returns the number of distinct questions with a recorded answer.
func (a AnswerMap) Answered() int {
	n := 0
	for q := range a {
		if ValidQuestion(q) {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of a.
func (a AnswerMap) Clone() AnswerMap {
	out := make(AnswerMap, len(a))
	for q, v := range a {
		out[q] = v
	}
	return out
}

// Score sums the responses, inverting reverse-scored items.
// A missing answer counts as 0 before any inversion.
func Score(answers AnswerMap) int {
	total := 0
	for i := 0; i < NumQuestions; i++ {
		v := answers[i]
		if IsReverseScored(i) {
			v = MaxResponse - v
		}
		total += v
	}
	return total
}

// Validate reports whether every question has an answer.
func Validate(answers AnswerMap) bool {
	return Remaining(answers) == 0
}

// Remaining returns the number of questions still unanswered.
func Remaining(answers AnswerMap) int {
	n := 0
	for i := 0; i < NumQuestions; i++ {
		if _, ok := answers[i]; !ok {
			n++
		}
	}
	return n
}

// Result is a scored, complete questionnaire.
type Result struct {
	Score          int
	Interpretation Interpretation
}

// ShowHelpLine reports whether the help line should be offered.
func (r Result) ShowHelpLine() bool {
	return ShowHelpLine(r.Score)
}

// Evaluate scores a complete answer set. It returns *IncompleteError when
// any question is unanswered.
func Evaluate(answers AnswerMap) (Result, error) {
	if n := Remaining(answers); n > 0 {
		return Result{}, &IncompleteError{Remaining: n}
	}
	score := Score(answers)
	return Result{
		Score:          score,
		Interpretation: Interpret(score),
	}, nil
}
