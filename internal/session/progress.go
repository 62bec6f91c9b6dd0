package session

// Progress is the answered/total count shown under the questionnaire.
type Progress struct {
	Answered int
	Total    int
}

// Remaining returns the number of unanswered questions.
func (p Progress) Remaining() int {
	return p.Total - p.Answered
}

// Percent returns the completed fraction in [0, 1].
func (p Progress) Percent() float64 {
	if p.Total <= 0 {
		return 0
	}
	return float64(p.Answered) / float64(p.Total)
}

// Complete returns true once every question has an answer.
func (p Progress) Complete() bool {
	return p.Total > 0 && p.Answered >= p.Total
}
