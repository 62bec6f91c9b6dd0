package questionnaire

import "github.com/abhisek/cesd/internal/cesd"

// SubmittedMsg is emitted once a complete questionnaire has been scored.
type SubmittedMsg struct {
	Result cesd.Result
}
