package cesd

// NumQuestions is the number of items on the CES-D scale.
const NumQuestions = 20

// MaxResponse is the highest point value a single response can carry.
// Reverse scoring is defined as MaxResponse - value, so it assumes the
// 0..MaxResponse range of Options.
const MaxResponse = 3

// Questions holds the 20 CES-D statements. A question's index is its identity.
var Questions = [NumQuestions]string{
	"I was bothered by things that usually don't bother me",
	"I did not feel like eating; my appetite was poor",
	"I felt that I could not shake off the blues even with help from my family or friends",
	"I felt I was just as good as other people",
	"I had trouble keeping my mind on what I was doing",
	"I felt depressed",
	"I felt that everything I did was an effort",
	"I felt hopeful about the future",
	"I thought my life had been a failure",
	"I felt fearful",
	"My sleep was restless",
	"I was happy",
	"I talked less than usual",
	"I felt lonely",
	"People were unfriendly",
	"I enjoyed life",
	"I had crying spells",
	"I felt sad",
	"I felt that people dislike me",
	"I could not get 'going'",
}

// reverseScored marks the positively worded items (4, 8, 12 and 16 on the
// printed form).
var reverseScored = map[int]bool{
	3:  true,
	7:  true,
	11: true,
	15: true,
}

// IsReverseScored reports whether the response to question i is inverted
// before it is added to the total.
func IsReverseScored(i int) bool {
	return reverseScored[i]
}

// ReverseScored returns the reverse-scored question indices in ascending order.
func ReverseScored() []int {
	out := make([]int, 0, len(reverseScored))
	for i := 0; i < NumQuestions; i++ {
		if reverseScored[i] {
			out = append(out, i)
		}
	}
	return out
}

// ResponseOption is one point on the four-step frequency scale.
// Value is both the stored answer and the point weight.
type ResponseOption struct {
	Value    int
	Label    string
	Sublabel string
}

// Options lists the response scale in ascending order of Value.
var Options = [MaxResponse + 1]ResponseOption{
	{Value: 0, Label: "Rarely or none of the time", Sublabel: "(less than 1 day)"},
	{Value: 1, Label: "Some or a little of the time", Sublabel: "(1–2 days)"},
	{Value: 2, Label: "Occasionally or moderate amount", Sublabel: "(3–4 days)"},
	{Value: 3, Label: "Most or all of the time", Sublabel: "(5–7 days)"},
}

// ValidQuestion reports whether i indexes a question.
func ValidQuestion(i int) bool {
	return i >= 0 && i < NumQuestions
}

// ValidResponse reports whether v is a value on the response scale.
func ValidResponse(v int) bool {
	return v >= 0 && v <= MaxResponse
}
