package cesd

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAnswers(t *testing.T) {
	a, err := ParseAnswers(strings.NewReader(`{"0": 2, "3": 0, "19": 3}`))
	require.NoError(t, err)
	assert.Equal(t, AnswerMap{0: 2, 3: 0, 19: 3}, a)
}

func TestParseAnswers_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", `{"0": `},
		{"array", `[0, 1, 2]`},
		{"key out of range", `{"20": 1}`},
		{"key not numeric", `{"q1": 1}`},
		{"leading zero key", `{"01": 1}`},
		{"value too high", `{"0": 4}`},
		{"negative value", `{"0": -1}`},
		{"fractional value", `{"0": 1.5}`},
		{"string value", `{"0": "2"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAnswers(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestParseAnswers_CompleteFileScores(t *testing.T) {
	var b strings.Builder
	b.WriteString("{")
	for i := 0; i < NumQuestions; i++ {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(`"` + strconv.Itoa(i) + `": 0`)
	}
	b.WriteString("}")

	a, err := ParseAnswers(strings.NewReader(b.String()))
	require.NoError(t, err)
	res, err := Evaluate(a)
	require.NoError(t, err)
	assert.Equal(t, 12, res.Score)
}

func TestParseValues(t *testing.T) {
	a, err := ParseValues("0, 1,,3")
	require.NoError(t, err)
	assert.Equal(t, AnswerMap{0: 0, 1: 1, 3: 3}, a)
	assert.Equal(t, 17, Remaining(a))
}

func TestParseValues_Empty(t *testing.T) {
	a, err := ParseValues("  ")
	require.NoError(t, err)
	assert.Empty(t, a)
}

func TestParseValues_Errors(t *testing.T) {
	_, err := ParseValues("0,x")
	assert.Error(t, err)

	_, err = ParseValues("0,5")
	assert.True(t, errors.Is(err, ErrResponseOutOfRange))

	_, err = ParseValues(strings.Repeat("0,", NumQuestions) + "0")
	assert.Error(t, err)
}
