package cesd

import (
	"errors"
	"testing"
)

func uniform(v int) AnswerMap {
	a := make(AnswerMap, NumQuestions)
	for i := 0; i < NumQuestions; i++ {
		a[i] = v
	}
	return a
}

func TestScore_AllZero(t *testing.T) {
	if got := Score(uniform(0)); got != 12 {
		t.Errorf("Score(all 0) = %d, want 12", got)
	}
}

func TestScore_AllThree(t *testing.T) {
	if got := Score(uniform(3)); got != 48 {
		t.Errorf("Score(all 3) = %d, want 48", got)
	}
}

func TestScore_SingleForwardItem(t *testing.T) {
	base := Score(uniform(0))
	a := uniform(0)
	a[0] = 3

	got := Score(a)
	if got-base != 3 {
		t.Errorf("question 0 contributes %d, want 3", got-base)
	}
	if got != 15 {
		t.Errorf("Score = %d, want 15", got)
	}
}

func TestScore_ReverseItemAtZero(t *testing.T) {
	// Question 3 at 0 contributes 3 after inversion; at 3 it contributes 0.
	low := uniform(0)
	high := uniform(0)
	high[3] = 3

	if diff := Score(low) - Score(high); diff != 3 {
		t.Errorf("reverse item swing = %d, want 3", diff)
	}
}

func TestScore_MissingCountsAsZero(t *testing.T) {
	if got := Score(AnswerMap{}); got != 12 {
		t.Errorf("Score(empty) = %d, want 12", got)
	}
}

func TestScore_Range(t *testing.T) {
	// Minimum: forward items 0, reverse items 3.
	minA := uniform(0)
	maxA := uniform(3)
	for _, i := range ReverseScored() {
		minA[i] = 3
		maxA[i] = 0
	}
	if got := Score(minA); got != 0 {
		t.Errorf("min score = %d, want 0", got)
	}
	if got := Score(maxA); got != MaxScore {
		t.Errorf("max score = %d, want %d", got, MaxScore)
	}
}

func TestScore_Idempotent(t *testing.T) {
	a := AnswerMap{0: 1, 3: 2, 7: 0, 12: 3, 19: 2}
	first := Score(a)
	second := Score(a)
	if first != second {
		t.Errorf("Score not idempotent: %d then %d", first, second)
	}
	if len(a) != 5 {
		t.Errorf("Score mutated answers: len = %d", len(a))
	}
}

func TestInterpret_Boundaries(t *testing.T) {
	tests := []struct {
		score int
		want  Band
		label string
	}{
		{0, BandMinimal, "Minimal"},
		{15, BandMinimal, "Minimal"},
		{16, BandMildToModerate, "Mild-to-moderate"},
		{26, BandMildToModerate, "Mild-to-moderate"},
		{27, BandPossibleMajor, "Possible major depression"},
		{60, BandPossibleMajor, "Possible major depression"},
	}
	for _, tt := range tests {
		got := Interpret(tt.score)
		if got.Band != tt.want {
			t.Errorf("Interpret(%d).Band = %v, want %v", tt.score, got.Band, tt.want)
		}
		if got.Label != tt.label {
			t.Errorf("Interpret(%d).Label = %q, want %q", tt.score, got.Label, tt.label)
		}
	}
}

func TestInterpret_Severity(t *testing.T) {
	if Interpret(10).Severity != SeverityOK {
		t.Error("minimal band should be SeverityOK")
	}
	if Interpret(20).Severity != SeverityWarn {
		t.Error("mild band should be SeverityWarn")
	}
	if Interpret(40).Severity != SeverityAlert {
		t.Error("major band should be SeverityAlert")
	}
}

func TestBands_Legend(t *testing.T) {
	bands := Bands()
	if len(bands) != 3 {
		t.Fatalf("Bands() len = %d, want 3", len(bands))
	}
	want := []string{"0-15", "16-26", "27+"}
	for i, b := range bands {
		if got := b.Band.RangeLabel(); got != want[i] {
			t.Errorf("band %d RangeLabel = %q, want %q", i, got, want[i])
		}
	}
}

func TestValidate(t *testing.T) {
	a := AnswerMap{}
	for i := 0; i < NumQuestions; i++ {
		if Validate(a) {
			t.Fatalf("Validate true with %d answers", len(a))
		}
		a[i] = i % 4
	}
	if !Validate(a) {
		t.Error("Validate false with all 20 answers")
	}
}

func TestValidate_ValuesIrrelevant(t *testing.T) {
	for v := 0; v <= MaxResponse; v++ {
		if !Validate(uniform(v)) {
			t.Errorf("Validate(all %d) = false, want true", v)
		}
	}
}

func TestRemaining(t *testing.T) {
	if got := Remaining(AnswerMap{}); got != NumQuestions {
		t.Errorf("Remaining(empty) = %d, want %d", got, NumQuestions)
	}
	if got := Remaining(AnswerMap{0: 1, 5: 2, 19: 0}); got != 17 {
		t.Errorf("Remaining = %d, want 17", got)
	}
}

func TestEvaluate_Incomplete(t *testing.T) {
	_, err := Evaluate(AnswerMap{0: 1, 1: 1})
	var inc *IncompleteError
	if !errors.As(err, &inc) {
		t.Fatalf("expected *IncompleteError, got %v", err)
	}
	if inc.Remaining != 18 {
		t.Errorf("Remaining = %d, want 18", inc.Remaining)
	}
	if inc.Notice() != "Please answer all questions. You have 18 questions remaining." {
		t.Errorf("Notice = %q", inc.Notice())
	}
}

func TestEvaluate_Complete(t *testing.T) {
	res, err := Evaluate(uniform(1))
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	// 16 forward items at 1, 4 reverse items at 2.
	if res.Score != 24 {
		t.Errorf("Score = %d, want 24", res.Score)
	}
	if res.Interpretation.Band != BandMildToModerate {
		t.Errorf("Band = %v, want %v", res.Interpretation.Band, BandMildToModerate)
	}
	if !res.ShowHelpLine() {
		t.Error("expected help line for score 24")
	}
}

func TestShowHelpLine(t *testing.T) {
	if ShowHelpLine(15) {
		t.Error("help line should be hidden at 15")
	}
	if !ShowHelpLine(16) {
		t.Error("help line should be shown at 16")
	}
}

func TestAnswerMap_Set(t *testing.T) {
	a := AnswerMap{}
	if err := a.Set(2, 3); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := a.Set(2, 1); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	if a[2] != 1 || a.Answered() != 1 {
		t.Errorf("after overwrite: a[2]=%d answered=%d", a[2], a.Answered())
	}
	if err := a.Set(20, 0); !errors.Is(err, ErrQuestionOutOfRange) {
		t.Errorf("Set(20) err = %v, want ErrQuestionOutOfRange", err)
	}
	if err := a.Set(0, 4); !errors.Is(err, ErrResponseOutOfRange) {
		t.Errorf("Set(value 4) err = %v, want ErrResponseOutOfRange", err)
	}
}

func TestReverseScored(t *testing.T) {
	got := ReverseScored()
	want := []int{3, 7, 11, 15}
	if len(got) != len(want) {
		t.Fatalf("ReverseScored = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ReverseScored[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}
