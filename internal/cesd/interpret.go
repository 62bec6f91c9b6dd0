package cesd

import "fmt"

// HelpLineURL is offered on the results view when the score exceeds
// MinimalMax.
const HelpLineURL = "https://www.samhsa.gov/find-help/national-helpline"

// Band boundaries. Each bound is inclusive.
const (
	MinimalMax = 15
	MildMax    = 26
	MaxScore   = NumQuestions * MaxResponse
)

// Band is one of the three interpretation ranges.
type Band int

const (
	BandMinimal Band = iota
	BandMildToModerate
	BandPossibleMajor
)

// String returns the band's short label.
func (b Band) String() string {
	switch b {
	case BandMinimal:
		return "Minimal"
	case BandMildToModerate:
		return "Mild-to-moderate"
	case BandPossibleMajor:
		return "Possible major depression"
	default:
		return "Unknown"
	}
}

// Range returns the inclusive score bounds of the band.
func (b Band) Range() (lo, hi int) {
	switch b {
	case BandMinimal:
		return 0, MinimalMax
	case BandMildToModerate:
		return MinimalMax + 1, MildMax
	default:
		return MildMax + 1, MaxScore
	}
}

// RangeLabel renders the band bounds for the legend, e.g. "16-26" or "27+".
func (b Band) RangeLabel() string {
	lo, hi := b.Range()
	if b == BandPossibleMajor {
		return fmt.Sprintf("%d+", lo)
	}
	return fmt.Sprintf("%d-%d", lo, hi)
}

// Severity drives the color used to present an interpretation.
type Severity int

const (
	SeverityOK Severity = iota
	SeverityWarn
	SeverityAlert
)

func (s Severity) String() string {
	switch s {
	case SeverityOK:
		return "ok"
	case SeverityWarn:
		return "warn"
	case SeverityAlert:
		return "alert"
	default:
		return "unknown"
	}
}

// Interpretation is the guidance attached to a score band.
type Interpretation struct {
	Band        Band
	Label       string
	Heading     string
	Description string
	Severity    Severity
}

var interpretations = [...]Interpretation{
	BandMinimal: {
		Band:        BandMinimal,
		Label:       BandMinimal.String(),
		Heading:     "Minimal symptoms",
		Description: "Your responses suggest minimal depressive symptoms. This is within the normal range.",
		Severity:    SeverityOK,
	},
	BandMildToModerate: {
		Band:        BandMildToModerate,
		Label:       BandMildToModerate.String(),
		Heading:     "Mild to moderate symptoms",
		Description: "Your responses suggest mild to moderate depressive symptoms. Consider speaking with a healthcare professional if these feelings persist.",
		Severity:    SeverityWarn,
	},
	BandPossibleMajor: {
		Band:        BandPossibleMajor,
		Label:       BandPossibleMajor.String(),
		Heading:     "Possible major depression",
		Description: "Your responses suggest significant depressive symptoms. We strongly recommend consulting with a mental health professional for proper evaluation and support.",
		Severity:    SeverityAlert,
	},
}

// Interpret maps a score to its band. Score never produces values outside
// [0, MaxScore]; anything above MildMax is treated as the top band.
func Interpret(score int) Interpretation {
	switch {
	case score <= MinimalMax:
		return interpretations[BandMinimal]
	case score <= MildMax:
		return interpretations[BandMildToModerate]
	default:
		return interpretations[BandPossibleMajor]
	}
}

// Bands returns every interpretation in ascending score order, for the legend.
func Bands() []Interpretation {
	out := make([]Interpretation, len(interpretations))
	copy(out, interpretations[:])
	return out
}

// ShowHelpLine reports whether a score warrants surfacing HelpLineURL.
func ShowHelpLine(score int) bool {
	return score > MinimalMax
}
