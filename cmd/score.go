package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/cesd/internal/cesd"
)

// scoreReport is the machine-readable form of a scored questionnaire.
type scoreReport struct {
	Score       int    `json:"score" yaml:"score"`
	Band        string `json:"band" yaml:"band"`
	Range       string `json:"range" yaml:"range"`
	Heading     string `json:"heading" yaml:"heading"`
	Description string `json:"description" yaml:"description"`
	HelpLine    string `json:"help_line,omitempty" yaml:"help_line,omitempty"`
}

func newScoreReport(res cesd.Result) scoreReport {
	in := res.Interpretation
	r := scoreReport{
		Score:       res.Score,
		Band:        in.Label,
		Range:       in.Band.RangeLabel(),
		Heading:     in.Heading,
		Description: in.Description,
	}
	if res.ShowHelpLine() {
		r.HelpLine = cesd.HelpLineURL
	}
	return r
}

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a completed questionnaire without the TUI",
	Long: "Score reads 20 answers, each 0-3, and prints the CES-D score with its interpretation.\n" +
		"Answers come from a JSON object keyed by question index (--answers FILE, or - for stdin)\n" +
		"or from a comma-separated list in question order (--values).",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log := cliLogger(cmd, cfg)

		answers, err := readAnswers(cmd)
		if err != nil {
			return err
		}

		res, err := cesd.Evaluate(answers)
		var inc *cesd.IncompleteError
		if errors.As(err, &inc) {
			log.Debug().Int("remaining", inc.Remaining).Msg("incomplete answers")
			return err
		}
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		return writeReport(cmd.OutOrStdout(), format, newScoreReport(res))
	},
}

func init() {
	scoreCmd.Flags().String("answers", "", "JSON answers file, or - to read stdin")
	scoreCmd.Flags().String("values", "", "Comma-separated answers in question order, e.g. 0,1,3,...")
	scoreCmd.Flags().String("format", "text", "Output format: text, json or yaml")
	scoreCmd.MarkFlagsMutuallyExclusive("answers", "values")
	scoreCmd.MarkFlagsOneRequired("answers", "values")
}

func readAnswers(cmd *cobra.Command) (cesd.AnswerMap, error) {
	if cmd.Flags().Changed("values") {
		v, _ := cmd.Flags().GetString("values")
		answers, err := cesd.ParseValues(v)
		if err != nil {
			return nil, fmt.Errorf("parse --values: %w", err)
		}
		return answers, nil
	}

	path, _ := cmd.Flags().GetString("answers")
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open answers file: %w", err)
		}
		defer f.Close()
		r = f
	}

	answers, err := cesd.ParseAnswers(r)
	if err != nil {
		return nil, fmt.Errorf("parse answers: %w", err)
	}
	return answers, nil
}

func writeReport(w io.Writer, format string, r scoreReport) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		fmt.Fprintf(w, "Your CES-D Score: %d\n", r.Score)
		fmt.Fprintf(w, "%s (%s)\n\n", r.Heading, r.Range)
		fmt.Fprintln(w, r.Description)
		if r.HelpLine != "" {
			fmt.Fprintf(w, "\nGet help: %s\n", r.HelpLine)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
	}
}
