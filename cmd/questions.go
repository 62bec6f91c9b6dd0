package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/cesd/internal/cesd"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the questionnaire items and response options",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		for i, q := range cesd.Questions {
			mark := " "
			if cesd.IsReverseScored(i) {
				mark = "R"
			}
			fmt.Fprintf(out, "%2d %s %s\n", i, mark, q)
		}

		fmt.Fprintln(out)
		for _, o := range cesd.Options {
			fmt.Fprintf(out, "  %d  %s %s\n", o.Value, o.Label, o.Sublabel)
		}
		fmt.Fprintln(out, "\nR = reverse-scored")
	},
}
