package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear saved preferences",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		st, err := openStore(cmd, cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.PreferenceRepo().Reset(cmd.Context()); err != nil {
			return fmt.Errorf("reset preferences: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Preferences cleared.")
		return nil
	},
}
