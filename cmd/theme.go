package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:       "theme [dark|light|toggle]",
	Short:     "Show or set the saved theme",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"dark", "light", "toggle"},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		st, err := openStore(cmd, cfg)
		if err != nil {
			return err
		}
		defer st.Close()
		prefs := st.PreferenceRepo()

		dark, err := prefs.DarkMode(ctx)
		if err != nil {
			return fmt.Errorf("read theme: %w", err)
		}

		if len(args) == 1 {
			switch args[0] {
			case "dark":
				dark = true
			case "light":
				dark = false
			case "toggle":
				dark = !dark
			}
			if err := prefs.SetDarkMode(ctx, dark); err != nil {
				return fmt.Errorf("save theme: %w", err)
			}
		}

		fmt.Fprintln(cmd.OutOrStdout(), themeName(dark))
		return nil
	},
}

func themeName(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}
