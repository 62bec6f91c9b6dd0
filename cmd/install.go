package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/cesd/internal/install"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Copy cesd into a directory on your PATH",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log := cliLogger(cmd, cfg)

		dir, _ := cmd.Flags().GetString("dir")
		if dir == "" {
			dir = cfg.InstallDir
		}
		inst := install.New(dir)

		path, err := inst.Install()
		if errors.Is(err, install.ErrSameTarget) {
			fmt.Fprintf(cmd.OutOrStdout(), "Already installed at %s\n", inst.Target())
			return nil
		}
		if errors.Is(err, os.ErrPermission) {
			return fmt.Errorf("%w\n\nTry a writable directory: cesd install --dir ~/.local/bin", err)
		}
		if err != nil {
			return err
		}

		log.Info().Str("path", path).Msg("installed")
		fmt.Fprintf(cmd.OutOrStdout(), "Installed to %s\n", path)
		if st := inst.Check(); !st.Installed {
			fmt.Fprintf(cmd.OutOrStdout(), "Note: %s is not on your PATH.\n", dir)
		}
		return nil
	},
}

func init() {
	installCmd.Flags().String("dir", "", "Target directory (overrides CESD_INSTALL_DIR, default ~/.local/bin)")
}
