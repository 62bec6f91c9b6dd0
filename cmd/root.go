package cmd

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/abhisek/cesd/internal/config"
	"github.com/abhisek/cesd/internal/logger"
	"github.com/abhisek/cesd/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "cesd",
	Short: "CES-D depression screening questionnaire",
	Long: "cesd — an anonymous terminal rendition of the 20-item Center for Epidemiologic " +
		"Studies Depression Scale. Answers stay in memory and are never stored.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite preferences file (overrides CESD_DB env var)")
	rootCmd.Flags().Bool("dark", false, "Use the dark theme for this run")
	rootCmd.Flags().Bool("light", false, "Use the light theme for this run")
	rootCmd.MarkFlagsMutuallyExclusive("dark", "light")

	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then CESD_DB from the environment or .env, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// loadConfig wraps config.Load so every command sees .env the same way.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// openStore opens the preferences store at the resolved path.
func openStore(cmd *cobra.Command, cfg *config.Config) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// cliLogger returns a console logger on stderr for subcommands.
func cliLogger(cmd *cobra.Command, cfg *config.Config) zerolog.Logger {
	return logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: true,
		Output: cmd.ErrOrStderr(),
	})
}
