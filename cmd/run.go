package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/cesd/internal/app"
	"github.com/abhisek/cesd/internal/install"
	"github.com/abhisek/cesd/internal/logger"
	"github.com/abhisek/cesd/internal/session"
	"github.com/abhisek/cesd/internal/store"
)

// runApp loads config, restores the theme preference, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logFile, err := logger.OpenFile(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	log := logger.New(logger.Config{Level: cfg.LogLevel, Output: logFile})

	st, err := openStore(cmd, cfg)
	if err != nil {
		return err
	}
	defer st.Close()
	prefs := st.PreferenceRepo()

	dark, err := prefs.DarkMode(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("load theme preference; using default")
		dark = false
	}
	switch cfg.ThemeOverride {
	case "dark":
		dark = true
	case "light":
		dark = false
	}
	if f, _ := cmd.Flags().GetBool("dark"); f {
		dark = true
	}
	if f, _ := cmd.Flags().GetBool("light"); f {
		dark = false
	}

	opts := app.Options{
		State:    session.NewState(),
		DarkMode: dark,
		Logger:   log,
	}
	if !cfg.NoInstallPrompt {
		opts.Installer = install.New(cfg.InstallDir)
	}

	res, err := app.Run(opts)
	if err != nil {
		return err
	}

	if err := persistTheme(ctx, prefs, res); err != nil {
		log.Error().Err(err).Msg("save theme preference")
		return err
	}
	return nil
}

// persistTheme saves the theme only when the user toggled it during the run,
// so a --dark/--light or CESD_THEME override is never written back.
func persistTheme(ctx context.Context, prefs store.PreferenceRepo, res app.Result) error {
	if !res.ThemeChanged {
		return nil
	}
	if err := prefs.SetDarkMode(ctx, res.DarkMode); err != nil {
		return fmt.Errorf("save theme preference: %w", err)
	}
	return nil
}
