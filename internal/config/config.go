package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	DBPath          string
	LogLevel        string
	LogFile         string
	InstallDir      string
	NoInstallPrompt bool
	ThemeOverride   string // "", "dark" or "light"
}

// Load reads configuration from the environment, after loading a .env file
// from the working directory if one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DBPath:          getEnv("CESD_DB", ""),
		LogLevel:        getEnv("CESD_LOG_LEVEL", "info"),
		LogFile:         getEnv("CESD_LOG_FILE", ""),
		InstallDir:      getEnv("CESD_INSTALL_DIR", ""),
		NoInstallPrompt: getEnvAsBool("CESD_NO_INSTALL_PROMPT", false),
		ThemeOverride:   getEnv("CESD_THEME", ""),
	}

	if cfg.LogFile == "" {
		p, err := defaultStatePath("cesd.log")
		if err != nil {
			return nil, err
		}
		cfg.LogFile = p
	}
	if cfg.InstallDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		cfg.InstallDir = filepath.Join(home, ".local", "bin")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field values that have a fixed vocabulary.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("CESD_LOG_LEVEL must be one of debug, info, warn, error; got %q", c.LogLevel)
	}
	switch c.ThemeOverride {
	case "", "dark", "light":
	default:
		return fmt.Errorf("CESD_THEME must be dark or light; got %q", c.ThemeOverride)
	}
	return nil
}

// defaultStatePath resolves $XDG_STATE_HOME/cesd/name, falling back to
// ~/.local/state/cesd/name.
func defaultStatePath(name string) (string, error) {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "cesd", name), nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
