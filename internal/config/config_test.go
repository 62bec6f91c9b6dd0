package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"CESD_DB", "CESD_LOG_LEVEL", "CESD_LOG_FILE", "CESD_INSTALL_DIR",
		"CESD_NO_INSTALL_PROMPT", "CESD_THEME",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_STATE_HOME", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "", cfg.DBPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, filepath.Join(home, ".local", "state", "cesd", "cesd.log"), cfg.LogFile)
	assert.Equal(t, filepath.Join(home, ".local", "bin"), cfg.InstallDir)
	assert.False(t, cfg.NoInstallPrompt)
	assert.Equal(t, "", cfg.ThemeOverride)
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("CESD_DB", filepath.Join(dir, "x.db"))
	t.Setenv("CESD_LOG_LEVEL", "debug")
	t.Setenv("CESD_LOG_FILE", filepath.Join(dir, "x.log"))
	t.Setenv("CESD_INSTALL_DIR", filepath.Join(dir, "bin"))
	t.Setenv("CESD_NO_INSTALL_PROMPT", "true")
	t.Setenv("CESD_THEME", "dark")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "x.db"), cfg.DBPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, filepath.Join(dir, "x.log"), cfg.LogFile)
	assert.Equal(t, filepath.Join(dir, "bin"), cfg.InstallDir)
	assert.True(t, cfg.NoInstallPrompt)
	assert.Equal(t, "dark", cfg.ThemeOverride)
}

func TestLoad_XDGStateHome(t *testing.T) {
	clearEnv(t)
	state := t.TempDir()
	t.Setenv("XDG_STATE_HOME", state)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(state, "cesd", "cesd.log"), cfg.LogFile)
}

func TestLoad_InvalidBoolFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("CESD_NO_INSTALL_PROMPT", "maybe")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.NoInstallPrompt)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"ok", Config{LogLevel: "warn"}, false},
		{"ok theme", Config{LogLevel: "info", ThemeOverride: "light"}, false},
		{"bad level", Config{LogLevel: "trace"}, true},
		{"bad theme", Config{LogLevel: "info", ThemeOverride: "blue"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
