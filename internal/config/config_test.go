package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigCreatesDefault(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, Default(), config)

	path := filepath.Join(dir, "handrank", "config.toml")
	assert.Equal(t, path, GetConfigFilePath())
	assert.FileExists(t, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `color = "auto"`)
}

func TestLoadConfigKeepsDefaultsForMissingKeys(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "handrank", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("workers = 2\n"), 0644))

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 2, config.Workers)
	assert.Equal(t, ColorAuto, config.Color)
	assert.Equal(t, "info", config.LogLevel)
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad toml", "workers = \n"},
		{"bad color", `color = "sometimes"`},
		{"bad level", `log_level = "loud"`},
		{"no workers", "workers = 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			t.Setenv("XDG_CONFIG_HOME", dir)

			path := filepath.Join(dir, "handrank", "config.toml")
			require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestSaveConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	config := Default()
	config.Color = ColorNever
	config.Workers = 3
	require.NoError(t, SaveConfig(config))

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, config, loaded)

	config.Workers = -1
	assert.Error(t, SaveConfig(config))
}

func TestGetXDGConfigHomeFallsBackToHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", home)

	assert.Equal(t, filepath.Join(home, ".config"), GetXDGConfigHome())
}

func TestReadConfigSkipsValidation(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "handrank", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("workers = 0\n"), 0644))

	config, err := ReadConfig()
	require.NoError(t, err)
	assert.Equal(t, 0, config.Workers)
	assert.Error(t, config.Validate())

	_, err = LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)

	config.Workers = 4
	require.NoError(t, SaveConfig(config))

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 4, loaded.Workers)
}

func TestValidateLogLevel(t *testing.T) {
	tests := []struct {
		level string
		valid bool
	}{
		{"debug", true},
		{"info", true},
		{"warn", true},
		{"error", true},
		{"fatal", true},
		{"DEBUG", true},
		{"loud", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			config := Default()
			config.LogLevel = tt.level
			if tt.valid {
				assert.NoError(t, config.Validate())
			} else {
				assert.Error(t, config.Validate())
			}
		})
	}
}
