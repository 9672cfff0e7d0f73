package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("TERMAI_SHELL", "")
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "/bin/bash", cfg.Shell)
	assert.NotEmpty(t, cfg.PromptDir)
	assert.NotEmpty(t, cfg.AuditDB)
}

func TestLoad_ReadsYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("model: llama3.2\nbase_url: http://localhost:11434/v1\nshell: /bin/zsh\ntemperature: 0.3\n")
	require.NoError(t, os.WriteFile(path, data, 0644))

	t.Setenv("TERMAI_SHELL", "")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "llama3.2", cfg.Model)
	assert.Equal(t, "http://localhost:11434/v1", cfg.BaseURL)
	assert.Equal(t, "/bin/zsh", cfg.Shell)
	assert.Equal(t, 0.3, cfg.Temperature)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("shell: /bin/zsh\n"), 0644))

	t.Setenv("TERMAI_SHELL", "/bin/fish")
	t.Setenv("TERMAI_TEMPERATURE", "0.7")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/bin/fish", cfg.Shell)
	assert.Equal(t, 0.7, cfg.Temperature)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("model: [unclosed"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestDefaultPath_HonorsTermaiHome(t *testing.T) {
	t.Setenv("TERMAI_HOME", "/opt/termai")
	assert.Equal(t, filepath.Join("/opt/termai", "config.yaml"), DefaultPath())
}
