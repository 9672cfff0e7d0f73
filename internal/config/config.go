package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the file-level tool configuration. Environment variables
// override file values, and command-line flags override both.
type Config struct {
	Model       string  `yaml:"model"`
	BaseURL     string  `yaml:"base_url"`
	Shell       string  `yaml:"shell"`
	Temperature float64 `yaml:"temperature"`
	PromptDir   string  `yaml:"prompt_dir"`
	AuditDB     string  `yaml:"audit_db"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Shell:     "/bin/bash",
		PromptDir: filepath.Join(baseDir(), "prompts"),
		AuditDB:   filepath.Join(baseDir(), "audit.db"),
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(baseDir(), "config.yaml")
}

func baseDir() string {
	if v := os.Getenv("TERMAI_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".termai"
	}
	return filepath.Join(home, ".termai")
}

// Load reads the config file at path (missing file falls back to defaults),
// then applies environment overrides. A .env file in the working directory
// is loaded first so that variables defined there count as environment.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	if v := os.Getenv("TERMAI_SHELL"); v != "" {
		cfg.Shell = v
	}
	if v := os.Getenv("TERMAI_PROMPT_DIR"); v != "" {
		cfg.PromptDir = v
	}
	if v := os.Getenv("TERMAI_AUDIT_DB"); v != "" {
		cfg.AuditDB = v
	}
	if v := os.Getenv("TERMAI_TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			cfg.Temperature = f
		}
	}

	return cfg, nil
}
