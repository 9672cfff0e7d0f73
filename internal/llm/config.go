package llm

import (
	"os"
	"strconv"
	"strings"
)

// Config holds all settings for the completion client.
type Config struct {
	BaseURL    string
	Model      string
	APIKey     string
	TimeoutMs  int
	MaxRetries int
	LogCalls   bool
}

// DefaultConfig returns a Config with sensible defaults pointing at the
// public OpenAI endpoint.
func DefaultConfig() Config {
	return Config{
		BaseURL:    "https://api.openai.com/v1",
		Model:      "gpt-4o-mini",
		TimeoutMs:  30000,
		MaxRetries: 1,
	}
}

// WithEnv returns a copy of the config with environment variable overrides
// applied. Values already set stay in place when the variable is unset.
func (c Config) WithEnv() Config {
	if v := os.Getenv("TERMAI_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("TERMAI_MODEL"); v != "" {
		c.Model = v
	}
	if v := os.Getenv("TERMAI_API_KEY"); v != "" {
		c.APIKey = v
	} else if v := os.Getenv("OPENAI_API_KEY"); v != "" && c.APIKey == "" {
		c.APIKey = v
	}
	if v := os.Getenv("TERMAI_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.TimeoutMs = n
		}
	}
	if v := os.Getenv("TERMAI_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.MaxRetries = n
		}
	}
	if v := os.Getenv("TERMAI_LLM_LOG_CALLS"); v != "" {
		c.LogCalls, _ = strconv.ParseBool(v)
	}
	return c
}

// LoadConfig reads the completion configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	return DefaultConfig().WithEnv()
}

// IsLocal reports whether the base URL points at a local provider such as
// Ollama or vLLM. Local providers do not require an Authorization header.
func (c Config) IsLocal() bool {
	return strings.Contains(c.BaseURL, "localhost") || strings.Contains(c.BaseURL, "127.0.0.1")
}
