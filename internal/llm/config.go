package llm

import (
	"os"
	"strconv"
)

// Config holds all configuration for the generative backends.
type Config struct {
	AnthropicAPIKey  string
	AnthropicModel   string
	AnthropicBaseURL string

	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string

	LogCalls    bool
	TimeoutMs   int
	MaxRetries  int
	Temperature float64
	MaxTokens   int
}

// DefaultConfig returns a Config with sensible defaults. Backends with no
// API key configured are simply not constructed.
func DefaultConfig() Config {
	return Config{
		AnthropicModel:   "claude-sonnet-4-20250514",
		AnthropicBaseURL: "https://api.anthropic.com",
		OpenAIModel:      "gpt-4o",
		LogCalls:         false,
		TimeoutMs:        30000,
		MaxRetries:       1,
		Temperature:      0.3,
		MaxTokens:        4096,
	}
}

// LoadConfig reads backend configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	cfg.AnthropicAPIKey = os.Getenv("ANTHROPIC_API_KEY")
	cfg.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")

	if v := os.Getenv("TEMPO_ANTHROPIC_MODEL"); v != "" {
		cfg.AnthropicModel = v
	}
	if v := os.Getenv("TEMPO_ANTHROPIC_BASE_URL"); v != "" {
		cfg.AnthropicBaseURL = v
	}
	if v := os.Getenv("TEMPO_OPENAI_MODEL"); v != "" {
		cfg.OpenAIModel = v
	}
	if v := os.Getenv("TEMPO_OPENAI_BASE_URL"); v != "" {
		cfg.OpenAIBaseURL = v
	}
	if v := os.Getenv("TEMPO_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("TEMPO_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("TEMPO_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("TEMPO_LLM_TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 2 {
			cfg.Temperature = f
		}
	}
	if v := os.Getenv("TEMPO_LLM_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxTokens = n
		}
	}

	return cfg
}
