package llm

import (
	"fmt"
	"os"
	"time"
)

// Config selects and configures a provider. The zero value is not usable;
// start from DefaultConfig or ConfigFromEnv.
type Config struct {
	// Provider is one of "anthropic", "openai", "gemini", "openrouter",
	// "mock".
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds one call including retries.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string // optional override for OpenAI-compatible gateways
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// RetryConfig shapes the backoff for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig picks the cheap model tier for each provider. Rubric
// scoring is a high-volume, low-stakes workload.
func DefaultConfig() Config {
	return Config{
		Provider:   "anthropic",
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv layers OSCESIM_* environment variables over the defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	setIfEnv(&cfg.Provider, "OSCESIM_LLM_PROVIDER")
	setIfEnv(&cfg.Anthropic.APIKey, "OSCESIM_ANTHROPIC_API_KEY")
	setIfEnv(&cfg.Anthropic.Model, "OSCESIM_ANTHROPIC_MODEL")
	setIfEnv(&cfg.OpenAI.APIKey, "OSCESIM_OPENAI_API_KEY")
	setIfEnv(&cfg.OpenAI.Model, "OSCESIM_OPENAI_MODEL")
	setIfEnv(&cfg.OpenAI.BaseURL, "OSCESIM_OPENAI_BASE_URL")
	setIfEnv(&cfg.Gemini.APIKey, "OSCESIM_GEMINI_API_KEY")
	setIfEnv(&cfg.Gemini.Model, "OSCESIM_GEMINI_MODEL")
	setIfEnv(&cfg.OpenRouter.APIKey, "OSCESIM_OPENROUTER_API_KEY")
	setIfEnv(&cfg.OpenRouter.Model, "OSCESIM_OPENROUTER_MODEL")

	return cfg
}

func setIfEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// DiscoverConfig probes the providers' own API key variables, in order
// Gemini, OpenAI, Anthropic, OpenRouter, and configures the first one
// found. Used when no OSCESIM_* configuration is present.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		cfg.Provider = "gemini"
		cfg.Gemini.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.Provider = "openai"
		cfg.OpenAI.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Provider = "anthropic"
		cfg.Anthropic.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENROUTER_API_KEY"); k != "" {
		cfg.Provider = "openrouter"
		cfg.OpenRouter.APIKey = k
		return cfg, true
	}

	return Config{}, false
}

// Validate checks the selected provider has its API key.
func (c Config) Validate() error {
	switch c.Provider {
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("OSCESIM_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("OSCESIM_OPENAI_API_KEY is required for the openai provider")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("OSCESIM_GEMINI_API_KEY is required for the gemini provider")
		}
	case "openrouter":
		if c.OpenRouter.APIKey == "" {
			return fmt.Errorf("OSCESIM_OPENROUTER_API_KEY is required for the openrouter provider")
		}
	case "mock":
		// no key needed
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}
