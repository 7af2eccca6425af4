package config

import (
	"fmt"
	"time"

	"github.com/JaimeStill/homework/internal/llm"
	"github.com/JaimeStill/homework/pkg/env"
)

const (
	EnvLLMProvider    = "HOMEWORK_LLM_PROVIDER"
	EnvLLMAPIKey      = "HOMEWORK_LLM_API_KEY"
	EnvLLMModel       = "HOMEWORK_LLM_MODEL"
	EnvLLMVisionModel = "HOMEWORK_LLM_VISION_MODEL"
	EnvLLMBaseURL     = "HOMEWORK_LLM_BASE_URL"
	EnvLLMTimeout     = "HOMEWORK_LLM_TIMEOUT"
	EnvLLMMaxTokens   = "HOMEWORK_LLM_MAX_TOKENS"
)

const (
	ProviderOpenAI = "openai"
	ProviderMock   = "mock"
	ProviderNone   = "none"
)

// RetrySettings configures backoff for transient provider errors.
type RetrySettings struct {
	MaxAttempts int     `toml:"max_attempts"`
	InitialWait string  `toml:"initial_wait"`
	MaxWait     string  `toml:"max_wait"`
	Multiplier  float64 `toml:"multiplier"`
}

// LLMConfig selects and configures the language model used for image OCR
// and model-backed analysis. Provider "none" disables both.
type LLMConfig struct {
	Provider    string        `toml:"provider"`
	APIKey      string        `toml:"api_key"`
	Model       string        `toml:"model"`
	VisionModel string        `toml:"vision_model"`
	BaseURL     string        `toml:"base_url"`
	Timeout     string        `toml:"timeout"`
	MaxTokens   int           `toml:"max_tokens"`
	Temperature float64       `toml:"temperature"`
	Retry       RetrySettings `toml:"retry"`
}

// Enabled reports whether a provider is configured.
func (c *LLMConfig) Enabled() bool {
	return c.Provider != ProviderNone
}

// TimeoutDuration bounds one model call including retries.
func (c *LLMConfig) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// RetryConfig converts the retry settings for llm.WithRetry.
func (c *LLMConfig) RetryConfig() llm.RetryConfig {
	initial, _ := time.ParseDuration(c.Retry.InitialWait)
	maxWait, _ := time.ParseDuration(c.Retry.MaxWait)
	return llm.RetryConfig{
		MaxAttempts: c.Retry.MaxAttempts,
		InitialWait: initial,
		MaxWait:     maxWait,
		Multiplier:  c.Retry.Multiplier,
	}
}

// OpenAIConfig returns the provider settings for the analysis model or,
// when vision is set, the image model.
func (c *LLMConfig) OpenAIConfig(vision bool) llm.OpenAIConfig {
	model := c.Model
	if vision {
		model = c.VisionModel
	}
	return llm.OpenAIConfig{
		APIKey:  c.APIKey,
		Model:   model,
		BaseURL: c.BaseURL,
	}
}

// Finalize applies defaults, environment overrides and validation. Without
// an explicit provider the section enables OpenAI only when a key is set.
func (c *LLMConfig) Finalize() error {
	env.String(EnvLLMProvider, &c.Provider)
	env.String(EnvLLMAPIKey, &c.APIKey)
	env.String(EnvLLMModel, &c.Model)
	env.String(EnvLLMVisionModel, &c.VisionModel)
	env.String(EnvLLMBaseURL, &c.BaseURL)
	env.String(EnvLLMTimeout, &c.Timeout)
	env.Int(EnvLLMMaxTokens, &c.MaxTokens)

	c.loadDefaults()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *LLMConfig) Merge(overlay *LLMConfig) {
	mergeStr := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	mergeStr(&c.Provider, overlay.Provider)
	mergeStr(&c.APIKey, overlay.APIKey)
	mergeStr(&c.Model, overlay.Model)
	mergeStr(&c.VisionModel, overlay.VisionModel)
	mergeStr(&c.BaseURL, overlay.BaseURL)
	mergeStr(&c.Timeout, overlay.Timeout)
	mergeStr(&c.Retry.InitialWait, overlay.Retry.InitialWait)
	mergeStr(&c.Retry.MaxWait, overlay.Retry.MaxWait)

	if overlay.MaxTokens != 0 {
		c.MaxTokens = overlay.MaxTokens
	}
	if overlay.Temperature != 0 {
		c.Temperature = overlay.Temperature
	}
	if overlay.Retry.MaxAttempts != 0 {
		c.Retry.MaxAttempts = overlay.Retry.MaxAttempts
	}
	if overlay.Retry.Multiplier != 0 {
		c.Retry.Multiplier = overlay.Retry.Multiplier
	}
}

func (c *LLMConfig) loadDefaults() {
	if c.Provider == "" {
		c.Provider = ProviderNone
		if c.APIKey != "" {
			c.Provider = ProviderOpenAI
		}
	}
	if c.Model == "" {
		c.Model = "gpt-4o-mini"
	}
	if c.VisionModel == "" {
		c.VisionModel = "gpt-4o"
	}
	if c.Timeout == "" {
		c.Timeout = "60s"
	}
	if c.MaxTokens == 0 {
		c.MaxTokens = 1500
	}
	if c.Retry.MaxAttempts == 0 {
		c.Retry.MaxAttempts = 3
	}
	if c.Retry.InitialWait == "" {
		c.Retry.InitialWait = "1s"
	}
	if c.Retry.MaxWait == "" {
		c.Retry.MaxWait = "10s"
	}
	if c.Retry.Multiplier == 0 {
		c.Retry.Multiplier = 2
	}
}

func (c *LLMConfig) validate() error {
	switch c.Provider {
	case ProviderOpenAI:
		if c.APIKey == "" {
			return fmt.Errorf("%s is required for the openai provider", EnvLLMAPIKey)
		}
	case ProviderMock, ProviderNone:
	default:
		return fmt.Errorf("unknown provider %q", c.Provider)
	}

	for name, v := range map[string]string{
		"timeout":            c.Timeout,
		"retry.initial_wait": c.Retry.InitialWait,
		"retry.max_wait":     c.Retry.MaxWait,
	} {
		if _, err := time.ParseDuration(v); err != nil {
			return fmt.Errorf("invalid %s: %w", name, err)
		}
	}

	if c.Retry.MaxAttempts < 1 {
		return fmt.Errorf("retry.max_attempts must be at least 1")
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("temperature must be within [0, 2]")
	}
	return nil
}
