package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/JaimeStill/homework/pkg/env"
)

const (
	EnvWolframAppID   = "HOMEWORK_WOLFRAM_APP_ID"
	EnvWolframBaseURL = "HOMEWORK_WOLFRAM_BASE_URL"
	EnvWolframTimeout = "HOMEWORK_WOLFRAM_TIMEOUT"
)

// WolframConfig configures the Wolfram Alpha full results client. An empty
// AppID disables it.
type WolframConfig struct {
	AppID   string `toml:"app_id"`
	BaseURL string `toml:"base_url"`
	Timeout string `toml:"timeout"`
}

// Enabled reports whether an app id is configured.
func (c *WolframConfig) Enabled() bool {
	return c.AppID != ""
}

// TimeoutDuration returns Timeout as a time.Duration.
func (c *WolframConfig) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// Finalize applies defaults, environment overrides and validation.
func (c *WolframConfig) Finalize() error {
	if c.BaseURL == "" {
		c.BaseURL = "http://api.wolframalpha.com/v2/query"
	}
	if c.Timeout == "" {
		c.Timeout = "10s"
	}

	env.String(EnvWolframAppID, &c.AppID)
	env.String(EnvWolframBaseURL, &c.BaseURL)
	env.String(EnvWolframTimeout, &c.Timeout)

	if _, err := url.ParseRequestURI(c.BaseURL); err != nil {
		return fmt.Errorf("invalid base_url: %w", err)
	}
	if _, err := time.ParseDuration(c.Timeout); err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay.
func (c *WolframConfig) Merge(overlay *WolframConfig) {
	if overlay.AppID != "" {
		c.AppID = overlay.AppID
	}
	if overlay.BaseURL != "" {
		c.BaseURL = overlay.BaseURL
	}
	if overlay.Timeout != "" {
		c.Timeout = overlay.Timeout
	}
}
