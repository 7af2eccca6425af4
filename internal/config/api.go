package config

import (
	"fmt"

	"github.com/JaimeStill/homework/pkg/env"
	"github.com/JaimeStill/homework/pkg/formatting"
	"github.com/JaimeStill/homework/pkg/middleware"
	"github.com/JaimeStill/homework/pkg/pagination"
)

const (
	EnvAPIBasePath      = "HOMEWORK_API_BASE_PATH"
	EnvAPIMaxUploadSize = "HOMEWORK_API_MAX_UPLOAD_SIZE"
)

var corsEnv = &middleware.CORSEnv{
	Enabled:          "HOMEWORK_CORS_ENABLED",
	Origins:          "HOMEWORK_CORS_ORIGINS",
	AllowedMethods:   "HOMEWORK_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "HOMEWORK_CORS_ALLOWED_HEADERS",
	AllowCredentials: "HOMEWORK_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "HOMEWORK_CORS_MAX_AGE",
}

var paginationEnv = &pagination.Env{
	DefaultPageSize: "HOMEWORK_PAGINATION_DEFAULT_PAGE_SIZE",
	MaxPageSize:     "HOMEWORK_PAGINATION_MAX_PAGE_SIZE",
}

// APIConfig holds routing, upload limits, CORS and pagination.
type APIConfig struct {
	BasePath      string                `toml:"base_path"`
	MaxUploadSize string                `toml:"max_upload_size"`
	CORS          middleware.CORSConfig `toml:"cors"`
	Pagination    pagination.Config     `toml:"pagination"`
}

// MaxUploadSizeBytes returns the parsed per-file upload limit.
func (c *APIConfig) MaxUploadSizeBytes() int64 {
	n, _ := formatting.ParseBytes(c.MaxUploadSize)
	return n
}

// Finalize applies defaults, environment overrides and validation, then
// finalizes the nested CORS and pagination sections.
func (c *APIConfig) Finalize() error {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
	if c.MaxUploadSize == "" {
		c.MaxUploadSize = "10MB"
	}
	env.String(EnvAPIBasePath, &c.BasePath)
	env.String(EnvAPIMaxUploadSize, &c.MaxUploadSize)

	if n, err := formatting.ParseBytes(c.MaxUploadSize); err != nil || n <= 0 {
		return fmt.Errorf("invalid max_upload_size %q", c.MaxUploadSize)
	}
	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	if err := c.Pagination.Finalize(paginationEnv); err != nil {
		return fmt.Errorf("pagination: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.MaxUploadSize != "" {
		c.MaxUploadSize = overlay.MaxUploadSize
	}
	c.CORS.Merge(&overlay.CORS)
	c.Pagination.Merge(&overlay.Pagination)
}
