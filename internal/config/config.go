// Package config loads the service configuration from config.toml, an
// optional config.<env>.toml overlay and HOMEWORK_* environment variables.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/JaimeStill/homework/pkg/database"
	"github.com/JaimeStill/homework/pkg/env"
	"github.com/JaimeStill/homework/pkg/storage"
)

const (
	BaseConfigFile       = "config.toml"
	OverlayConfigPattern = "config.%s.toml"

	EnvHomeworkEnv     = "HOMEWORK_ENV"
	EnvShutdownTimeout = "HOMEWORK_SHUTDOWN_TIMEOUT"
	EnvVersion         = "HOMEWORK_VERSION"
)

var databaseEnv = &database.Env{
	URL:             "HOMEWORK_DATABASE_URL",
	Host:            "HOMEWORK_DB_HOST",
	Port:            "HOMEWORK_DB_PORT",
	Name:            "HOMEWORK_DB_NAME",
	User:            "HOMEWORK_DB_USER",
	Password:        "HOMEWORK_DB_PASSWORD",
	SSLMode:         "HOMEWORK_DB_SSL_MODE",
	MaxOpenConns:    "HOMEWORK_DB_MAX_OPEN_CONNS",
	MaxIdleConns:    "HOMEWORK_DB_MAX_IDLE_CONNS",
	ConnMaxLifetime: "HOMEWORK_DB_CONN_MAX_LIFETIME",
	ConnTimeout:     "HOMEWORK_DB_CONN_TIMEOUT",
}

var storageEnv = &storage.Env{
	ContainerName:    "HOMEWORK_STORAGE_CONTAINER_NAME",
	ConnectionString: "HOMEWORK_STORAGE_CONNECTION_STRING",
	MaxListSize:      "HOMEWORK_STORAGE_MAX_LIST_SIZE",
}

// Config is the root service configuration.
type Config struct {
	Server          ServerConfig    `toml:"server"`
	Database        database.Config `toml:"database"`
	Storage         storage.Config  `toml:"storage"`
	API             APIConfig       `toml:"api"`
	LLM             LLMConfig       `toml:"llm"`
	Wolfram         WolframConfig   `toml:"wolfram"`
	ShutdownTimeout string          `toml:"shutdown_timeout"`
	Version         string          `toml:"version"`
}

// Env returns HOMEWORK_ENV, defaulting to "local".
func (c *Config) Env() string {
	if e := os.Getenv(EnvHomeworkEnv); e != "" {
		return e
	}
	return "local"
}

// ShutdownTimeoutDuration returns ShutdownTimeout as a time.Duration.
func (c *Config) ShutdownTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ShutdownTimeout)
	return d
}

// Load reads config.toml when present, merges the environment overlay and
// finalizes every section. Without any file, defaults and environment
// variables supply everything.
func Load() (*Config, error) {
	cfg := &Config{}

	if _, err := os.Stat(BaseConfigFile); err == nil {
		base, err := load(BaseConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = base
	}

	if path := overlayPath(); path != "" {
		overlay, err := load(path)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", path, err)
		}
		cfg.Merge(overlay)
	}

	if err := cfg.Finalize(); err != nil {
		return nil, fmt.Errorf("finalize config: %w", err)
	}
	return cfg, nil
}

// Merge overwrites non-zero fields from overlay across all sections.
func (c *Config) Merge(overlay *Config) {
	if overlay.ShutdownTimeout != "" {
		c.ShutdownTimeout = overlay.ShutdownTimeout
	}
	if overlay.Version != "" {
		c.Version = overlay.Version
	}
	c.Server.Merge(&overlay.Server)
	c.Database.Merge(&overlay.Database)
	c.Storage.Merge(&overlay.Storage)
	c.API.Merge(&overlay.API)
	c.LLM.Merge(&overlay.LLM)
	c.Wolfram.Merge(&overlay.Wolfram)
}

// Finalize applies defaults, environment overrides and validation to the
// root and every section.
func (c *Config) Finalize() error {
	if c.ShutdownTimeout == "" {
		c.ShutdownTimeout = "30s"
	}
	if c.Version == "" {
		c.Version = "0.1.0"
	}
	env.String(EnvShutdownTimeout, &c.ShutdownTimeout)
	env.String(EnvVersion, &c.Version)

	if _, err := time.ParseDuration(c.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid shutdown_timeout: %w", err)
	}

	sections := []struct {
		name     string
		finalize func() error
	}{
		{"server", c.Server.Finalize},
		{"database", func() error { return c.Database.Finalize(databaseEnv) }},
		{"storage", func() error { return c.Storage.Finalize(storageEnv) }},
		{"api", c.API.Finalize},
		{"llm", c.LLM.Finalize},
		{"wolfram", c.Wolfram.Finalize},
	}
	for _, s := range sections {
		if err := s.finalize(); err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
	}
	return nil
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

func overlayPath() string {
	e := os.Getenv(EnvHomeworkEnv)
	if e == "" {
		return ""
	}
	path := fmt.Sprintf(OverlayConfigPattern, e)
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}
