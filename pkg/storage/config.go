package storage

import (
	"errors"

	"github.com/JaimeStill/homework/pkg/env"
)

// MaxListCap bounds a single List page regardless of configuration.
const MaxListCap int32 = 500

// Config holds Azure Blob Storage connection parameters.
type Config struct {
	ContainerName    string `toml:"container_name"`
	ConnectionString string `toml:"connection_string"`
	MaxListSize      int32  `toml:"max_list_size"`
}

// Env names the environment variables that override Config fields.
type Env struct {
	ContainerName    string
	ConnectionString string
	MaxListSize      string
}

// Finalize applies defaults, environment overrides and validation.
func (c *Config) Finalize(e *Env) error {
	c.loadDefaults()
	if e != nil {
		c.loadEnv(e)
	}
	return c.validate()
}

// Merge overwrites fields that are set in overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.ContainerName != "" {
		c.ContainerName = overlay.ContainerName
	}
	if overlay.ConnectionString != "" {
		c.ConnectionString = overlay.ConnectionString
	}
	if overlay.MaxListSize != 0 {
		c.MaxListSize = overlay.MaxListSize
	}
}

func (c *Config) loadDefaults() {
	if c.ContainerName == "" {
		c.ContainerName = "homework-uploads"
	}
	if c.MaxListSize <= 0 {
		c.MaxListSize = 50
	}
}

func (c *Config) loadEnv(e *Env) {
	env.String(e.ContainerName, &c.ContainerName)
	env.String(e.ConnectionString, &c.ConnectionString)

	size := int(c.MaxListSize)
	env.Int(e.MaxListSize, &size)
	if size > 0 {
		c.MaxListSize = int32(size)
	}
}

func (c *Config) validate() error {
	c.MaxListSize = min(c.MaxListSize, MaxListCap)

	if c.ContainerName == "" {
		return errors.New("container_name required")
	}
	if c.ConnectionString == "" {
		return errors.New("connection_string required")
	}
	return nil
}
