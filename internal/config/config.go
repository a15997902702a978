// Package config loads and validates service configuration from a YAML
// file, a .env file, and environment variables, in that order of
// precedence (later layers win).
package config

import (
	"fmt"

	"github.com/skillsenselab/identity/internal/auth/token"
	"github.com/skillsenselab/identity/internal/logger"
	"github.com/skillsenselab/identity/internal/observability"
	"github.com/skillsenselab/identity/internal/server"
	"github.com/skillsenselab/identity/internal/store"
)

// Config is the full service configuration.
type Config struct {
	Name        string `yaml:"name" mapstructure:"name"`
	Environment string `yaml:"environment" mapstructure:"environment"`
	Debug       bool   `yaml:"debug" mapstructure:"debug"`

	Logging       logger.Config        `yaml:"logging" mapstructure:"logging"`
	Server        server.Config        `yaml:"server" mapstructure:"server"`
	Store         store.Config         `yaml:"store" mapstructure:"store"`
	Auth          token.Config         `yaml:"auth" mapstructure:"auth"`
	Observability observability.Config `yaml:"observability" mapstructure:"observability"`
}

// ApplyDefaults applies default values across all sections.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "identity"
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
	if c.Logging.ServiceName == "" {
		c.Logging.ServiceName = c.Name
	}
	if c.Debug && c.Logging.Level == "" {
		c.Logging.Level = "debug"
	}
	c.Logging.ApplyDefaults()
	c.Server.ApplyDefaults()
	c.Store.ApplyDefaults()
	c.Auth.ApplyDefaults()
	c.Observability.ApplyDefaults()
}

// Validate validates all sections.
func (c *Config) Validate() error {
	validEnvs := []string{"development", "staging", "production"}
	valid := false
	for _, v := range validEnvs {
		if c.Environment == v {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("environment must be one of %v (got: %s)", validEnvs, c.Environment)
	}

	if err := c.Logging.Validate(); err != nil {
		return err
	}
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Store.Validate(); err != nil {
		return err
	}
	if err := c.Auth.Validate(); err != nil {
		return err
	}
	return c.Observability.Validate()
}

// Load reads the service configuration, applies defaults, and validates it.
func Load(serviceName string, opts ...Option) (*Config, error) {
	cfg := &Config{}
	if err := load(serviceName, cfg, opts...); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
