// Package config loads the command line configuration: an optional YAML or
// JSON file with CAPTYPING_* environment overrides on top.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"sigs.k8s.io/yaml"

	"capability-typing/internal/logger"
	"capability-typing/typesys"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "CAPTYPING_"

// Environment overrides.
const (
	EnvLogLevel        = EnvPrefix + "LOG_LEVEL"
	EnvLogOutput       = EnvPrefix + "LOG_OUTPUT"
	EnvDebug           = EnvPrefix + "DEBUG"
	EnvStrict          = EnvPrefix + "STRICT"
	EnvMaxTypedefDepth = EnvPrefix + "MAX_TYPEDEF_DEPTH"
	EnvSchemaFile      = EnvPrefix + "SCHEMA"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the command line configuration.
type Config struct {
	Logging logger.Config `json:"logging"`
	Check   CheckConfig   `json:"check"`
}

// CheckConfig controls member type checks.
type CheckConfig struct {
	// Strict reports absent members instead of skipping them.
	Strict bool `json:"strict"`
	// MaxTypedefDepth bounds typedef-of-typedef chains.
	MaxTypedefDepth int `json:"maxTypedefDepth"`
	// SchemaFile is the interface definition document used when --schema is not given.
	SchemaFile string `json:"schemaFile,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: logger.DefaultConfig(),
		Check:   CheckConfig{MaxTypedefDepth: typesys.DefaultMaxTypedefDepth},
	}
}

// Load reads the configuration file at path, if any, and applies environment
// overrides. Unknown fields in the file are rejected.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := yaml.UnmarshalStrict(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvLogLevel); ok {
		c.Logging.Level = v
	}

	if v, ok := lookup(EnvLogOutput); ok {
		c.Logging.Output = v
	}

	if v, ok := lookup(EnvSchemaFile); ok {
		c.Check.SchemaFile = v
	}

	for name, dst := range map[string]*bool{EnvDebug: &c.Logging.Debug, EnvStrict: &c.Check.Strict} {
		v, ok := lookup(name)
		if !ok {
			continue
		}

		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, name, v, err)
		}

		*dst = b
	}

	if v, ok := lookup(EnvMaxTypedefDepth); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, EnvMaxTypedefDepth, v, err)
		}

		c.Check.MaxTypedefDepth = n
	}

	return nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if _, err := c.Logging.ParseLevel(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if c.Check.MaxTypedefDepth <= 0 {
		return fmt.Errorf("%w: maxTypedefDepth must be positive, got %d", ErrInvalidConfig, c.Check.MaxTypedefDepth)
	}

	return nil
}
