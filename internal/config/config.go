package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/powerfrill/showcase-backend-go/internal/choreography"
)

// Catalog sources
const (
	CatalogBuiltin = "builtin" // Serve the literal table compiled into the binary
	CatalogSQLite  = "sqlite"  // Seed SQLite on first start, then serve what it holds
)

// Config 应用配置
type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Database     DatabaseConfig     `yaml:"database"`
	Catalog      CatalogConfig      `yaml:"catalog"`
	Choreography ChoreographyConfig `yaml:"choreography"`
	Logging      LoggingConfig      `yaml:"logging"`
}

// ServerConfig configures the HTTP listener
type ServerConfig struct {
	Port            string        `yaml:"port"`
	RateLimit       int           `yaml:"rate_limit"`  // Requests per window per client ip
	RateWindow      time.Duration `yaml:"rate_window"` // e.g. 1m
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// DatabaseConfig configures the SQLite catalog store
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// CatalogConfig selects where the catalog table comes from
type CatalogConfig struct {
	Source string `yaml:"source"` // builtin, sqlite
}

// ChoreographyConfig picks a preset and optionally overrides parts of it
type ChoreographyConfig struct {
	Preset         string   `yaml:"preset"`
	StableFraction *float64 `yaml:"stable_fraction,omitempty"`
	Easing         string   `yaml:"easing,omitempty"`
	UnitSpacing    *float64 `yaml:"unit_spacing,omitempty"`
	MaxThickness   *float64 `yaml:"max_thickness,omitempty"`
	Pulse          string   `yaml:"pulse,omitempty"`
}

// LoggingConfig configures zap
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the configuration used when no file is present
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            ":8080",
			RateLimit:       600,
			RateWindow:      time.Minute,
			ShutdownTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			Path: "./data/catalog/catalog.db",
		},
		Catalog: CatalogConfig{
			Source: CatalogBuiltin,
		},
		Choreography: ChoreographyConfig{
			Preset: choreography.PresetHero,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load 加载配置: defaults, then the YAML file at path (if any), then environment overrides
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Defaults apply when the file is absent
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides
func (c *Config) applyEnvOverrides() error {
	if port := os.Getenv("PORT"); port != "" {
		c.Server.Port = port
	}
	if v := os.Getenv("RATE_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid RATE_LIMIT %q: %w", v, err)
		}
		c.Server.RateLimit = n
	}
	if dbPath := os.Getenv("DB_PATH"); dbPath != "" {
		c.Database.Path = dbPath
	}
	if source := os.Getenv("CATALOG_SOURCE"); source != "" {
		c.Catalog.Source = source
	}
	if preset := os.Getenv("CHOREOGRAPHY_PRESET"); preset != "" {
		c.Choreography.Preset = preset
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port not configured")
	}
	if c.Server.RateLimit < 0 {
		return fmt.Errorf("rate limit must not be negative: %d", c.Server.RateLimit)
	}
	if c.Server.RateLimit > 0 && c.Server.RateWindow <= 0 {
		return fmt.Errorf("rate window must be positive when rate limiting is enabled")
	}

	switch c.Catalog.Source {
	case CatalogBuiltin:
	case CatalogSQLite:
		if c.Database.Path == "" {
			return fmt.Errorf("catalog source %q requires database.path", CatalogSQLite)
		}
	default:
		return fmt.Errorf("invalid catalog source: %s (valid: %s, %s)", c.Catalog.Source, CatalogBuiltin, CatalogSQLite)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	if _, err := c.Choreography.Resolve(); err != nil {
		return err
	}
	return nil
}

// Resolve builds the choreography configuration from the preset and overrides
func (c ChoreographyConfig) Resolve() (choreography.Config, error) {
	name := c.Preset
	if name == "" {
		name = choreography.PresetHero
	}
	cfg, ok := choreography.Preset(name)
	if !ok {
		return choreography.Config{}, fmt.Errorf("%w: unknown preset %q (valid: %v)",
			choreography.ErrInvalidConfig, name, choreography.PresetNames())
	}

	if c.StableFraction != nil {
		cfg.StableFraction = *c.StableFraction
	}
	if c.Easing != "" {
		cfg.Easing = c.Easing
	}
	if c.UnitSpacing != nil {
		cfg.UnitSpacing = *c.UnitSpacing
	}
	if c.MaxThickness != nil {
		cfg.MaxThickness = *c.MaxThickness
	}
	if c.Pulse != "" {
		cfg.Pulse = c.Pulse
	}

	if err := cfg.Validate(); err != nil {
		return choreography.Config{}, err
	}
	return cfg, nil
}
