// Package config resolves service settings from defaults, an optional YAML
// file and the environment, in that order of precedence (lowest first).
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	ProviderNone  = "none"
	ProviderHTTP  = "http"
	ProviderGenAI = "genai"
)

type Config struct {
	Port           string          `yaml:"port"`
	DatabaseURL    string          `yaml:"database_url"`
	RedisURL       string          `yaml:"redis_url"`
	SeedPath       string          `yaml:"seed_path"`
	Log            LogConfig       `yaml:"log"`
	Optimizer      OptimizerConfig `yaml:"optimizer"`
	RouteSequencer string          `yaml:"route_sequencing"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

type OptimizerConfig struct {
	Provider      string        `yaml:"provider"`
	Endpoint      string        `yaml:"endpoint"`
	APIKey        string        `yaml:"api_key"`
	Model         string        `yaml:"model"`
	Timeout       time.Duration `yaml:"timeout"`
	RatePerMinute float64       `yaml:"rate_per_minute"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Port:           "8080",
		SeedPath:       "data/seeds/missions.json",
		Log:            LogConfig{Level: "info"},
		RouteSequencer: "input",
		Optimizer: OptimizerConfig{
			Provider: ProviderNone,
			Timeout:  30 * time.Second,
		},
	}
}

// Get returns the environment value for key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

// Load builds the configuration. path may be empty, in which case
// CONFIG_FILE is consulted; a missing file is only an error when named.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = Get("CONFIG_FILE", "")
	}
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.mergeEnv(); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %q: %w", path, err)
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return fmt.Errorf("config: parse %q: %w", path, err)
	}
	return nil
}

func (c *Config) mergeEnv() error {
	c.Port = Get("PORT", c.Port)
	c.DatabaseURL = Get("DATABASE_URL", c.DatabaseURL)
	c.RedisURL = Get("REDIS_URL", c.RedisURL)
	c.SeedPath = Get("SEED_PATH", c.SeedPath)
	c.Log.Level = Get("LOG_LEVEL", c.Log.Level)
	c.RouteSequencer = Get("ROUTE_SEQUENCING", c.RouteSequencer)
	c.Optimizer.Provider = strings.ToLower(Get("OPTIMIZER_PROVIDER", c.Optimizer.Provider))
	c.Optimizer.Endpoint = Get("OPTIMIZER_ENDPOINT", c.Optimizer.Endpoint)
	c.Optimizer.APIKey = Get("OPTIMIZER_API_KEY", c.Optimizer.APIKey)
	c.Optimizer.Model = Get("OPTIMIZER_MODEL", c.Optimizer.Model)

	if v := Get("LOG_DEVELOPMENT", ""); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: LOG_DEVELOPMENT: %w", err)
		}
		c.Log.Development = b
	}
	if v := Get("OPTIMIZER_TIMEOUT", ""); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: OPTIMIZER_TIMEOUT: %w", err)
		}
		c.Optimizer.Timeout = d
	}
	if v := Get("OPTIMIZER_RATE_PER_MINUTE", ""); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("config: OPTIMIZER_RATE_PER_MINUTE: %w", err)
		}
		c.Optimizer.RatePerMinute = f
	}
	return nil
}

// Validate rejects settings that cannot work together.
func (c Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Port) == "" {
		errs = append(errs, errors.New("port is empty"))
	}

	switch c.Optimizer.Provider {
	case ProviderNone, "":
	case ProviderHTTP:
		if c.Optimizer.Endpoint == "" {
			errs = append(errs, errors.New("optimizer provider http requires OPTIMIZER_ENDPOINT"))
		}
	case ProviderGenAI:
		if c.Optimizer.APIKey == "" {
			errs = append(errs, errors.New("optimizer provider genai requires OPTIMIZER_API_KEY"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown optimizer provider %q", c.Optimizer.Provider))
	}

	if c.Optimizer.Timeout < 0 {
		errs = append(errs, errors.New("optimizer timeout must be non-negative"))
	}
	if c.Optimizer.RatePerMinute < 0 {
		errs = append(errs, errors.New("optimizer rate per minute must be non-negative"))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// OptimizerEnabled reports whether an external optimizer is configured.
func (c Config) OptimizerEnabled() bool {
	return c.Optimizer.Provider == ProviderHTTP || c.Optimizer.Provider == ProviderGenAI
}
