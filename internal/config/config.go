// Package config loads runtime configuration from an optional YAML file
// with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds everything the server and CLI need to run. Zero config
// is valid: defaults give a local SQLite file and the public enka.network
// endpoint.
type Config struct {
	ListenAddr      string        `yaml:"listen_addr"       env:"SANGO_LISTEN_ADDR"`
	DBPath          string        `yaml:"db_path"           env:"SANGO_DB_PATH"`
	UpstreamBaseURL string        `yaml:"upstream_base_url" env:"SANGO_UPSTREAM_BASE_URL"`
	UpstreamTimeout time.Duration `yaml:"upstream_timeout"  env:"SANGO_UPSTREAM_TIMEOUT"`
	LogLevel        string        `yaml:"log_level"         env:"SANGO_LOG_LEVEL"`
}

// Default returns the configuration used when no file and no
// environment overrides are present.
func Default() Config {
	return Config{
		ListenAddr:      ":8080",
		DBPath:          "sango.db",
		UpstreamBaseURL: "https://enka.network",
		UpstreamTimeout: 10 * time.Second,
		LogLevel:        "info",
	}
}

// Load reads configuration in precedence order: defaults, then the YAML
// file at path (skipped when path is empty or the file is absent), then
// SANGO_* environment variables on top.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// optional file
		case err != nil:
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("db_path must not be empty")
	}
	if c.UpstreamTimeout <= 0 {
		return fmt.Errorf("upstream_timeout must be positive, got %s", c.UpstreamTimeout)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	return nil
}
