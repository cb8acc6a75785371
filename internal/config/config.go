// Package config loads service configuration from YAML with environment
// variable overrides.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Port           int      `yaml:"port"`
	Mode           string   `yaml:"mode"` // "development" or "production"
	AllowedOrigins []string `yaml:"allowed_origins"`
	RateLimitRPS   int      `yaml:"rate_limit_rps"`
	RateLimitBurst int      `yaml:"rate_limit_burst"`
}

// SupabaseConfig configures the hosted database client.
type SupabaseConfig struct {
	URL        string `yaml:"url"`
	ServiceKey string `yaml:"service_key"`
}

// Config is the root configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Supabase SupabaseConfig `yaml:"supabase"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           8080,
			Mode:           "development",
			AllowedOrigins: []string{"http://localhost:5173"},
			RateLimitRPS:   50,
			RateLimitBurst: 100,
		},
	}
}

// Load reads the YAML file at path (missing file falls back to defaults),
// applies environment overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("SUPABASE_URL"); v != "" {
		cfg.Supabase.URL = v
	}
	if v := os.Getenv("SUPABASE_SERVICE_KEY"); v != "" {
		cfg.Supabase.ServiceKey = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("SERVER_MODE"); v != "" {
		cfg.Server.Mode = v
	}
}

// Validate checks that required fields are present and well formed.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server: invalid port %d", c.Server.Port)
	}
	if c.Supabase.URL == "" {
		return fmt.Errorf("supabase: URL is required (set SUPABASE_URL)")
	}
	u, err := url.Parse(c.Supabase.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("supabase: URL %q is not a valid URL", c.Supabase.URL)
	}
	if c.Supabase.ServiceKey == "" {
		return fmt.Errorf("supabase: service key is required (set SUPABASE_SERVICE_KEY)")
	}
	return nil
}
