package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	t.Setenv("SUPABASE_URL", "https://example.supabase.co")
	t.Setenv("SUPABASE_SERVICE_KEY", "key")

	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Mode)
	assert.Equal(t, 50, cfg.Server.RateLimitRPS)
	assert.Equal(t, "https://example.supabase.co", cfg.Supabase.URL)
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
  mode: production
  allowed_origins: ["https://catalogue.example.org"]
  rate_limit_rps: 10
  rate_limit_burst: 20
supabase:
  url: https://example.supabase.co
  service_key: file-key
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "production", cfg.Server.Mode)
	assert.Equal(t, []string{"https://catalogue.example.org"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "file-key", cfg.Supabase.ServiceKey)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
supabase:
  url: https://file.supabase.co
  service_key: file-key
`)
	t.Setenv("SUPABASE_URL", "https://env.supabase.co")
	t.Setenv("SUPABASE_SERVICE_KEY", "env-key")
	t.Setenv("PORT", "7070")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://env.supabase.co", cfg.Supabase.URL)
	assert.Equal(t, "env-key", cfg.Supabase.ServiceKey)
	assert.Equal(t, 7070, cfg.Server.Port)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "missing supabase url",
			mutate:  func(c *Config) { c.Supabase.URL = "" },
			wantErr: "URL is required",
		},
		{
			name:    "malformed supabase url",
			mutate:  func(c *Config) { c.Supabase.URL = "not a url" },
			wantErr: "not a valid URL",
		},
		{
			name:    "missing service key",
			mutate:  func(c *Config) { c.Supabase.ServiceKey = "" },
			wantErr: "service key is required",
		},
		{
			name:    "bad port",
			mutate:  func(c *Config) { c.Server.Port = 0 },
			wantErr: "invalid port",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Supabase = SupabaseConfig{URL: "https://example.supabase.co", ServiceKey: "key"}
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
