package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, ":3001", cfg.EndpointAddr)
	assert.Equal(t, time.Hour, cfg.TokenValidityDuration)
	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, TransportCookie, cfg.SessionTransport)
	assert.Empty(t, cfg.SecretKey, "secret key must not have a default")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.LoadDefaults()
		cfg.SecretKey = "test-secret"
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"missing secret", func(c *Config) { c.SecretKey = "" }, true},
		{"bad transport", func(c *Config) { c.SessionTransport = "both" }, true},
		{"bad env", func(c *Config) { c.Env = "staging" }, true},
		{"zero ttl", func(c *Config) { c.TokenValidityDuration = 0 }, true},
		{"bearer ok", func(c *Config) { c.SessionTransport = TransportBearer }, false},
		{"production ok", func(c *Config) { c.Env = EnvProduction }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseFlags_OverridesDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	parseFlagsFromArgs(cfg, []string{
		"-a", ":9999",
		"-s", "flag-secret",
		"-t", "30m",
		"-m", "bearer",
	})

	assert.Equal(t, ":9999", cfg.EndpointAddr)
	assert.Equal(t, "flag-secret", cfg.SecretKey)
	assert.Equal(t, 30*time.Minute, cfg.TokenValidityDuration)
	assert.Equal(t, TransportBearer, cfg.SessionTransport)
	// untouched fields keep defaults
	assert.Equal(t, EnvDevelopment, cfg.Env)
}

func TestParseFlags_JSONOverlayAndPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	body := `{
		"endpoint_addr": ":8088",
		"secret_key": "json-secret",
		"token_validity_duration": "2h",
		"env": "production",
		"allowed_origin": "https://songs.example.com"
	}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg := &Config{}
	cfg.LoadDefaults()

	// The -a flag must beat the JSON value; everything else comes from JSON.
	parseFlagsFromArgs(cfg, []string{"-c", path, "-a", ":7777"})

	assert.Equal(t, ":7777", cfg.EndpointAddr)
	assert.Equal(t, "json-secret", cfg.SecretKey)
	assert.Equal(t, 2*time.Hour, cfg.TokenValidityDuration)
	assert.Equal(t, EnvProduction, cfg.Env)
	assert.Equal(t, "https://songs.example.com", cfg.AllowedOrigin)
}

func TestParseJSON_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"secret_key":"only-secret"}`), 0o600))

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg, path)

	assert.Equal(t, "only-secret", cfg.SecretKey)
	assert.Equal(t, ":3001", cfg.EndpointAddr)
	assert.Equal(t, TransportCookie, cfg.SessionTransport)
}

func TestParseJSON_BrokenFilePanics(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o600))

	cfg := &Config{}
	cfg.LoadDefaults()
	assert.Panics(t, func() { parseJSON(cfg, path) })
	assert.Panics(t, func() { parseJSON(cfg, filepath.Join(dir, "missing.json")) })
}
