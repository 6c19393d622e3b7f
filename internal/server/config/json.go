package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/songkeeper/internal/timex"
)

// JSONConfig defines a configuration structure tailored for JSON
// unmarshalling. It uses timex.Duration for interval fields, which allows
// parsing both string values such as "1h" and integer nanoseconds.
//
// This struct is an intermediate DTO used only for reading JSON
// configuration files. After unmarshalling, its fields are copied into the
// runtime Config struct which uses time.Duration.
type JSONConfig struct {
	EndpointAddr          string         `json:"endpoint_addr"`
	DatabaseDSN           string         `json:"database_dsn"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	Env                   string         `json:"env"`
	AllowedOrigin         string         `json:"allowed_origin"`
	SessionTransport      string         `json:"session_transport"`
}

// parseJSON loads configuration values from the JSON file at path into the
// provided Config. Absent keys leave the current values untouched. If the
// file cannot be read or contains invalid JSON, the function panics: a
// requested-but-broken config file should not silently fall back to
// defaults.
func parseJSON(config *Config, path string) {
	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JSONConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.TokenValidityDuration.Duration != 0 {
		config.TokenValidityDuration = c.TokenValidityDuration.Duration
	}
	if c.Env != "" {
		config.Env = c.Env
	}
	if c.AllowedOrigin != "" {
		config.AllowedOrigin = c.AllowedOrigin
	}
	if c.SessionTransport != "" {
		config.SessionTransport = c.SessionTransport
	}
}
