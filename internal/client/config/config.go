// Package config handles configuration for the CLI client.
package config

import (
	"flag"
	"os"
)

// Config holds runtime settings for the songkeeper CLI client.
type Config struct {
	// ServerURL is the base URL of the songkeeper HTTP API,
	// e.g. "http://localhost:3001".
	ServerURL string
}

func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:3001"
}

func parseFlagsFromArgs(config *Config, args []string) {
	fs := flag.NewFlagSet("client", flag.ExitOnError)

	serverURL := fs.String("s", config.ServerURL, "server base URL")

	fs.Parse(args)

	config.ServerURL = *serverURL
}

func LoadConfig() *Config {
	config := &Config{}
	config.LoadDefaults()
	parseFlagsFromArgs(config, os.Args[1:])
	return config
}
