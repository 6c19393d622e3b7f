package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	c := &Config{}
	c.LoadDefaults()
	assert.Equal(t, "http://localhost:3001", c.ServerURL)
}

func TestFlagOverride(t *testing.T) {
	c := &Config{}
	c.LoadDefaults()
	parseFlagsFromArgs(c, []string{"-s", "https://songs.example.com"})
	assert.Equal(t, "https://songs.example.com", c.ServerURL)
}
