package server

import (
	"fmt"
	"strconv"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables auth.
	ApiKey string `mapstructure:"api_key" default:""`
	// BodyLimitKB caps request bodies sent to the helper endpoints.
	BodyLimitKB int `mapstructure:"body_limit_kb" default:"512"`
}

const (
	// DefaultBodyLimitKB is used when BodyLimitKB is unset or invalid.
	DefaultBodyLimitKB = 512
)

// Validate checks that the port is a usable TCP port number.
func (c Config) Validate() error {
	p, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("invalid port %q: %w", c.Port, err)
	}
	if p <= 0 || p > 65535 {
		return fmt.Errorf("port %d out of range", p)
	}
	return nil
}

// Address returns the listen address for the configured port.
func (c Config) Address() string {
	return ":" + c.Port
}

// BodyLimit returns the request body limit in bytes.
func (c Config) BodyLimit() int {
	if c.BodyLimitKB <= 0 {
		return DefaultBodyLimitKB * 1024
	}
	return c.BodyLimitKB * 1024
}
