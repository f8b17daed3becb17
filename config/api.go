package config

import "fmt"

// APIConfig defines the HTTP API server settings.
type APIConfig struct {
	// Addr is the listen address of the dashboard API.
	Addr string `json:"addr"`
}

// SetDefaults applies sane defaults.
func (c *APIConfig) SetDefaults() {
	if c.Addr == "" {
		c.Addr = ":8080"
	}
}

// Validate checks mandatory fields.
func (c APIConfig) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("api addr is required")
	}
	return nil
}
