package planner

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config defines planning defaults loaded from configuration.
type Config struct {
	// DefaultCapacityHours is used when a request does not carry its own
	// daily capacity.
	DefaultCapacityHours float64 `json:"default_capacity_hours" yaml:"default_capacity_hours"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.DefaultCapacityHours == 0 {
		c.DefaultCapacityHours = 6
	}
}

// Validate checks mandatory fields.
func (c Config) Validate() error {
	if c.DefaultCapacityHours <= 0 {
		return fmt.Errorf("default_capacity_hours must be positive")
	}
	return nil
}

// LoadConfig loads Config from a JSON or YAML file.
func LoadConfig(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	ext := strings.ToLower(filepath.Ext(path))
	var cfg Config
	switch ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &cfg)
	case ".json":
		err = json.Unmarshal(b, &cfg)
	default:
		return Config{}, fmt.Errorf("unsupported config format: %s", ext)
	}
	return cfg, err
}

// DecodeConfig reads from r to decode a Config.
func DecodeConfig(r io.Reader, format string) (Config, error) {
	var cfg Config
	switch strings.ToLower(format) {
	case "yaml", "yml":
		dec := yaml.NewDecoder(r)
		if err := dec.Decode(&cfg); err != nil {
			return cfg, err
		}
	case "json":
		dec := json.NewDecoder(r)
		if err := dec.Decode(&cfg); err != nil {
			return cfg, err
		}
	default:
		return cfg, fmt.Errorf("unsupported format: %s", format)
	}
	return cfg, nil
}
