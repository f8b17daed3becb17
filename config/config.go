package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kilianp07/planboard/core/metrics"
	"github.com/kilianp07/planboard/core/planner"
	"github.com/kilianp07/planboard/infra/announce"
)

type Config struct {
	API      APIConfig       `json:"api"`
	Planner  planner.Config  `json:"planner"`
	Metrics  metrics.Config  `json:"metrics"`
	Announce announce.Config `json:"announce"`
}

func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("PB_", ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "pb_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.API.SetDefaults()
	cfg.Planner.SetDefaults()
	cfg.Metrics.SetDefaults()
	cfg.Announce.SetDefaults()
	if err := cfg.API.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Planner.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Announce.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
