package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `api:
  addr: ":8090"
planner:
  default_capacity_hours: 8
metrics:
  prometheus_enabled: true
  prometheus_addr: ":9091"
  influx_enabled: false
announce:
  enabled: true
  broker: "tcp://localhost:1883"
  topic: "planboard/runs"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	checks := []struct {
		name string
		got  any
		want any
	}{
		{"api.addr", cfg.API.Addr, ":8090"},
		{"planner.default_capacity_hours", cfg.Planner.DefaultCapacityHours, 8.0},
		{"metrics.prometheus_enabled", cfg.Metrics.PrometheusEnabled, true},
		{"metrics.prometheus_addr", cfg.Metrics.PrometheusAddr, ":9091"},
		{"announce.enabled", cfg.Announce.Enabled, true},
		{"announce.topic", cfg.Announce.Topic, "planboard/runs"},
		{"announce.client_id default", cfg.Announce.ClientID, "planboard-announcer"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Fatalf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("{}\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.API.Addr != ":8080" {
		t.Fatalf("api default %q", cfg.API.Addr)
	}
	if cfg.Planner.DefaultCapacityHours != 6 {
		t.Fatalf("planner default %v", cfg.Planner.DefaultCapacityHours)
	}
	if cfg.Metrics.PrometheusAddr != ":9090" {
		t.Fatalf("metrics default %q", cfg.Metrics.PrometheusAddr)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("api:\n  addr: \":8080\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("PB_API__ADDR", ":9999")
	t.Setenv("PB_METRICS__PROMETHEUS_ADDR", ":9191")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.API.Addr != ":9999" {
		t.Fatalf("env override ignored: %q", cfg.API.Addr)
	}
	if cfg.Metrics.PrometheusAddr != ":9191" {
		t.Fatalf("nested env override ignored: %q", cfg.Metrics.PrometheusAddr)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load("missing.toml"); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("announce:\n  enabled: true\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected validation error for enabled announce without broker")
	}
}
