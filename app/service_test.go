package app

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kilianp07/planboard/config"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	cfg := &config.Config{}
	cfg.API.SetDefaults()
	cfg.Planner.SetDefaults()
	cfg.Metrics.SetDefaults()
	cfg.Announce.SetDefaults()
	svc, err := New(cfg)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	t.Cleanup(func() {
		if err := svc.Close(); err != nil {
			t.Fatalf("close: %v", err)
		}
	})
	return svc
}

func TestServiceRoutes(t *testing.T) {
	svc := newTestService(t)
	srv := httptest.NewServer(svc.Handler())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/schedule", "application/json",
		strings.NewReader(`{"tasks":[{"name":"A","hours":3}],"daily_capacity_hours":5}`))
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("schedule status %d", resp.StatusCode)
	}
	_ = resp.Body.Close()

	resp, err = http.Get(srv.URL + "/api/whatif?tasks=5&avg_hours=3&capacity=6")
	if err != nil {
		t.Fatalf("whatif: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("whatif status %d", resp.StatusCode)
	}
	_ = resp.Body.Close()

	// The report store is pre-seeded with the default rows.
	resp, err = http.Get(srv.URL + "/api/report")
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("report status %d", resp.StatusCode)
	}
	_ = resp.Body.Close()
}

func TestServiceDefaultCapacityFlows(t *testing.T) {
	svc := newTestService(t)
	srv := httptest.NewServer(svc.Handler())
	defer srv.Close()

	// No capacity in the request: the configured default (6h) applies.
	resp, err := http.Post(srv.URL+"/api/schedule/text", "application/json",
		strings.NewReader(`{"backlog":"Big task | 10"}`))
	if err != nil {
		t.Fatalf("schedule text: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
}
