package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	coremetrics "github.com/kilianp07/planboard/core/metrics"
)

func TestInfluxSink_RecordScheduleRun(t *testing.T) {
	var body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		body = string(data)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	sink := NewInfluxSink(srv.URL, "token", "org", "bucket")
	defer sink.Close()
	run := coremetrics.ScheduleRun{
		RunID:          "run-1",
		TaskCount:      5,
		Days:           3,
		OverloadedDays: 1,
		CapacityHours:  6,
		Duration:       2 * time.Millisecond,
		Time:           time.Now(),
	}
	if err := sink.RecordScheduleRun(run); err != nil {
		t.Fatalf("record: %v", err)
	}
	if !strings.Contains(body, "schedule_run") {
		t.Fatalf("measurement missing in %q", body)
	}
	if !strings.Contains(body, "run_id=run-1") || !strings.Contains(body, "overloaded=true") {
		t.Fatalf("tags missing in %q", body)
	}
	if !strings.Contains(body, "days=3i") {
		t.Fatalf("fields missing in %q", body)
	}
}

func TestInfluxSink_RecordReportRun(t *testing.T) {
	var body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		body = string(data)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	sink := NewInfluxSink(srv.URL, "token", "org", "bucket")
	defer sink.Close()
	if err := sink.RecordReportRun(coremetrics.ReportRun{Rows: 3, Attainment: 0.95, Time: time.Now()}); err != nil {
		t.Fatalf("record: %v", err)
	}
	if !strings.Contains(body, "report_run") || !strings.Contains(body, "attainment=0.95") {
		t.Fatalf("unexpected body %q", body)
	}
}

func TestInfluxSinkFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	sink := NewInfluxSinkWithFallback(srv.URL, "token", "org", "bucket")
	if _, ok := sink.(coremetrics.NopSink); !ok {
		t.Fatalf("expected NopSink fallback, got %T", sink)
	}
}
