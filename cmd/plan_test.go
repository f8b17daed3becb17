package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kilianp07/planboard/core/planner"
)

func TestPlanCommandJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backlog.txt")
	data := "Team sync | 1 | 2024-06-20\nPrototype API | 4 | 2024-06-25\nQA pass | 2\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"plan", "-f", path, "--capacity", "5", "--format", "json"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	var days []planner.DayAssignment
	if err := json.Unmarshal(out.Bytes(), &days); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(days) != 2 {
		t.Fatalf("expected 2 days got %d", len(days))
	}
	if days[0].Tasks[0].Name != "Team sync" {
		t.Fatalf("due-date order lost: %+v", days[0].Tasks)
	}
}

func TestPlanCommandCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backlog.txt")
	if err := os.WriteFile(path, []byte("Solo task | 2\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"plan", "-f", path, "--format", "csv"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.HasPrefix(out.String(), "day_index,task,hours") {
		t.Fatalf("csv header missing: %q", out.String())
	}
}

func TestPlanCommandBadFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backlog.txt")
	if err := os.WriteFile(path, []byte("Task | 1\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"plan", "-f", path, "--format", "xml"})
	if err := rootCmd.Execute(); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}

func TestWhatifCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"whatif", "--tasks", "5", "--avg-hours", "3", "--capacity", "6"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out.String(), "15 hours") || !strings.Contains(out.String(), "Estimated days: 3") {
		t.Fatalf("unexpected output %q", out.String())
	}
}
