// Package schedule exposes the day-packing scheduler over HTTP. The form
// collaborator validates field formats before calling; the handlers only
// revalidate what the planner itself requires.
package schedule

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	coremetrics "github.com/kilianp07/planboard/core/metrics"
	"github.com/kilianp07/planboard/core/model"
	"github.com/kilianp07/planboard/core/planner"
	"github.com/kilianp07/planboard/internal/eventbus"
)

type scheduleRequest struct {
	Tasks              []model.Task `json:"tasks"`
	DailyCapacityHours float64      `json:"daily_capacity_hours"`
}

type textRequest struct {
	Backlog            string  `json:"backlog"`
	DailyCapacityHours float64 `json:"daily_capacity_hours"`
}

type scheduleResponse struct {
	RunID    string                  `json:"run_id"`
	Days     []planner.DayAssignment `json:"days"`
	Warnings []string                `json:"warnings,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// NewHandler serves POST /api/schedule. A zero capacity in the request
// falls back to defaultCapacity. Each run is published on bus when the
// bus is non-nil.
func NewHandler(defaultCapacity float64, bus *eventbus.Bus[coremetrics.ScheduleRun]) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req scheduleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		respond(w, req.Tasks, capacityOrDefault(req.DailyCapacityHours, defaultCapacity), nil, bus)
	})
}

// NewTextHandler serves POST /api/schedule/text, accepting the raw
// backlog text of the dashboard form. Unparseable lines come back as
// warnings alongside the schedule of the valid ones.
func NewTextHandler(defaultCapacity float64, bus *eventbus.Bus[coremetrics.ScheduleRun]) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req textRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		parsed := planner.ParseTasks(req.Backlog)
		respond(w, parsed.Tasks, capacityOrDefault(req.DailyCapacityHours, defaultCapacity), parsed.Errors, bus)
	})
}

func respond(w http.ResponseWriter, tasks []model.Task, capacity float64, warnings []string, bus *eventbus.Bus[coremetrics.ScheduleRun]) {
	start := time.Now()
	days, err := planner.Schedule(tasks, capacity)
	if err != nil {
		var iie planner.InvalidInputError
		if errors.As(err, &iie) {
			writeError(w, http.StatusBadRequest, errorResponse{Error: iie.Reason, Field: iie.Field})
			return
		}
		writeError(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	runID := uuid.NewString()
	if bus != nil {
		overloaded := 0
		for _, d := range days {
			if d.Overloaded {
				overloaded++
			}
		}
		bus.Publish(coremetrics.ScheduleRun{
			RunID:          runID,
			TaskCount:      len(tasks),
			Days:           len(days),
			OverloadedDays: overloaded,
			CapacityHours:  capacity,
			Duration:       time.Since(start),
			Time:           start,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(scheduleResponse{RunID: runID, Days: days, Warnings: warnings}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func capacityOrDefault(capacity, fallback float64) float64 {
	if capacity == 0 {
		return fallback
	}
	return capacity
}

func writeError(w http.ResponseWriter, code int, resp errorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(resp)
}
