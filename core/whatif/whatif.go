// Package whatif relates backlog size, task effort and daily capacity to
// an estimated delivery time. The formulas are deliberately closed-form:
// this is the dashboard's what-if calculator, not a scheduler.
package whatif

import (
	"fmt"
	"math"

	"github.com/kilianp07/planboard/core/planner"
)

// Estimate is the calculator's input.
type Estimate struct {
	TaskCount       int     `json:"task_count"`
	AvgHoursPerTask float64 `json:"avg_hours_per_task"`
	CapacityHours   float64 `json:"daily_capacity_hours"`
}

// Result is the calculator's output.
type Result struct {
	TotalHours    float64 `json:"total_hours"`
	EstimatedDays int     `json:"estimated_days"`
}

// EstimateDelivery computes the total effort and the number of working
// days needed to absorb it at the given daily capacity. Days are rounded
// up: any remainder spills into one more day.
func EstimateDelivery(est Estimate) (Result, error) {
	if est.CapacityHours <= 0 || math.IsNaN(est.CapacityHours) {
		return Result{}, planner.InvalidInputError{
			Field:  "daily_capacity_hours",
			Reason: fmt.Sprintf("must be positive, got %v", est.CapacityHours),
		}
	}
	if est.TaskCount < 0 {
		return Result{}, planner.InvalidInputError{
			Field:  "task_count",
			Reason: fmt.Sprintf("must be non-negative, got %d", est.TaskCount),
		}
	}
	if est.AvgHoursPerTask < 0 || math.IsNaN(est.AvgHoursPerTask) {
		return Result{}, planner.InvalidInputError{
			Field:  "avg_hours_per_task",
			Reason: fmt.Sprintf("must be non-negative, got %v", est.AvgHoursPerTask),
		}
	}

	total := float64(est.TaskCount) * est.AvgHoursPerTask
	days := 0
	if total > 0 {
		days = int(math.Ceil(total / est.CapacityHours))
	}
	return Result{TotalHours: total, EstimatedDays: days}, nil
}
