package planner

import (
	"fmt"
	"math"
	"sort"

	"github.com/kilianp07/planboard/core/model"
)

// DayAssignment is one working day of the generated schedule.
type DayAssignment struct {
	// DayIndex is 1-based and strictly increasing with no gaps.
	DayIndex int `json:"day_index"`
	// Tasks in placement order.
	Tasks []model.Task `json:"tasks"`
	// TotalHours is the summed effort of the assigned tasks.
	TotalHours float64 `json:"total_hours"`
	// Overloaded is true when TotalHours exceeds the daily capacity.
	Overloaded bool `json:"is_overloaded"`
}

// InvalidInputError reports a scheduling input that violates the planner's
// preconditions. Field names the offending input.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %s: %s", e.Field, e.Reason)
}

// Schedule packs tasks into working days using first-fit sequential
// placement in due-date order. Tasks without a due date sort after all
// dated tasks; ties keep their original input order. A task larger than
// the daily capacity still occupies a day of its own, flagged overloaded,
// so every task is always placed.
//
// The function is pure: it never mutates its inputs and identical inputs
// produce identical output.
func Schedule(tasks []model.Task, capacityHours float64) ([]DayAssignment, error) {
	if err := validate(tasks, capacityHours); err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, nil
	}

	ordered := sortByDueDate(tasks)

	var days []DayAssignment
	current := DayAssignment{DayIndex: 1}
	for _, task := range ordered {
		fits := current.TotalHours+task.Hours <= capacityHours
		if !fits && len(current.Tasks) > 0 {
			current.Overloaded = current.TotalHours > capacityHours
			days = append(days, current)
			current = DayAssignment{DayIndex: current.DayIndex + 1}
		}
		current.Tasks = append(current.Tasks, task)
		current.TotalHours += task.Hours
	}
	current.Overloaded = current.TotalHours > capacityHours
	days = append(days, current)
	return days, nil
}

func validate(tasks []model.Task, capacityHours float64) error {
	if math.IsNaN(capacityHours) || capacityHours <= 0 {
		return InvalidInputError{
			Field:  "daily_capacity_hours",
			Reason: fmt.Sprintf("must be positive, got %v", capacityHours),
		}
	}
	for i, task := range tasks {
		if math.IsNaN(task.Hours) || task.Hours < 0 {
			return InvalidInputError{
				Field:  "hours",
				Reason: fmt.Sprintf("task %d (%q) must be non-negative, got %v", i, task.Name, task.Hours),
			}
		}
	}
	return nil
}

// sortByDueDate returns a new slice ordered by due date ascending with
// undated tasks last. sort.SliceStable preserves input order for equal
// keys, which keeps the schedule deterministic.
func sortByDueDate(tasks []model.Task) []model.Task {
	ordered := make([]model.Task, len(tasks))
	copy(ordered, tasks)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i].DueDate, ordered[j].DueDate
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.Before(*b)
		}
	})
	return ordered
}
