package planner

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kilianp07/planboard/core/model"
)

// DefaultTaskHours is assumed when a backlog line omits the hours column.
const DefaultTaskHours = 1

// ParseResult holds the tasks recovered from a backlog text plus one
// warning per line that could not be parsed. Malformed lines are skipped,
// never fatal.
type ParseResult struct {
	Tasks  []model.Task
	Errors []string
}

// ParseTasks parses newline-separated backlog text. Each line follows
// "task name | hours | YYYY-MM-DD" where hours and date are optional.
// Blank lines are ignored.
func ParseTasks(raw string) ParseResult {
	var res ParseResult
	for lineNo, line := range strings.Split(raw, "\n") {
		lineNo++
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.Split(line, "|")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}

		name := parts[0]
		if name == "" {
			res.Errors = append(res.Errors, fmt.Sprintf("line %d: task name is required", lineNo))
			continue
		}

		hours := float64(DefaultTaskHours)
		if len(parts) > 1 && parts[1] != "" {
			h, err := strconv.ParseFloat(parts[1], 64)
			if err != nil {
				res.Errors = append(res.Errors, fmt.Sprintf("line %d: hours must be a number (got %q)", lineNo, parts[1]))
				continue
			}
			hours = h
		}

		var due *model.Date
		if len(parts) > 2 && parts[2] != "" {
			d, err := model.ParseDate(parts[2])
			if err != nil {
				res.Errors = append(res.Errors, fmt.Sprintf("line %d: due date must be %s (got %q)", lineNo, model.DateLayout, parts[2]))
				continue
			}
			due = &d
		}

		res.Tasks = append(res.Tasks, model.Task{Name: name, Hours: hours, DueDate: due})
	}
	return res
}
