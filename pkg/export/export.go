// Package export writes computed schedules and reports for consumption
// by external renderers.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/kilianp07/planboard/core/planner"
	"github.com/kilianp07/planboard/core/report"
)

// WriteJSON writes the schedule to w in JSON format.
func WriteJSON(w io.Writer, days []planner.DayAssignment) error {
	enc := json.NewEncoder(w)
	return enc.Encode(days)
}

// WriteCSV writes the schedule to w in CSV format, one row per assigned
// task.
func WriteCSV(w io.Writer, days []planner.DayAssignment) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"day_index", "task", "hours", "due_date", "day_total_hours", "overloaded"}); err != nil {
		return err
	}
	for _, d := range days {
		for _, task := range d.Tasks {
			due := ""
			if task.DueDate != nil {
				due = task.DueDate.String()
			}
			rec := []string{
				strconv.Itoa(d.DayIndex),
				task.Name,
				strconv.FormatFloat(task.Hours, 'f', -1, 64),
				due,
				strconv.FormatFloat(d.TotalHours, 'f', -1, 64),
				strconv.FormatBool(d.Overloaded),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteReportCSV writes the production report to w in CSV format.
func WriteReportCSV(w io.Writer, rep report.Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"line", "shift", "units", "target", "variance", "attainment", "scrap_pct", "downtime_hr"}); err != nil {
		return err
	}
	for _, l := range rep.Lines {
		rec := []string{
			l.Line,
			l.Shift,
			strconv.Itoa(l.Units),
			strconv.Itoa(l.Target),
			strconv.Itoa(l.Variance),
			strconv.FormatFloat(l.Attainment, 'f', 4, 64),
			strconv.FormatFloat(l.ScrapPct, 'f', -1, 64),
			strconv.FormatFloat(l.DowntimeHr, 'f', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
