// Package report computes production KPI reports from manually entered
// line/shift records: per-row attainment and variance plus headline
// totals for charting.
package report

import (
	"errors"

	"gonum.org/v1/gonum/stat"
)

// ErrNoRows is returned when a report is requested without any input rows.
var ErrNoRows = errors.New("report: at least one row is required")

// Line is one computed entry of the report.
type Line struct {
	Row
	Variance   int     `json:"variance"`
	Attainment float64 `json:"attainment"`
}

// Summary holds the headline KPIs across all rows.
type Summary struct {
	TotalUnits      int     `json:"total_units"`
	TotalTarget     int     `json:"total_target"`
	TotalVariance   int     `json:"total_variance"`
	Attainment      float64 `json:"attainment"`
	AvgScrapPct     float64 `json:"avg_scrap_pct"`
	TotalDowntimeHr float64 `json:"total_downtime_hr"`
}

// Report is the full computed production report.
type Report struct {
	Lines   []Line  `json:"lines"`
	Summary Summary `json:"summary"`
}

// Compute derives per-row KPIs and the headline summary. The overall
// attainment is total units over total target, not the mean of per-row
// ratios, so large lines weigh more.
func Compute(rows []Row) (Report, error) {
	if len(rows) == 0 {
		return Report{}, ErrNoRows
	}

	rep := Report{Lines: make([]Line, 0, len(rows))}
	scrap := make([]float64, 0, len(rows))
	for _, r := range rows {
		rep.Lines = append(rep.Lines, Line{
			Row:        r,
			Variance:   r.Variance(),
			Attainment: r.Attainment(),
		})
		rep.Summary.TotalUnits += r.Units
		rep.Summary.TotalTarget += r.Target
		rep.Summary.TotalDowntimeHr += r.DowntimeHr
		scrap = append(scrap, r.ScrapPct)
	}
	rep.Summary.TotalVariance = rep.Summary.TotalUnits - rep.Summary.TotalTarget
	rep.Summary.Attainment = safeRatio(float64(rep.Summary.TotalUnits), float64(rep.Summary.TotalTarget))
	rep.Summary.AvgScrapPct = stat.Mean(scrap, nil)
	return rep, nil
}
