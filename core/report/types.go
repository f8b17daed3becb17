package report

// Row describes a single production line/shift record as entered on the
// report page.
type Row struct {
	Line       string  `json:"line"`
	Shift      string  `json:"shift"`
	Units      int     `json:"units"`
	Target     int     `json:"target"`
	ScrapPct   float64 `json:"scrap_pct"`
	DowntimeHr float64 `json:"downtime_hr"`
}

// Variance returns units produced minus target.
func (r Row) Variance() int {
	return r.Units - r.Target
}

// Attainment returns the ratio of units to target, or 0 when the target
// is zero.
func (r Row) Attainment() float64 {
	return safeRatio(float64(r.Units), float64(r.Target))
}

func safeRatio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

// DefaultRows provides the seed data the report page pre-fills.
func DefaultRows() []Row {
	return []Row{
		{Line: "Line A", Shift: "Morning", Units: 1200, Target: 1100, ScrapPct: 1.4, DowntimeHr: 0.5},
		{Line: "Line B", Shift: "Evening", Units: 900, Target: 950, ScrapPct: 2.1, DowntimeHr: 1.2},
		{Line: "Line C", Shift: "Night", Units: 750, Target: 800, ScrapPct: 1.1, DowntimeHr: 0.8},
	}
}
