package metrics

import "time"

// ScheduleRun describes one completed scheduling computation.
type ScheduleRun struct {
	RunID          string
	TaskCount      int
	Days           int
	OverloadedDays int
	CapacityHours  float64
	Duration       time.Duration
	Time           time.Time
}

// ReportRun describes one computed production report.
type ReportRun struct {
	Rows       int
	Attainment float64
	Time       time.Time
}

// Sink records run events for observability purposes.
type Sink interface {
	RecordScheduleRun(run ScheduleRun) error
	RecordReportRun(run ReportRun) error
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) RecordScheduleRun(ScheduleRun) error { return nil }
func (NopSink) RecordReportRun(ReportRun) error     { return nil }

// MultiSink fans events out to multiple sinks.
type MultiSink struct {
	Sinks []Sink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordScheduleRun forwards the run to all sinks, returning the first
// error encountered.
func (m *MultiSink) RecordScheduleRun(run ScheduleRun) error {
	for _, s := range m.Sinks {
		if err := s.RecordScheduleRun(run); err != nil {
			return err
		}
	}
	return nil
}

// RecordReportRun forwards the run to all sinks, returning the first
// error encountered.
func (m *MultiSink) RecordReportRun(run ReportRun) error {
	for _, s := range m.Sinks {
		if err := s.RecordReportRun(run); err != nil {
			return err
		}
	}
	return nil
}
