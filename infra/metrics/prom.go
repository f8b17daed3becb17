package metrics

import (
	coremetrics "github.com/kilianp07/planboard/core/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// PromSink records scheduling and reporting runs in Prometheus metrics.
type PromSink struct {
	scheduleRuns *prometheus.CounterVec
	scheduleDays prometheus.Histogram
	reportRuns   prometheus.Counter
	attainment   prometheus.Gauge
}

// NewPromSink registers run metrics on the default Prometheus registerer.
// The Prometheus server should be started separately using the configured address.
func NewPromSink() (coremetrics.Sink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (coremetrics.Sink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	scheduleRuns := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "schedule_runs_total",
		Help: "Total number of completed scheduling runs",
	}, []string{"overloaded"})
	scheduleDays := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "schedule_days",
		Help:    "Number of working days produced per scheduling run",
		Buckets: []float64{1, 2, 3, 5, 7, 10, 14, 21, 30},
	})
	reportRuns := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "report_runs_total",
		Help: "Total number of computed production reports",
	})
	attainment := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "report_last_attainment_ratio",
		Help: "Overall attainment of the most recent production report",
	})

	if err := reg.Register(scheduleRuns); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			scheduleRuns = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(scheduleDays); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			scheduleDays = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(reportRuns); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			reportRuns = are.ExistingCollector.(prometheus.Counter)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(attainment); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			attainment = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}
	return &PromSink{
		scheduleRuns: scheduleRuns,
		scheduleDays: scheduleDays,
		reportRuns:   reportRuns,
		attainment:   attainment,
	}, nil
}

// RecordScheduleRun increments the run counter and observes the day count.
func (s *PromSink) RecordScheduleRun(run coremetrics.ScheduleRun) error {
	overloaded := "false"
	if run.OverloadedDays > 0 {
		overloaded = "true"
	}
	s.scheduleRuns.WithLabelValues(overloaded).Inc()
	s.scheduleDays.Observe(float64(run.Days))
	return nil
}

// RecordReportRun increments the report counter and updates the gauge.
func (s *PromSink) RecordReportRun(run coremetrics.ReportRun) error {
	s.reportRuns.Inc()
	s.attainment.Set(run.Attainment)
	return nil
}
