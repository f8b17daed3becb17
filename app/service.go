package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	apireport "github.com/kilianp07/planboard/api/report"
	apischedule "github.com/kilianp07/planboard/api/schedule"
	apiwhatif "github.com/kilianp07/planboard/api/whatif"
	"github.com/kilianp07/planboard/config"
	coremetrics "github.com/kilianp07/planboard/core/metrics"
	"github.com/kilianp07/planboard/core/report"
	"github.com/kilianp07/planboard/infra/announce"
	"github.com/kilianp07/planboard/infra/logger"
	"github.com/kilianp07/planboard/infra/metrics"
	"github.com/kilianp07/planboard/internal/eventbus"
)

// Service wires the dashboard API, the observability sinks and the
// optional MQTT announcer together.
type Service struct {
	cfg         *config.Config
	log         logger.Logger
	sink        coremetrics.Sink
	scheduleBus *eventbus.Bus[coremetrics.ScheduleRun]
	reportBus   *eventbus.Bus[coremetrics.ReportRun]
	announcer   *announce.Announcer
	mux         *http.ServeMux
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	var sinks []coremetrics.Sink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink()
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sink := metrics.NewInfluxSinkWithFallback(cfg.Metrics.InfluxURL, cfg.Metrics.InfluxToken, cfg.Metrics.InfluxOrg, cfg.Metrics.InfluxBucket)
		sinks = append(sinks, sink)
	}
	var sink coremetrics.Sink = coremetrics.NopSink{}
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = coremetrics.NewMultiSink(sinks...)
	}

	var announcer *announce.Announcer
	if cfg.Announce.Enabled {
		a, err := announce.New(cfg.Announce)
		if err != nil {
			return nil, fmt.Errorf("announcer: %w", err)
		}
		announcer = a
	}

	svc := &Service{
		cfg:         cfg,
		log:         logg,
		sink:        sink,
		scheduleBus: eventbus.New[coremetrics.ScheduleRun](),
		reportBus:   eventbus.New[coremetrics.ReportRun](),
		announcer:   announcer,
	}

	store := report.NewMemoryStore(report.DefaultRows()...)
	mux := http.NewServeMux()
	mux.Handle("/api/schedule", apischedule.NewHandler(cfg.Planner.DefaultCapacityHours, svc.scheduleBus))
	mux.Handle("/api/schedule/text", apischedule.NewTextHandler(cfg.Planner.DefaultCapacityHours, svc.scheduleBus))
	mux.Handle("/api/whatif", apiwhatif.NewHandler())
	h := apireport.NewHandler(store, svc.reportBus)
	mux.Handle("/api/report", h)
	mux.Handle("/api/report/rows", h)
	svc.mux = mux
	return svc, nil
}

// Handler exposes the API routes, mainly for tests.
func (s *Service) Handler() http.Handler { return s.mux }

// Run serves the API and consumes run events until the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	if s.cfg.Metrics.PrometheusEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.cfg.Metrics.PrometheusAddr); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}
	go s.consume(ctx)

	srv := &http.Server{Addr: s.cfg.API.Addr, Handler: s.mux}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.log.Errorf("api shutdown: %v", err)
		}
	}()
	s.log.Infof("dashboard API listening on %s", s.cfg.API.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// consume forwards run events from the buses to the sink and announcer.
func (s *Service) consume(ctx context.Context) {
	schedules := s.scheduleBus.Subscribe()
	reports := s.reportBus.Subscribe()
	for {
		select {
		case <-ctx.Done():
			return
		case run, ok := <-schedules:
			if !ok {
				return
			}
			if err := s.sink.RecordScheduleRun(run); err != nil {
				s.log.Errorf("record schedule run: %v", err)
			}
			if s.announcer != nil {
				s.announcer.Publish(run)
			}
		case run, ok := <-reports:
			if !ok {
				return
			}
			if err := s.sink.RecordReportRun(run); err != nil {
				s.log.Errorf("record report run: %v", err)
			}
		}
	}
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	s.scheduleBus.Close()
	s.reportBus.Close()
	if s.announcer != nil {
		s.announcer.Close()
	}
	return nil
}
