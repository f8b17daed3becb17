package metrics

import (
	"errors"
	"testing"
	"time"
)

type recSink struct {
	schedules int
	reports   int
	err       error
}

func (s *recSink) RecordScheduleRun(ScheduleRun) error { s.schedules++; return s.err }
func (s *recSink) RecordReportRun(ReportRun) error     { s.reports++; return s.err }

func TestMultiSinkFanout(t *testing.T) {
	a, b := &recSink{}, &recSink{}
	m := NewMultiSink(a, b)
	if err := m.RecordScheduleRun(ScheduleRun{RunID: "r1", Time: time.Now()}); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := m.RecordReportRun(ReportRun{Rows: 3}); err != nil {
		t.Fatalf("record: %v", err)
	}
	if a.schedules != 1 || b.schedules != 1 || a.reports != 1 || b.reports != 1 {
		t.Fatalf("fanout missed: %+v %+v", a, b)
	}
}

func TestMultiSinkFirstError(t *testing.T) {
	boom := errors.New("boom")
	a := &recSink{err: boom}
	b := &recSink{}
	m := NewMultiSink(a, b)
	if err := m.RecordScheduleRun(ScheduleRun{}); !errors.Is(err, boom) {
		t.Fatalf("expected boom got %v", err)
	}
	if b.schedules != 0 {
		t.Fatalf("should stop at first error")
	}
}

func TestNopSink(t *testing.T) {
	var s NopSink
	if err := s.RecordScheduleRun(ScheduleRun{}); err != nil {
		t.Fatalf("nop: %v", err)
	}
	if err := s.RecordReportRun(ReportRun{}); err != nil {
		t.Fatalf("nop: %v", err)
	}
}
