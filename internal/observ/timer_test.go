package observ

import (
	"strings"
	"testing"
	"time"
)

func TestTimer_Report(t *testing.T) {
	timer := NewTimer()
	idx := timer.Begin("load")
	time.Sleep(time.Millisecond)
	timer.End(idx, "3 files")

	done := timer.Track("lint")
	done("")

	report := timer.Report()
	if len(report.Phases) != 2 {
		t.Fatalf("phases = %d, want 2", len(report.Phases))
	}
	if report.Phases[0].Name != "load" || report.Phases[0].Note != "3 files" {
		t.Errorf("phases[0] = %+v", report.Phases[0])
	}
	if report.Phases[0].DurationMS <= 0 {
		t.Errorf("load duration = %v, want > 0", report.Phases[0].DurationMS)
	}
	if report.TotalMS < report.Phases[0].DurationMS {
		t.Errorf("total %v < phase %v", report.TotalMS, report.Phases[0].DurationMS)
	}
}

func TestTimer_EndOutOfRange(t *testing.T) {
	timer := NewTimer()
	timer.End(-1, "")
	timer.End(5, "")
	if len(timer.Report().Phases) != 0 {
		t.Error("out-of-range End must not create phases")
	}
}

func TestTimer_Summary(t *testing.T) {
	timer := NewTimer()
	timer.End(timer.Begin("discover"), "12 files")
	s := timer.Summary()
	if !strings.HasPrefix(s, "timings:\n") {
		t.Errorf("summary = %q", s)
	}
	if !strings.Contains(s, "discover") || !strings.Contains(s, "// 12 files") {
		t.Errorf("summary = %q", s)
	}
	if !strings.Contains(s, "total") {
		t.Errorf("summary missing total: %q", s)
	}
}

func TestEmptyTimer(t *testing.T) {
	report := NewTimer().Report()
	if report.TotalMS != 0 || len(report.Phases) != 0 {
		t.Errorf("empty report = %+v", report)
	}
}
