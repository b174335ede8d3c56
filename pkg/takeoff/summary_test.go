package takeoff

import (
	"math"
	"strings"
	"testing"

	"github.com/jackgaston/digital-blueprint-material-takeoff-tool/internal/calibrate"
	"github.com/jackgaston/digital-blueprint-material-takeoff-tool/internal/measure"
	"github.com/jackgaston/digital-blueprint-material-takeoff-tool/internal/units"
	"github.com/jackgaston/digital-blueprint-material-takeoff-tool/pkg/geometry"
)

func sessionWith(t *testing.T, paths ...[]geometry.Point) *measure.Session {
	t.Helper()

	cal := calibrate.NewCalibrator()
	cal.Begin()
	cal.AddPoint(geometry.NewPoint(0, 0))
	cal.AddPoint(geometry.NewPoint(10, 0))
	if err := cal.Commit(1, units.Metric); err != nil { // 10 px per m
		t.Fatalf("Commit failed: %v", err)
	}

	s := measure.NewSession(cal)
	for _, pts := range paths {
		if err := s.Start(); err != nil {
			t.Fatalf("Start failed: %v", err)
		}
		for _, p := range pts {
			s.AddPoint(p)
		}
		if _, err := s.Finish(); err != nil {
			t.Fatalf("Finish failed: %v", err)
		}
	}
	return s
}

func TestSummarize(t *testing.T) {
	s := sessionWith(t,
		[]geometry.Point{geometry.NewPoint(0, 0), geometry.NewPoint(30, 0), geometry.NewPoint(30, 40)}, // 70 px = 7 m
		[]geometry.Point{geometry.NewPoint(0, 0), geometry.NewPoint(0, 30)},                            // 30 px = 3 m
	)

	summary, err := Summarize(s)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	if got := len(summary.Lines); got != 2 {
		t.Fatalf("expected 2 lines, got %d", got)
	}
	if summary.SegmentCount != 3 {
		t.Errorf("SegmentCount: expected 3, got %d", summary.SegmentCount)
	}
	if math.Abs(summary.TotalLength-10) > 1e-10 {
		t.Errorf("TotalLength: expected 10, got %v", summary.TotalLength)
	}
	if math.Abs(summary.MinLength-3) > 1e-10 {
		t.Errorf("MinLength: expected 3, got %v", summary.MinLength)
	}
	if math.Abs(summary.MaxLength-7) > 1e-10 {
		t.Errorf("MaxLength: expected 7, got %v", summary.MaxLength)
	}
	if math.Abs(summary.MeanLength-5) > 1e-10 {
		t.Errorf("MeanLength: expected 5, got %v", summary.MeanLength)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := sessionWith(t)

	summary, err := Summarize(s)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if len(summary.Lines) != 0 || summary.TotalLength != 0 || summary.MinLength != 0 {
		t.Errorf("empty summary not zeroed: %+v", summary)
	}
}

func TestLongestLines(t *testing.T) {
	s := sessionWith(t,
		[]geometry.Point{geometry.NewPoint(0, 0), geometry.NewPoint(10, 0)},
		[]geometry.Point{geometry.NewPoint(0, 0), geometry.NewPoint(50, 0)},
		[]geometry.Point{geometry.NewPoint(0, 0), geometry.NewPoint(30, 0)},
	)

	summary, err := Summarize(s)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	longest := LongestLines(summary, 2)
	if len(longest) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(longest))
	}
	if longest[0].Index != 2 || longest[1].Index != 3 {
		t.Errorf("wrong order: got #%d, #%d", longest[0].Index, longest[1].Index)
	}
}

func TestFormatReport(t *testing.T) {
	s := sessionWith(t,
		[]geometry.Point{geometry.NewPoint(0, 0), geometry.NewPoint(30, 0), geometry.NewPoint(30, 40)},
	)

	summary, err := Summarize(s)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	report := FormatReport(summary, units.Metric)
	for _, want := range []string{"Measurements: 1", "7.00 m", "2 segments", "70.0 px", "Total: 7.00 m"} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
}
