// Package takeoff aggregates completed measurements into the quantity summary
// a material takeoff needs.
package takeoff

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/jackgaston/digital-blueprint-material-takeoff-tool/internal/measure"
	"github.com/jackgaston/digital-blueprint-material-takeoff-tool/internal/units"
)

// Line is one measurement prepared for reporting
type Line struct {
	Index       int
	Segments    int
	PixelLength float64
	RealLength  float64
}

// Summary contains aggregate statistics over a set of measurements
type Summary struct {
	Lines        []Line
	SegmentCount int
	TotalLength  float64
	MinLength    float64
	MaxLength    float64
	MeanLength   float64
}

// Summarize computes a takeoff summary over the session's completed
// measurements. Real lengths are derived through the session's scale, so the
// summary always reflects the current calibration.
func Summarize(session *measure.Session) (*Summary, error) {
	completed := session.Completed()

	s := &Summary{
		MinLength: math.MaxFloat64,
	}

	for i, m := range completed {
		real, err := session.RealLengthOf(m)
		if err != nil {
			return nil, fmt.Errorf("measurement %d: %w", i+1, err)
		}

		segments := len(m.Points()) - 1
		s.Lines = append(s.Lines, Line{
			Index:       i + 1,
			Segments:    segments,
			PixelLength: m.PixelLength(),
			RealLength:  real,
		})
		s.SegmentCount += segments
		s.TotalLength += real
		if real < s.MinLength {
			s.MinLength = real
		}
		if real > s.MaxLength {
			s.MaxLength = real
		}
	}

	if len(s.Lines) == 0 {
		s.MinLength = 0
	} else {
		s.MeanLength = s.TotalLength / float64(len(s.Lines))
	}
	return s, nil
}

// LongestLines returns the N longest lines of the summary
func LongestLines(s *Summary, count int) []Line {
	lines := make([]Line, len(s.Lines))
	copy(lines, s.Lines)

	sort.Slice(lines, func(i, j int) bool {
		return lines[i].RealLength > lines[j].RealLength
	})

	if count > len(lines) {
		count = len(lines)
	}
	return lines[:count]
}

// FormatReport renders the summary as the text report printed by the CLI
func FormatReport(s *Summary, unit units.System) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Measurements: %d\n", len(s.Lines))
	fmt.Fprintf(&b, "Segments: %d\n\n", s.SegmentCount)

	for _, line := range s.Lines {
		fmt.Fprintf(&b, "  #%d: %s (%d segments, %s)\n",
			line.Index,
			units.FormatLength(line.RealLength, unit),
			line.Segments,
			units.FormatPixels(line.PixelLength))
	}

	if len(s.Lines) > 0 {
		fmt.Fprintf(&b, "\nTotal: %s\n", units.FormatLength(s.TotalLength, unit))
		fmt.Fprintf(&b, "Min: %s  Max: %s  Mean: %s\n",
			units.FormatLength(s.MinLength, unit),
			units.FormatLength(s.MaxLength, unit),
			units.FormatLength(s.MeanLength, unit))
	}
	return b.String()
}
