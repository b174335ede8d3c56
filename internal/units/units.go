// Package units defines the unit systems a calibration can be entered in and
// the display formatting for measured lengths. The unit system is a display
// choice only: switching systems never reinterprets the real-world length the
// user entered at calibration time.
package units

import "fmt"

// System identifies the unit system used to display real-world lengths
type System int

const (
	Metric System = iota
	Imperial
)

// Label returns the display label for the system
func (s System) Label() string {
	switch s {
	case Imperial:
		return "ft"
	default:
		return "m"
	}
}

// String returns the system name
func (s System) String() string {
	switch s {
	case Imperial:
		return "imperial"
	default:
		return "metric"
	}
}

// Parse converts a system name ("metric" or "imperial") into a System
func Parse(name string) (System, error) {
	switch name {
	case "metric":
		return Metric, nil
	case "imperial":
		return Imperial, nil
	default:
		return Metric, fmt.Errorf("unknown unit system %q (expected metric or imperial)", name)
	}
}

// FormatLength formats a real-world length for display, e.g. "12.34 ft"
func FormatLength(value float64, sys System) string {
	return fmt.Sprintf("%.2f %s", value, sys.Label())
}

// FormatPixels formats a raw pixel length for display when no calibration is
// set, e.g. "153.2 px"
func FormatPixels(value float64) string {
	return fmt.Sprintf("%.1f px", value)
}
