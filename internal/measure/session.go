package measure

import (
	"github.com/jackgaston/digital-blueprint-material-takeoff-tool/internal/calibrate"
	"github.com/jackgaston/digital-blueprint-material-takeoff-tool/pkg/geometry"
)

// Scale converts pixel lengths into real-world lengths. Satisfied by
// calibrate.Calibrator.
type Scale interface {
	Calibrated() bool
	ToRealDistance(pixelLength float64) (float64, error)
}

// Session holds the completed measurements of one document plus at most one
// in-progress path. Real-world lengths are never stored: they are derived
// through the scale on every query, so re-calibrating retroactively changes
// the reported length of every completed measurement.
type Session struct {
	scale      Scale
	completed  []Measurement
	inProgress *Path
}

// NewSession creates an empty session converting through the given scale
func NewSession(scale Scale) *Session {
	return &Session{scale: scale}
}

// Start begins a new measurement path. Measuring without a committed
// calibration is disallowed.
func (s *Session) Start() error {
	if !s.scale.Calibrated() {
		return calibrate.ErrNoCalibration
	}
	s.inProgress = &Path{}
	return nil
}

// AddPoint forwards a point to the in-progress path
func (s *Session) AddPoint(p geometry.Point) error {
	if s.inProgress == nil {
		return ErrNoActiveMeasurement
	}
	s.inProgress.AddPoint(p)
	return nil
}

// Finish finalizes the in-progress path into a Measurement and appends it to
// the completed list. On ErrInsufficientPoints the path stays active so the
// user can keep placing points.
func (s *Session) Finish() (Measurement, error) {
	if s.inProgress == nil {
		return Measurement{}, ErrNoActiveMeasurement
	}
	m, err := s.inProgress.Finalize()
	if err != nil {
		return Measurement{}, err
	}
	s.completed = append(s.completed, m)
	s.inProgress = nil
	return m, nil
}

// Cancel discards the in-progress path without recording anything
func (s *Session) Cancel() {
	s.inProgress = nil
}

// RealLengthOf converts a measurement's pixel length into real-world units
// using the current scale. Recomputed on every call.
func (s *Session) RealLengthOf(m Measurement) (float64, error) {
	return s.scale.ToRealDistance(m.PixelLength())
}

// ClearAll drops all completed measurements and any in-progress path. Called
// when a new document is loaded.
func (s *Session) ClearAll() {
	s.completed = nil
	s.inProgress = nil
}

// Completed returns the completed measurements in the order they were made
func (s *Session) Completed() []Measurement {
	out := make([]Measurement, len(s.completed))
	copy(out, s.completed)
	return out
}

// Active returns the in-progress path, if any
func (s *Session) Active() (*Path, bool) {
	return s.inProgress, s.inProgress != nil
}

// InProgressLength returns the running pixel length of the in-progress path,
// or zero when none is active.
func (s *Session) InProgressLength() float64 {
	if s.inProgress == nil {
		return 0
	}
	return s.inProgress.Length()
}
