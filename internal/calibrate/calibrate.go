// Package calibrate derives the pixels-per-unit scale of a blueprint from two
// user-marked points of known real-world distance. The scale is specific to
// the loaded document and never carries over to another one.
package calibrate

import (
	"errors"
	"math"

	"github.com/jackgaston/digital-blueprint-material-takeoff-tool/internal/units"
	"github.com/jackgaston/digital-blueprint-material-takeoff-tool/pkg/geometry"
)

var (
	// ErrIncompletePoints is returned when a commit is attempted with fewer
	// than two calibration points captured.
	ErrIncompletePoints = errors.New("calibration requires two points")

	// ErrInvalidLength is returned when the entered real-world length is not
	// a positive finite number.
	ErrInvalidLength = errors.New("real-world length must be a positive number")

	// ErrDegenerateCalibration is returned when the two calibration points
	// coincide, which would produce an unusable scale.
	ErrDegenerateCalibration = errors.New("calibration points coincide")

	// ErrNoCalibration is returned when a real-world distance is requested
	// before a scale has been committed.
	ErrNoCalibration = errors.New("no calibration set")

	// ErrTooManyPoints is returned when a point is added while two points are
	// already pending.
	ErrTooManyPoints = errors.New("calibration already has two points")
)

// Calibration is a committed pixel-to-real-world scale. Both distances are
// strictly positive.
type Calibration struct {
	PixelDistance float64
	RealDistance  float64
	Unit          units.System
}

// PixelsPerUnit returns the scale ratio, always finite and positive
func (c Calibration) PixelsPerUnit() float64 {
	return c.PixelDistance / c.RealDistance
}

// Calibrator holds at most one committed Calibration plus the points captured
// during an in-progress calibration. All methods are called from the UI event
// loop; the calibrator does no locking of its own.
type Calibrator struct {
	current   Calibration
	committed bool
	pending   []geometry.Point
}

// NewCalibrator creates an uncalibrated Calibrator
func NewCalibrator() *Calibrator {
	return &Calibrator{}
}

// Begin starts collecting calibration points. Any half-captured points from a
// previous attempt are dropped; a committed Calibration is kept until a new
// one is committed over it.
func (c *Calibrator) Begin() {
	c.pending = c.pending[:0]
}

// AddPoint captures one calibration endpoint. ready reports that the second
// point was just captured, at which moment the caller must prompt the user for
// the real-world distance between the two points.
func (c *Calibrator) AddPoint(p geometry.Point) (ready bool, err error) {
	if len(c.pending) >= 2 {
		return false, ErrTooManyPoints
	}
	c.pending = append(c.pending, p)
	return len(c.pending) == 2, nil
}

// Commit derives the scale from the two pending points and the entered
// real-world distance, replacing any previous Calibration atomically. The
// pending points are cleared on success and kept on failure so the user can
// retry with a corrected length.
func (c *Calibrator) Commit(realDistance float64, unit units.System) error {
	if len(c.pending) != 2 {
		return ErrIncompletePoints
	}
	if realDistance <= 0 || math.IsInf(realDistance, 0) || math.IsNaN(realDistance) {
		return ErrInvalidLength
	}
	pixelDistance := c.pending[0].Distance(c.pending[1])
	if pixelDistance == 0 {
		return ErrDegenerateCalibration
	}

	c.current = Calibration{
		PixelDistance: pixelDistance,
		RealDistance:  realDistance,
		Unit:          unit,
	}
	c.committed = true
	c.pending = c.pending[:0]
	return nil
}

// Cancel discards the pending points without touching a committed Calibration
func (c *Calibrator) Cancel() {
	c.pending = c.pending[:0]
}

// Reset drops both the pending points and the committed Calibration. Called
// when a new document is loaded.
func (c *Calibrator) Reset() {
	c.pending = c.pending[:0]
	c.current = Calibration{}
	c.committed = false
}

// ToRealDistance converts a pixel length into real-world units using the
// committed scale. Callers must treat ErrNoCalibration as "distance unknown",
// never as zero.
func (c *Calibrator) ToRealDistance(pixelLength float64) (float64, error) {
	if !c.committed {
		return 0, ErrNoCalibration
	}
	return pixelLength / c.current.PixelsPerUnit(), nil
}

// Calibrated reports whether a Calibration has been committed
func (c *Calibrator) Calibrated() bool {
	return c.committed
}

// Current returns the committed Calibration, if any
func (c *Calibrator) Current() (Calibration, bool) {
	return c.current, c.committed
}

// PendingPoints returns a copy of the points captured so far (0, 1, or 2),
// used by the overlay for visual feedback.
func (c *Calibrator) PendingPoints() []geometry.Point {
	out := make([]geometry.Point, len(c.pending))
	copy(out, c.pending)
	return out
}
