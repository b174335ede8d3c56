// Package measure captures multi-segment measurement paths drawn over a
// blueprint and manages the set of completed measurements for one document.
package measure

import (
	"errors"

	"github.com/jackgaston/digital-blueprint-material-takeoff-tool/pkg/geometry"
)

var (
	// ErrInsufficientPoints is returned when a path with fewer than two
	// points is finalized.
	ErrInsufficientPoints = errors.New("measurement requires at least two points")

	// ErrNoActiveMeasurement is returned when a point is added while no
	// measurement is in progress.
	ErrNoActiveMeasurement = errors.New("no measurement in progress")
)

// Path accumulates the ordered points of one in-progress measurement.
// Coincident consecutive points are kept as entered; a zero-length segment
// contributes nothing to the total.
type Path struct {
	points []geometry.Point
}

// AddPoint appends a point to the path
func (p *Path) AddPoint(pt geometry.Point) {
	p.points = append(p.points, pt)
}

// Points returns a copy of the points placed so far
func (p *Path) Points() []geometry.Point {
	out := make([]geometry.Point, len(p.points))
	copy(out, p.points)
	return out
}

// Length returns the cumulative length of the path in pixels, recomputed from
// the points on every call.
func (p *Path) Length() float64 {
	return geometry.PolylineLength(p.points)
}

// Finalize produces an immutable Measurement from the path. The path's points
// are left untouched on failure so the user can place another point and retry.
func (p *Path) Finalize() (Measurement, error) {
	if len(p.points) < 2 {
		return Measurement{}, ErrInsufficientPoints
	}
	points := make([]geometry.Point, len(p.points))
	copy(points, p.points)
	return Measurement{
		points:      points,
		pixelLength: geometry.PolylineLength(points),
	}, nil
}

// Reset clears all points
func (p *Path) Reset() {
	p.points = p.points[:0]
}

// Measurement is a finalized measurement path. The pixel length is derived
// from the points at finalization and re-deriving it from Points always
// reproduces the same value.
type Measurement struct {
	points      []geometry.Point
	pixelLength float64
}

// Points returns a copy of the measurement's points
func (m Measurement) Points() []geometry.Point {
	out := make([]geometry.Point, len(m.points))
	copy(out, m.points)
	return out
}

// PixelLength returns the total path length in pixels
func (m Measurement) PixelLength() float64 {
	return m.pixelLength
}
