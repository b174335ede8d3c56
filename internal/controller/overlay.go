package controller

import (
	"github.com/jackgaston/digital-blueprint-material-takeoff-tool/internal/units"
	"github.com/jackgaston/digital-blueprint-material-takeoff-tool/pkg/geometry"
)

// OverlayMeasurement is one completed measurement prepared for drawing
type OverlayMeasurement struct {
	Points []geometry.Point
	Label  string
}

// Overlay is a pure snapshot of everything the renderer draws on top of the
// page: completed measurements with formatted labels, the in-progress path,
// and the pending calibration points.
type Overlay struct {
	Mode              Mode
	Calibrated        bool
	Measurements      []OverlayMeasurement
	ActivePoints      []geometry.Point
	ActiveLabel       string
	CalibrationPoints []geometry.Point
}

// Overlay captures the current state for rendering. Labels show the real
// length in the calibration's unit, or raw pixels while no scale is set.
func (c *Controller) Overlay() Overlay {
	ov := Overlay{
		Mode:              c.mode,
		Calibrated:        c.calibrator.Calibrated(),
		CalibrationPoints: c.calibrator.PendingPoints(),
	}

	cal, _ := c.calibrator.Current()
	for _, m := range c.session.Completed() {
		label := units.FormatPixels(m.PixelLength())
		if real, err := c.session.RealLengthOf(m); err == nil {
			label = units.FormatLength(real, cal.Unit)
		}
		ov.Measurements = append(ov.Measurements, OverlayMeasurement{
			Points: m.Points(),
			Label:  label,
		})
	}

	if path, ok := c.session.Active(); ok {
		ov.ActivePoints = path.Points()
		ov.ActiveLabel = units.FormatPixels(path.Length())
		if real, err := c.calibrator.ToRealDistance(path.Length()); err == nil {
			ov.ActiveLabel = units.FormatLength(real, cal.Unit)
		}
	}

	return ov
}
