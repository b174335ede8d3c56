// Package controller owns the interaction state of the takeoff tool: which
// mode is active, how pointer events are routed, and what the overlay has to
// draw. All session state (calibration, measurements, mode) is mutated only
// through the controller, from the UI event loop, one event at a time.
package controller

import (
	"errors"

	"github.com/jackgaston/digital-blueprint-material-takeoff-tool/internal/calibrate"
	"github.com/jackgaston/digital-blueprint-material-takeoff-tool/internal/measure"
	"github.com/jackgaston/digital-blueprint-material-takeoff-tool/internal/units"
	"github.com/jackgaston/digital-blueprint-material-takeoff-tool/pkg/geometry"
	"github.com/jackgaston/digital-blueprint-material-takeoff-tool/pkg/transform"
)

var (
	// ErrBusy is returned when a mode change is requested while another
	// non-idle mode is active. Modes are explicit toggles: the active one
	// must be finished or cancelled first.
	ErrBusy = errors.New("another interaction mode is active")

	// ErrIdle is returned when a pointer click arrives in idle mode
	ErrIdle = errors.New("no interaction mode active")
)

// Mode is the mutually exclusive interaction state
type Mode int

const (
	ModeIdle Mode = iota
	ModeCalibrating
	ModeMeasuring
)

// String returns the mode name
func (m Mode) String() string {
	switch m {
	case ModeCalibrating:
		return "calibrating"
	case ModeMeasuring:
		return "measuring"
	default:
		return "idle"
	}
}

// Controller routes user input to the calibrator or the measurement session
// depending on the active mode. Exactly one mode is active at any time.
type Controller struct {
	mapper     *transform.Mapper
	calibrator *calibrate.Calibrator
	session    *measure.Session
	mode       Mode
	unit       units.System

	// OnLengthRequest is invoked when the second calibration point lands and
	// the user must be prompted for the real-world distance.
	OnLengthRequest func()
}

// New creates an idle controller with an uncalibrated document
func New(unit units.System) *Controller {
	cal := calibrate.NewCalibrator()
	return &Controller{
		mapper:     transform.NewMapper(),
		calibrator: cal,
		session:    measure.NewSession(cal),
		unit:       unit,
	}
}

// Mode returns the active interaction mode
func (c *Controller) Mode() Mode {
	return c.mode
}

// Mapper returns the coordinate mapper; the renderer updates its viewport on
// every pan, zoom, or page change.
func (c *Controller) Mapper() *transform.Mapper {
	return c.mapper
}

// SetUnit changes the display unit for future calibrations. Purely a display
// choice; a committed calibration keeps the unit it was entered in.
func (c *Controller) SetUnit(unit units.System) {
	c.unit = unit
}

// StartCalibration switches from idle into calibration mode
func (c *Controller) StartCalibration() error {
	if c.mode != ModeIdle {
		return ErrBusy
	}
	c.calibrator.Begin()
	c.mode = ModeCalibrating
	return nil
}

// StartMeasurement switches from idle into measuring mode. Blocked while
// calibrating and while no calibration is committed.
func (c *Controller) StartMeasurement() error {
	if c.mode != ModeIdle {
		return ErrBusy
	}
	if err := c.session.Start(); err != nil {
		return err
	}
	c.mode = ModeMeasuring
	return nil
}

// Click handles a pointer click at a screen position. The click is consumed
// by exactly one of the calibrator or the session, never both.
func (c *Controller) Click(screen geometry.Point) error {
	doc, err := c.mapper.ToDocument(screen)
	if err != nil {
		return err
	}

	switch c.mode {
	case ModeCalibrating:
		ready, err := c.calibrator.AddPoint(doc)
		if err != nil {
			return err
		}
		if ready && c.OnLengthRequest != nil {
			c.OnLengthRequest()
		}
		return nil
	case ModeMeasuring:
		return c.session.AddPoint(doc)
	default:
		return ErrIdle
	}
}

// ConfirmLength commits the calibration with the entered real-world length
// and returns to idle. On a validation error the controller stays in
// calibration mode so the user can be re-prompted.
func (c *Controller) ConfirmLength(realDistance float64) error {
	if err := c.calibrator.Commit(realDistance, c.unit); err != nil {
		return err
	}
	c.mode = ModeIdle
	return nil
}

// FinishMeasurement finalizes the in-progress path and returns to idle. On
// ErrInsufficientPoints the mode is kept so the user can place more points.
func (c *Controller) FinishMeasurement() (measure.Measurement, error) {
	m, err := c.session.Finish()
	if err != nil {
		return measure.Measurement{}, err
	}
	c.mode = ModeIdle
	return m, nil
}

// CancelMode aborts the active mode and returns to idle. A committed
// calibration survives a calibration cancel; an in-progress path does not
// survive a measuring cancel.
func (c *Controller) CancelMode() {
	switch c.mode {
	case ModeCalibrating:
		c.calibrator.Cancel()
	case ModeMeasuring:
		c.session.Cancel()
	}
	c.mode = ModeIdle
}

// DocumentLoaded resets everything document-specific: scale, measurements,
// mode, and viewport. The scale must never silently carry over to another
// document.
func (c *Controller) DocumentLoaded() {
	c.calibrator.Reset()
	c.session.ClearAll()
	c.mapper.Clear()
	c.mode = ModeIdle
}

// Calibration returns the committed calibration, if any
func (c *Controller) Calibration() (calibrate.Calibration, bool) {
	return c.calibrator.Current()
}

// Session returns the measurement session for read access
func (c *Controller) Session() *measure.Session {
	return c.session
}
