package app

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/jackgaston/digital-blueprint-material-takeoff-tool/internal/controller"
	"github.com/jackgaston/digital-blueprint-material-takeoff-tool/internal/units"
	"github.com/jackgaston/digital-blueprint-material-takeoff-tool/pkg/geometry"
	"github.com/jackgaston/digital-blueprint-material-takeoff-tool/pkg/takeoff"
)

func (a *App) buildUI() {
	a.page = newPageCanvas(a)
	a.statusLabel = widget.NewLabel("No blueprint loaded")
	a.resultsList = widget.NewLabel("")

	openButton := widget.NewButton("Open Blueprint", func() {
		a.showFileDialog()
	})

	calibrateButton := widget.NewButton("Calibrate Scale", func() {
		if err := a.ctrl.StartCalibration(); err != nil {
			a.reportError(err)
			return
		}
		a.refresh()
	})

	measureButton := widget.NewButton("Measure", func() {
		if err := a.ctrl.StartMeasurement(); err != nil {
			a.reportError(err)
			return
		}
		a.refresh()
	})

	finishButton := widget.NewButton("Finish Path", func() {
		a.handleFinish()
	})

	cancelButton := widget.NewButton("Cancel", func() {
		a.ctrl.CancelMode()
		a.refresh()
	})

	clearButton := widget.NewButton("Clear Measurements", func() {
		a.ctrl.Session().ClearAll()
		a.refresh()
	})

	zoomInButton := widget.NewButton("Zoom +", func() { a.zoomIn() })
	zoomOutButton := widget.NewButton("Zoom -", func() { a.zoomOut() })

	unitSelect := widget.NewSelect([]string{"metric", "imperial"}, func(name string) {
		sys, err := units.Parse(name)
		if err != nil {
			return
		}
		a.ctrl.SetUnit(sys)
	})
	unitSelect.SetSelected(a.cfg.Units)

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Open a blueprint and calibrate the scale first\n" +
			"• Calibrate: click two points of known distance,\n" +
			"  then enter their real-world length\n" +
			"• Measure: click the corners of the path,\n" +
			"  double-click or press Finish to complete\n" +
			"• Cancel aborts the current mode",
	)
	instructions.Wrapping = fyne.TextWrapWord

	sidePanel := container.NewVBox(
		widget.NewLabel("Takeoff:"),
		widget.NewSeparator(),
		a.resultsList,
		widget.NewSeparator(),
		widget.NewLabel("Display Units:"),
		unitSelect,
		widget.NewSeparator(),
		instructions,
		widget.NewSeparator(),
		openButton,
		calibrateButton,
		measureButton,
		finishButton,
		cancelButton,
		clearButton,
		container.NewHBox(zoomInButton, zoomOutButton),
	)

	sideScroll := container.NewVScroll(sidePanel)
	sideScroll.SetMinSize(fyne.NewSize(320, 0))

	pageScroll := container.NewScroll(a.page)

	content := container.NewBorder(
		nil,           // top
		a.statusLabel, // bottom
		nil,           // left
		sideScroll,    // right
		pageScroll,    // center
	)

	a.window.SetContent(content)
}

func (a *App) showFileDialog() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		a.loadBlueprint(reader.URI().Path())
	}, a.window)
}

// handleClick forwards a tap on the page to the controller
func (a *App) handleClick(screen geometry.Point) {
	if err := a.ctrl.Click(screen); err != nil {
		// An idle click is not an error worth a dialog; everything else is.
		if err != controller.ErrIdle {
			a.reportError(err)
		}
		return
	}
	a.refresh()
}

// handleFinish completes the in-progress measurement
func (a *App) handleFinish() {
	if a.ctrl.Mode() != controller.ModeMeasuring {
		return
	}
	if _, err := a.ctrl.FinishMeasurement(); err != nil {
		a.reportError(err)
		return
	}
	a.refresh()
}

func (a *App) reportError(err error) {
	dialog.ShowError(err, a.window)
}

// refresh redraws the overlay and side panel from the current state. Pure
// read of controller state; called after every handled event.
func (a *App) refresh() {
	ov := a.ctrl.Overlay()

	a.page.layoutPage()
	a.page.redrawOverlay(ov)
	a.statusLabel.SetText(a.statusText(ov))
	a.resultsList.SetText(a.resultsText())
}

func (a *App) statusText(ov controller.Overlay) string {
	if a.blueprint == nil {
		return "No blueprint loaded"
	}

	scale := "uncalibrated"
	if cal, ok := a.ctrl.Calibration(); ok {
		scale = fmt.Sprintf("%.2f px per %s", cal.PixelsPerUnit(), cal.Unit.Label())
	}

	switch ov.Mode {
	case controller.ModeCalibrating:
		return fmt.Sprintf("Calibrating: %d of 2 points placed | %s", len(ov.CalibrationPoints), scale)
	case controller.ModeMeasuring:
		return fmt.Sprintf("Measuring: %d points, %s | %s", len(ov.ActivePoints), ov.ActiveLabel, scale)
	default:
		return fmt.Sprintf("Zoom %.0f%% | %s", a.zoom*100, scale)
	}
}

func (a *App) resultsText() string {
	cal, ok := a.ctrl.Calibration()
	if !ok {
		return "Calibrate the scale to begin."
	}

	summary, err := takeoff.Summarize(a.ctrl.Session())
	if err != nil {
		return fmt.Sprintf("Takeoff unavailable: %v", err)
	}
	if len(summary.Lines) == 0 {
		return "No measurements yet."
	}
	return takeoff.FormatReport(summary, cal.Unit)
}
