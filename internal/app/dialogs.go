package app

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/jackgaston/digital-blueprint-material-takeoff-tool/internal/calibrate"
	"github.com/jackgaston/digital-blueprint-material-takeoff-tool/internal/controller"
)

// promptForLength asks for the real-world distance between the two calibration
// points. Raised by the controller as soon as the second point lands.
func (a *App) promptForLength() {
	entry := widget.NewEntry()
	entry.SetPlaceHolder("e.g. 10.5")

	items := []*widget.FormItem{
		widget.NewFormItem("Real-world length", entry),
	}

	dialog.ShowForm("Calibrate Scale", "Set Scale", "Cancel", items, func(confirmed bool) {
		if !confirmed {
			a.ctrl.CancelMode()
			a.refresh()
			return
		}

		value, err := strconv.ParseFloat(strings.TrimSpace(entry.Text), 64)
		if err != nil {
			a.retryLength(fmt.Errorf("%q is not a number", entry.Text))
			return
		}
		if err := a.ctrl.ConfirmLength(value); err != nil {
			if err == calibrate.ErrInvalidLength {
				a.retryLength(err)
				return
			}
			// Coincident points cannot be fixed by a different length;
			// the user must place the points again.
			a.ctrl.CancelMode()
			a.reportError(err)
			a.refresh()
			return
		}
		a.refresh()
	}, a.window)
}

// retryLength re-prompts after a rejected length. The calibration points are
// still pending, so only the number needs re-entering.
func (a *App) retryLength(cause error) {
	dialog.ShowInformation("Invalid length", cause.Error(), a.window)
	if a.ctrl.Mode() == controller.ModeCalibrating {
		a.promptForLength()
	}
}
