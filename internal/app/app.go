// Package app is the fyne viewer for the takeoff tool: it renders the loaded
// blueprint page, routes pointer input to the interaction controller, and
// draws the measurement overlay.
package app

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/jackgaston/digital-blueprint-material-takeoff-tool/internal/config"
	"github.com/jackgaston/digital-blueprint-material-takeoff-tool/internal/controller"
	"github.com/jackgaston/digital-blueprint-material-takeoff-tool/internal/document"
	"github.com/jackgaston/digital-blueprint-material-takeoff-tool/internal/units"
	"github.com/jackgaston/digital-blueprint-material-takeoff-tool/pkg/transform"
	"github.com/jackgaston/digital-blueprint-material-takeoff-tool/pkg/watcher"
)

// App holds the viewer state
type App struct {
	window fyne.Window
	cfg    config.Config
	ctrl   *controller.Controller

	blueprint *document.Blueprint
	zoom      float64
	watch     *watcher.BlueprintWatcher

	page        *pageCanvas
	statusLabel *widget.Label
	resultsList *widget.Label
}

// Run opens the viewer, loading the given blueprint if non-empty
func Run(cfg config.Config, path string) {
	a := fyneapp.New()
	w := a.NewWindow("Blueprint Takeoff")

	sys, err := units.Parse(cfg.Units)
	if err != nil {
		sys = units.Metric
	}

	viewer := &App{
		window: w,
		cfg:    cfg,
		ctrl:   controller.New(sys),
		zoom:   1.0,
	}
	viewer.ctrl.OnLengthRequest = viewer.promptForLength

	viewer.buildUI()

	if path != "" {
		viewer.loadBlueprint(path)
	}

	w.Resize(fyne.NewSize(1400, 900))
	w.ShowAndRun()
}

// loadBlueprint replaces the displayed document and resets all
// document-specific state: scale, measurements, and mode.
func (a *App) loadBlueprint(path string) {
	bp, err := document.Load(path)
	if err != nil {
		dialog.ShowError(fmt.Errorf("failed to load blueprint: %w", err), a.window)
		return
	}
	if bp.Kind != document.KindRaster {
		dialog.ShowError(fmt.Errorf("the viewer displays raster blueprints only; use 'takeoff info' for PDF pages"), a.window)
		return
	}

	a.blueprint = bp
	a.zoom = 1.0
	a.ctrl.DocumentLoaded()
	a.mountViewport()
	a.page.setImage(bp.Pages[0].Image)

	if a.cfg.Viewer.AutoReload {
		a.watchBlueprint(path)
	}

	a.refresh()
}

// mountViewport publishes the current page geometry to the coordinate mapper.
// Screen space is the page widget's local coordinate system, so the origin is
// the widget's top-left corner.
func (a *App) mountViewport() {
	a.ctrl.Mapper().SetViewport(transform.Viewport{Zoom: a.zoom})
}

// watchBlueprint reloads the blueprint when the file changes on disk. One
// watcher is shared across loads; re-watching moves it to the new file.
func (a *App) watchBlueprint(path string) {
	if a.watch == nil {
		bw, err := watcher.NewBlueprintWatcher(500 * time.Millisecond)
		if err != nil {
			fmt.Printf("Warning: failed to set up file watching: %v\n", err)
			return
		}
		bw.Start()
		a.watch = bw
	}

	if err := a.watch.Watch(path, func(changed string) {
		fyne.Do(func() {
			a.loadBlueprint(changed)
		})
	}); err != nil {
		fmt.Printf("Warning: failed to watch %s: %v\n", path, err)
	}
}

func (a *App) zoomIn() {
	a.setZoom(a.zoom * a.cfg.Viewer.ZoomStep)
}

func (a *App) zoomOut() {
	a.setZoom(a.zoom / a.cfg.Viewer.ZoomStep)
}

func (a *App) setZoom(zoom float64) {
	if zoom < a.cfg.Viewer.MinZoom {
		zoom = a.cfg.Viewer.MinZoom
	}
	if zoom > a.cfg.Viewer.MaxZoom {
		zoom = a.cfg.Viewer.MaxZoom
	}
	a.zoom = zoom

	if a.blueprint != nil {
		a.mountViewport()
	}
	a.refresh()
}
