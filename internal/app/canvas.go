package app

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/jackgaston/digital-blueprint-material-takeoff-tool/internal/controller"
	"github.com/jackgaston/digital-blueprint-material-takeoff-tool/pkg/geometry"
)

var (
	measurementColor = color.NRGBA{R: 230, G: 60, B: 60, A: 255}
	activeColor      = color.NRGBA{R: 60, G: 120, B: 230, A: 255}
	calibrationColor = color.NRGBA{R: 240, G: 170, B: 40, A: 255}
	labelBackground  = color.NRGBA{R: 20, G: 20, B: 20, A: 220}
)

const markerRadius = 4

// pageCanvas displays the current blueprint page at the active zoom level and
// draws the measurement overlay on top of it. Tap positions are reported in
// the widget's local coordinates, which is the screen space the coordinate
// mapper is configured with.
type pageCanvas struct {
	widget.BaseWidget

	app     *App
	img     *canvas.Image
	overlay *fyne.Container
	content *fyne.Container
}

func newPageCanvas(app *App) *pageCanvas {
	pc := &pageCanvas{
		app:     app,
		img:     canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 1, 1))),
		overlay: container.NewWithoutLayout(),
	}
	pc.img.FillMode = canvas.ImageFillContain
	pc.img.ScaleMode = canvas.ImageScalePixels
	pc.content = container.NewWithoutLayout(pc.img, pc.overlay)
	pc.ExtendBaseWidget(pc)
	return pc
}

func (pc *pageCanvas) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(pc.content)
}

// setImage replaces the displayed page
func (pc *pageCanvas) setImage(img image.Image) {
	pc.img.Image = img
	pc.layoutPage()
}

// layoutPage sizes the page image for the active zoom level
func (pc *pageCanvas) layoutPage() {
	if pc.img.Image == nil {
		return
	}
	bounds := pc.img.Image.Bounds()
	w := float32(float64(bounds.Dx()) * pc.app.zoom)
	h := float32(float64(bounds.Dy()) * pc.app.zoom)
	pc.img.Resize(fyne.NewSize(w, h))
	pc.img.Move(fyne.NewPos(0, 0))
	pc.content.Resize(fyne.NewSize(w, h))
	pc.Refresh()
}

func (pc *pageCanvas) MinSize() fyne.Size {
	if pc.img.Image == nil {
		return fyne.NewSize(400, 300)
	}
	bounds := pc.img.Image.Bounds()
	return fyne.NewSize(
		float32(float64(bounds.Dx())*pc.app.zoom),
		float32(float64(bounds.Dy())*pc.app.zoom),
	)
}

// Tapped places a point in whichever mode is active
func (pc *pageCanvas) Tapped(ev *fyne.PointEvent) {
	pc.app.handleClick(geometry.NewPoint(float64(ev.Position.X), float64(ev.Position.Y)))
}

// DoubleTapped finishes the in-progress measurement
func (pc *pageCanvas) DoubleTapped(ev *fyne.PointEvent) {
	pc.app.handleFinish()
}

// redrawOverlay rebuilds the overlay objects from the controller snapshot
func (pc *pageCanvas) redrawOverlay(ov controller.Overlay) {
	pc.overlay.RemoveAll()

	for _, m := range ov.Measurements {
		pc.addPolyline(m.Points, m.Label, measurementColor)
	}
	if len(ov.ActivePoints) > 0 {
		pc.addPolyline(ov.ActivePoints, ov.ActiveLabel, activeColor)
	}
	for _, p := range ov.CalibrationPoints {
		pc.addMarker(p, calibrationColor)
	}

	pc.overlay.Refresh()
}

// addPolyline draws a measured path with endpoint markers and a length label
func (pc *pageCanvas) addPolyline(points []geometry.Point, label string, col color.Color) {
	screen := make([]geometry.Point, 0, len(points))
	for _, p := range points {
		sp, err := pc.app.ctrl.Mapper().ToScreen(p)
		if err != nil {
			return
		}
		screen = append(screen, sp)
	}

	for i := 1; i < len(screen); i++ {
		line := canvas.NewLine(col)
		line.StrokeWidth = 2
		line.Position1 = fyne.NewPos(float32(screen[i-1].X), float32(screen[i-1].Y))
		line.Position2 = fyne.NewPos(float32(screen[i].X), float32(screen[i].Y))
		pc.overlay.Add(line)
	}
	for _, sp := range screen {
		pc.addScreenMarker(sp, col)
	}

	if label != "" && len(screen) >= 2 {
		mid := screen[len(screen)-2].Midpoint(screen[len(screen)-1])
		pc.addLabel(mid, label, col)
	}
}

// addMarker draws a small circle at a document-space point
func (pc *pageCanvas) addMarker(p geometry.Point, col color.Color) {
	sp, err := pc.app.ctrl.Mapper().ToScreen(p)
	if err != nil {
		return
	}
	pc.addScreenMarker(sp, col)
}

func (pc *pageCanvas) addScreenMarker(sp geometry.Point, col color.Color) {
	circle := canvas.NewCircle(col)
	circle.Resize(fyne.NewSize(2*markerRadius, 2*markerRadius))
	circle.Move(fyne.NewPos(float32(sp.X)-markerRadius, float32(sp.Y)-markerRadius))
	pc.overlay.Add(circle)
}

// addLabel draws a length label with a dark backing so it stays readable over
// the page.
func (pc *pageCanvas) addLabel(at geometry.Point, text string, col color.Color) {
	label := canvas.NewText(text, col)
	label.TextSize = 13
	size := fyne.MeasureText(label.Text, label.TextSize, label.TextStyle)

	const padding = 3
	backing := canvas.NewRectangle(labelBackground)
	backing.Resize(fyne.NewSize(size.Width+2*padding, size.Height+2*padding))
	backing.Move(fyne.NewPos(float32(at.X)-size.Width/2-padding, float32(at.Y)-size.Height/2-padding))
	pc.overlay.Add(backing)

	label.Move(fyne.NewPos(float32(at.X)-size.Width/2, float32(at.Y)-size.Height/2))
	pc.overlay.Add(label)
}
