package transform

import (
	"errors"

	"github.com/jackgaston/digital-blueprint-material-takeoff-tool/pkg/geometry"
)

// ErrNoViewport is returned when a coordinate conversion is requested before
// any document page is mounted on screen.
var ErrNoViewport = errors.New("no viewport: document not mounted")

// Viewport describes where the rendered page sits on screen: the screen
// position of the page's top-left corner and the zoom factor applied to it.
type Viewport struct {
	Origin geometry.Point
	Zoom   float64
}

// Mapper converts between screen space and document space for the currently
// displayed page. It must be updated whenever the page, zoom, or container
// geometry changes so that overlays stay aligned with the page.
type Mapper struct {
	viewport Viewport
	mounted  bool
}

// NewMapper creates a mapper with no mounted viewport
func NewMapper() *Mapper {
	return &Mapper{}
}

// SetViewport updates the current page geometry
func (m *Mapper) SetViewport(vp Viewport) {
	m.viewport = vp
	m.mounted = true
}

// Clear unmounts the viewport, until a new page geometry arrives conversions fail
func (m *Mapper) Clear() {
	m.viewport = Viewport{}
	m.mounted = false
}

// Viewport returns the current viewport and whether one is mounted
func (m *Mapper) Viewport() (Viewport, bool) {
	return m.viewport, m.mounted
}

// ToDocument converts a raw pointer position in screen space into document
// space, compensating for the page's on-screen offset and zoom. Callers must
// treat an error as "position unknown" and skip the event rather than use a
// bogus point.
func (m *Mapper) ToDocument(screen geometry.Point) (geometry.Point, error) {
	if !m.mounted {
		return geometry.Point{}, ErrNoViewport
	}
	return screen.Sub(m.viewport.Origin).Mul(1 / m.viewport.Zoom), nil
}

// ToScreen converts a document-space point back to screen space. It is the
// exact inverse of ToDocument.
func (m *Mapper) ToScreen(doc geometry.Point) (geometry.Point, error) {
	if !m.mounted {
		return geometry.Point{}, ErrNoViewport
	}
	return doc.Mul(m.viewport.Zoom).Add(m.viewport.Origin), nil
}
