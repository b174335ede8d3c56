package transform

import (
	"errors"
	"math"
	"testing"

	"github.com/jackgaston/digital-blueprint-material-takeoff-tool/pkg/geometry"
)

func TestToDocument(t *testing.T) {
	m := NewMapper()
	m.SetViewport(Viewport{Origin: geometry.NewPoint(100, 50), Zoom: 2.0})

	doc, err := m.ToDocument(geometry.NewPoint(300, 250))
	if err != nil {
		t.Fatalf("ToDocument failed: %v", err)
	}

	expected := geometry.NewPoint(100, 100)
	if doc != expected {
		t.Errorf("ToDocument failed: expected %v, got %v", expected, doc)
	}
}

func TestToDocumentNoViewport(t *testing.T) {
	m := NewMapper()

	_, err := m.ToDocument(geometry.NewPoint(10, 10))
	if !errors.Is(err, ErrNoViewport) {
		t.Errorf("expected ErrNoViewport, got %v", err)
	}

	_, err = m.ToScreen(geometry.NewPoint(10, 10))
	if !errors.Is(err, ErrNoViewport) {
		t.Errorf("expected ErrNoViewport, got %v", err)
	}
}

func TestClearUnmountsViewport(t *testing.T) {
	m := NewMapper()
	m.SetViewport(Viewport{Origin: geometry.NewPoint(0, 0), Zoom: 1.0})
	m.Clear()

	if _, mounted := m.Viewport(); mounted {
		t.Error("Clear failed: viewport still mounted")
	}
	if _, err := m.ToDocument(geometry.NewPoint(1, 1)); !errors.Is(err, ErrNoViewport) {
		t.Errorf("expected ErrNoViewport after Clear, got %v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	m := NewMapper()

	screenPoints := []geometry.Point{
		geometry.NewPoint(0, 0),
		geometry.NewPoint(127.5, 33.25),
		geometry.NewPoint(1399, 899),
		geometry.NewPoint(-20, 640),
	}

	// Screen -> document -> screen must reproduce the input at every zoom
	// level so overlays stay pinned to the page.
	for zoom := 0.5; zoom <= 2.0; zoom += 0.25 {
		m.SetViewport(Viewport{Origin: geometry.NewPoint(42, -17), Zoom: zoom})
		for _, p := range screenPoints {
			doc, err := m.ToDocument(p)
			if err != nil {
				t.Fatalf("ToDocument failed at zoom %v: %v", zoom, err)
			}
			back, err := m.ToScreen(doc)
			if err != nil {
				t.Fatalf("ToScreen failed at zoom %v: %v", zoom, err)
			}
			if math.Abs(back.X-p.X) > 1e-9 || math.Abs(back.Y-p.Y) > 1e-9 {
				t.Errorf("round trip failed at zoom %v: expected %v, got %v", zoom, p, back)
			}
		}
	}
}
