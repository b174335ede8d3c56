package geometry

import (
	"math"
	"testing"
)

func TestPointAdd(t *testing.T) {
	p1 := NewPoint(1, 2)
	p2 := NewPoint(4, 5)
	result := p1.Add(p2)

	expected := NewPoint(5, 7)
	if result != expected {
		t.Errorf("Add failed: expected %v, got %v", expected, result)
	}
}

func TestPointSub(t *testing.T) {
	p1 := NewPoint(5, 7)
	p2 := NewPoint(1, 2)
	result := p1.Sub(p2)

	expected := NewPoint(4, 5)
	if result != expected {
		t.Errorf("Sub failed: expected %v, got %v", expected, result)
	}
}

func TestPointMul(t *testing.T) {
	p := NewPoint(2, -3)
	result := p.Mul(2.5)

	expected := NewPoint(5, -7.5)
	if result != expected {
		t.Errorf("Mul failed: expected %v, got %v", expected, result)
	}
}

func TestPointLength(t *testing.T) {
	p := NewPoint(3, 4)
	length := p.Length()

	expected := 5.0
	if math.Abs(length-expected) > 1e-10 {
		t.Errorf("Length failed: expected %v, got %v", expected, length)
	}
}

func TestPointDistance(t *testing.T) {
	p1 := NewPoint(0, 0)
	p2 := NewPoint(3, 4)
	distance := p1.Distance(p2)

	expected := 5.0
	if math.Abs(distance-expected) > 1e-10 {
		t.Errorf("Distance failed: expected %v, got %v", expected, distance)
	}
}

func TestPointMidpoint(t *testing.T) {
	p1 := NewPoint(0, 0)
	p2 := NewPoint(10, 4)
	result := p1.Midpoint(p2)

	expected := NewPoint(5, 2)
	if result != expected {
		t.Errorf("Midpoint failed: expected %v, got %v", expected, result)
	}
}

func TestPolylineLength(t *testing.T) {
	points := []Point{
		NewPoint(0, 0),
		NewPoint(3, 0),
		NewPoint(3, 4),
	}
	length := PolylineLength(points)

	// Sum of segment lengths (3 + 4), not the direct distance (5).
	expected := 7.0
	if math.Abs(length-expected) > 1e-10 {
		t.Errorf("PolylineLength failed: expected %v, got %v", expected, length)
	}
}

func TestPolylineLengthDegenerate(t *testing.T) {
	if length := PolylineLength(nil); length != 0 {
		t.Errorf("PolylineLength of empty path: expected 0, got %v", length)
	}
	if length := PolylineLength([]Point{NewPoint(5, 5)}); length != 0 {
		t.Errorf("PolylineLength of single point: expected 0, got %v", length)
	}
}

func TestPolylineLengthCoincidentPoints(t *testing.T) {
	points := []Point{
		NewPoint(0, 0),
		NewPoint(0, 0),
		NewPoint(6, 8),
	}
	length := PolylineLength(points)

	// A zero-length segment contributes nothing.
	expected := 10.0
	if math.Abs(length-expected) > 1e-10 {
		t.Errorf("PolylineLength failed: expected %v, got %v", expected, length)
	}
}
