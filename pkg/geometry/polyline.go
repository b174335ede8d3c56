package geometry

// PolylineLength returns the total length of the path obtained by connecting
// the points in order. The length is always recomputed from the points so the
// coordinates remain the single source of truth. Paths with fewer than two
// points have length zero.
func PolylineLength(points []Point) float64 {
	total := 0.0
	for i := 1; i < len(points); i++ {
		total += points[i-1].Distance(points[i])
	}
	return total
}
