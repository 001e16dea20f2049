package layout

// Point represents an (X, Y) coordinate.
type Point struct {
	X, Y float64
}

// In returns true if the point is inside the given rectangle.
func (p Point) In(r Rect) bool {
	return r.Contains(p.X, p.Y)
}
