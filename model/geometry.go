package model

import "math"

// Rect is an axis-aligned rectangle in page coordinates. Coordinates follow
// the renderer convention: X increases left to right, Y increases top to
// bottom, so (X0, Y0) is the top-left corner and (X1, Y1) the bottom-right.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// NewRect creates a rectangle from two corner coordinates, normalizing
// the corners so that X0 <= X1 and Y0 <= Y1.
func NewRect(x0, y0, x1, y1 float64) Rect {
	return Rect{
		X0: math.Min(x0, x1),
		Y0: math.Min(y0, y1),
		X1: math.Max(x0, x1),
		Y1: math.Max(y0, y1),
	}
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		X0: math.Min(r.X0, other.X0),
		Y0: math.Min(r.Y0, other.Y0),
		X1: math.Max(r.X1, other.X1),
		Y1: math.Max(r.Y1, other.Y1),
	}
}

// Intersects reports whether r and other overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X0 < other.X1 && other.X0 < r.X1 &&
		r.Y0 < other.Y1 && other.Y0 < r.Y1
}

// IsZero reports whether the rectangle is the zero value.
func (r Rect) IsZero() bool {
	return r == Rect{}
}

// GapTo returns the vertical whitespace between r and a rectangle below it.
// It is zero when other does not start below r's bottom edge.
func (r Rect) GapTo(other Rect) float64 {
	if r.Y1 < other.Y0 {
		return other.Y0 - r.Y1
	}
	return 0
}
