package common

import "math"

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Intersects reports whether the two rectangles overlap on both axes.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// Origin returns the rectangle's top-left corner.
func (r Rect) Origin() Vec2 {
	return Vec2{X: r.X, Y: r.Y}
}

// MTV returns the minimum translation vector that moves r out of other.
// For disjoint rectangles it returns the zero vector. Otherwise it picks,
// per axis, the smaller-magnitude of the two signed separations, then zeros
// the axis with the larger surviving candidate so the correction happens
// along the axis of least penetration only.
func (r Rect) MTV(other Rect) Vec2 {
	var mtv Vec2
	if !r.Intersects(other) {
		return mtv
	}

	west := other.X - r.X - r.Width
	east := other.X + other.Width - r.X
	if math.Abs(west) < math.Abs(east) {
		mtv.X = west
	} else {
		mtv.X = east
	}

	south := other.Y + other.Height - r.Y
	north := other.Y - r.Y - r.Height
	if math.Abs(south) < math.Abs(north) {
		mtv.Y = south
	} else {
		mtv.Y = north
	}

	if math.Abs(mtv.X) > math.Abs(mtv.Y) {
		mtv.X = 0
	} else {
		mtv.Y = 0
	}

	return mtv
}
