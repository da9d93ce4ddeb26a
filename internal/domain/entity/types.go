package entity

import "math"

// Vector2 is a 2D point or displacement in world pixels.
type Vector2 struct {
	X, Y float64
}

// Vec returns a Vector2 with the given components.
func Vec(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns v + o.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by k.
func (v Vector2) Scale(k float64) Vector2 {
	return Vector2{X: v.X * k, Y: v.Y * k}
}

// Lerp interpolates from v to o. t=0 returns v, t=1 returns o.
func (v Vector2) Lerp(o Vector2, t float64) Vector2 {
	return Vector2{X: v.X + (o.X-v.X)*t, Y: v.Y + (o.Y-v.Y)*t}
}

// Len returns the euclidean length of v.
func (v Vector2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Rect is an axis-aligned rectangle stored as center and half extents.
type Rect struct {
	Center Vector2
	Half   Vector2
}

// RectFromMinMax builds a Rect from its corners.
func RectFromMinMax(minX, minY, maxX, maxY float64) Rect {
	return Rect{
		Center: Vector2{X: (minX + maxX) / 2, Y: (minY + maxY) / 2},
		Half:   Vector2{X: (maxX - minX) / 2, Y: (maxY - minY) / 2},
	}
}

// Min returns the top-left corner.
func (r Rect) Min() Vector2 {
	return r.Center.Sub(r.Half)
}

// Max returns the bottom-right corner.
func (r Rect) Max() Vector2 {
	return r.Center.Add(r.Half)
}

// Width returns the full width.
func (r Rect) Width() float64 {
	return r.Half.X * 2
}

// Height returns the full height.
func (r Rect) Height() float64 {
	return r.Half.Y * 2
}

// Intersects reports whether r and o overlap with a positive area.
// Rectangles that only touch along an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	dx, dy := r.Overlap(o)
	return dx > 0 && dy > 0
}

// Overlap returns the penetration depth of r into o on each axis.
// A value <= 0 on either axis means the rectangles are apart on that axis.
func (r Rect) Overlap(o Rect) (dx, dy float64) {
	dx = r.Half.X + o.Half.X - math.Abs(r.Center.X-o.Center.X)
	dy = r.Half.Y + o.Half.Y - math.Abs(r.Center.Y-o.Center.Y)
	return dx, dy
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Vector2) bool {
	lo, hi := r.Min(), r.Max()
	return p.X >= lo.X && p.X <= hi.X && p.Y >= lo.Y && p.Y <= hi.Y
}
