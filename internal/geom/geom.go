// Package geom provides the vector and bounding-box math the simulation
// is built on. It contains no external dependencies to keep the physics
// pure and testable.
package geom

import "math"

// Vec2 is a 2D vector in logical arena units. All operations return new
// values; a Vec2 is never mutated in place.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v multiplied by the scalar s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Length returns the Euclidean norm of v.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns v scaled to unit length. A zero vector has no
// direction; normalizing one is a contract violation and panics.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		panic("geom: normalize of zero-length vector")
	}
	return Vec2{v.X / l, v.Y / l}
}

// Reflect mirrors v about the surface normal n, computing
// v - n*(2*v·n). n must already be unit length; Reflect does not
// normalize it.
func (v Vec2) Reflect(n Vec2) Vec2 {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// Box is an axis-aligned bounding box. Left <= Right and Top <= Bottom
// must hold; entities derive boxes from their center and half-extents,
// which guarantees it.
type Box struct {
	Left, Right, Top, Bottom float64
}

// Intersects reports whether b and o overlap. The intervals are closed
// on both ends: boxes that touch along an edge count as intersecting.
func (b Box) Intersects(o Box) bool {
	return b.Right >= o.Left && b.Left <= o.Right &&
		b.Bottom >= o.Top && b.Top <= o.Bottom
}

// Width returns the horizontal extent of the box.
func (b Box) Width() float64 {
	return b.Right - b.Left
}

// Height returns the vertical extent of the box.
func (b Box) Height() float64 {
	return b.Bottom - b.Top
}
