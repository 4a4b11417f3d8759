// Package core provides fundamental types and utilities shared by the runner
// core and its hosts. It has no external dependencies (especially no Bubble
// Tea) to keep game logic pure and testable.
package core

import "math"

// Vec2 is a 2D vector in world units. World y grows upward.
type Vec2 struct {
	X, Y float64
}

// V returns the vector (x, y).
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Box is an axis-aligned bounding box described by its centre and full size.
type Box struct {
	Center Vec2
	Size   Vec2
}

// NewBox creates a box centred on c with the given width and height.
func NewBox(c Vec2, w, h float64) Box {
	return Box{Center: c, Size: Vec2{X: w, Y: h}}
}

// Left returns the x-coordinate of the left edge.
func (b Box) Left() float64 { return b.Center.X - b.Size.X/2 }

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 { return b.Center.X + b.Size.X/2 }

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 { return b.Center.Y - b.Size.Y/2 }

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float64 { return b.Center.Y + b.Size.Y/2 }

// Overlaps returns true if this box intersects other.
// Touching edges count as an overlap, which is what trigger volumes need:
// a body resting exactly on a surface is still in contact with it.
func (b Box) Overlaps(other Box) bool {
	if b.Right() < other.Left() || other.Right() < b.Left() {
		return false
	}
	if b.Top() < other.Bottom() || other.Top() < b.Bottom() {
		return false
	}
	return true
}

// ExtendDown returns a copy of the box grown downward by d, keeping its top edge.
func (b Box) ExtendDown(d float64) Box {
	return Box{
		Center: Vec2{X: b.Center.X, Y: b.Center.Y - d/2},
		Size:   Vec2{X: b.Size.X, Y: b.Size.Y + d},
	}
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
