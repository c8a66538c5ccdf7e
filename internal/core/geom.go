// Package core provides fundamental types and utilities shared by the
// simulation and the terminal platform. It contains no external dependencies
// (especially no Bubble Tea) to keep game logic pure and testable.
package core

import "math"

// Rect is an integer rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Vec is a point or direction in continuous world space.
type Vec struct {
	X, Y float64
}

// V is shorthand for Vec{x, y}.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// FromAngle returns the unit vector pointing at angle (radians).
func FromAngle(angle float64) Vec {
	return Vec{X: math.Cos(angle), Y: math.Sin(angle)}
}

func (v Vec) Add(o Vec) Vec         { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec         { return Vec{v.X - o.X, v.Y - o.Y} }
func (v Vec) Scale(k float64) Vec   { return Vec{v.X * k, v.Y * k} }
func (v Vec) Len() float64          { return math.Hypot(v.X, v.Y) }
func (v Vec) Dist(o Vec) float64    { return math.Hypot(v.X-o.X, v.Y-o.Y) }
func (v Vec) Angle() float64        { return math.Atan2(v.Y, v.X) }
func (v Vec) IsZero() bool          { return v.X == 0 && v.Y == 0 }
func (v Vec) AngleTo(o Vec) float64 { return math.Atan2(o.Y-v.Y, o.X-v.X) }

// Lerp interpolates between v and o.
func (v Vec) Lerp(o Vec, t float64) Vec {
	return Vec{v.X + (o.X-v.X)*t, v.Y + (o.Y-v.Y)*t}
}

// Norm returns the unit vector of v, or the zero vector when v is zero.
func (v Vec) Norm() Vec {
	l := v.Len()
	if l == 0 {
		return Vec{}
	}
	return Vec{v.X / l, v.Y / l}
}

// Limit caps the length of v at max.
func (v Vec) Limit(max float64) Vec {
	l := v.Len()
	if l > max && l > 0 {
		return v.Scale(max / l)
	}
	return v
}

// Box is an axis-aligned rectangle in world space.
type Box struct {
	X, Y float64
	W, H float64
}

// Contains reports whether p lies inside the box. Edges are inclusive.
func (b Box) Contains(p Vec) bool {
	return p.X >= b.X && p.X <= b.X+b.W && p.Y >= b.Y && p.Y <= b.Y+b.H
}

// Center returns the center point of the box.
func (b Box) Center() Vec {
	return Vec{b.X + b.W/2, b.Y + b.H/2}
}

// AngleDiff returns the absolute angular distance between a and b in [0, π].
func AngleDiff(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 2*math.Pi)
	if d > math.Pi {
		d = 2*math.Pi - d
	}
	return d
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
