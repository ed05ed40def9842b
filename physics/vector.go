package physics

import "math"

// Vec is a 2-D force or velocity in cells (per tick)
type Vec struct {
	X, Y float64
}

// Add returns v + o
func (v Vec) Add(o Vec) Vec {
	return Vec{v.X + o.X, v.Y + o.Y}
}

// Scale returns v * k
func (v Vec) Scale(k float64) Vec {
	return Vec{v.X * k, v.Y * k}
}

// Magnitude returns the Euclidean length
func (v Vec) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero reports whether both components are exactly zero
func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}
