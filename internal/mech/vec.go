package mech

import "math"

// Vec is a point or displacement in the plane.
type Vec struct {
	X, Y float64
}

// V is shorthand for Vec{X: x, Y: y}.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Polar returns the vector of the given length pointing along angle radians.
func Polar(length, angle float64) Vec {
	return Vec{X: length * math.Cos(angle), Y: length * math.Sin(angle)}
}

func (v Vec) Add(w Vec) Vec {
	return Vec{X: v.X + w.X, Y: v.Y + w.Y}
}

func (v Vec) Sub(w Vec) Vec {
	return Vec{X: v.X - w.X, Y: v.Y - w.Y}
}

func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Len returns the euclidean length of v.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the distance between v and w.
func (v Vec) Dist(w Vec) float64 {
	return v.Sub(w).Len()
}

// Angle returns the direction of v in radians. The zero vector has no
// direction and reports ok=false.
func (v Vec) Angle() (angle float64, ok bool) {
	if v.X == 0 && v.Y == 0 {
		return 0, false
	}
	return math.Atan2(v.Y, v.X), true
}

// IsFinite reports whether both components are neither NaN nor infinite.
func (v Vec) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}
