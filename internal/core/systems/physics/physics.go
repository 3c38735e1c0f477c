package physics

import "math"

// Vec2 is a 2D vector value. Every method returns a new Vec2 and leaves the
// receiver untouched.
type Vec2 struct{ X, Y float64 }

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }

// Mul scales both components by k.
func (v Vec2) Mul(k float64) Vec2 { return Vec2{X: v.X * k, Y: v.Y * k} }

// Magnitude is the Euclidean length of v.
func (v Vec2) Magnitude() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y) }

// Distance is the Euclidean distance between two points.
func (v Vec2) Distance(o Vec2) float64 { return v.Sub(o).Magnitude() }

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Normalize returns the unit vector pointing along v.
// A zero or non-finite length yields the zero vector, never NaN.
func (v Vec2) Normalize() Vec2 {
	l := v.Magnitude()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return Vec2{}
	}
	return Vec2{X: finiteOrZero(v.X / l), Y: finiteOrZero(v.Y / l)}
}

func finiteOrZero(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Clamp limits f to [lo, hi]. The lower bound is applied first, so when
// lo > hi the result is hi.
func Clamp(f, lo, hi float64) float64 {
	if f < lo {
		f = lo
	}
	if f > hi {
		f = hi
	}
	return f
}
