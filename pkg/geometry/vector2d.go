package geometry

import (
	"errors"
	"fmt"
	"math"
)

// Epsilon is the tolerance used by Eq and by NewVectorPolar to snap tiny components to zero.
const (
	Epsilon = 1e-9
)

// ErrDivideByZero is returned by Div when the divisor is zero.
var ErrDivideByZero = errors.New("vector cannot be divided by zero")

// Vector2D is a point or a direction in the simulation plane.
// Fields are public: it is plain data, and literals like Vector2D{X: 1, Y: 2} read better.
type Vector2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NewVectorPolar creates a Vector2D of the given length pointing at theta radians.
func NewVectorPolar(radius, theta float64) Vector2D {
	x := radius * math.Cos(theta)
	y := radius * math.Sin(theta)

	if math.Abs(x) < Epsilon {
		x = 0
	}
	if math.Abs(y) < Epsilon {
		y = 0
	}

	return Vector2D{X: x, Y: y}
}

// String implements fmt.Stringer.
func (v Vector2D) String() string {
	return fmt.Sprintf("(%.4f, %.4f)", v.X, v.Y)
}

// ---------------------------------------------------------------------
// Arithmetic
// Value receivers, new values returned: the struct is two floats.
// ---------------------------------------------------------------------

// Add adds two vectors and returns the result.
func (v Vector2D) Add(other Vector2D) Vector2D {
	return Vector2D{v.X + other.X, v.Y + other.Y}
}

// Sub subtracts the other vector from the current vector.
func (v Vector2D) Sub(other Vector2D) Vector2D {
	return Vector2D{v.X - other.X, v.Y - other.Y}
}

// Mul scales the vector by a scalar value.
func (v Vector2D) Mul(scalar float64) Vector2D {
	return Vector2D{v.X * scalar, v.Y * scalar}
}

// Div divides both components by scalar.
// A zero scalar returns the zero vector and ErrDivideByZero, so callers decide what a
// missing average means instead of propagating Inf or NaN into positions.
func (v Vector2D) Div(scalar float64) (Vector2D, error) {
	if scalar == 0 {
		return Vector2D{}, ErrDivideByZero
	}
	return Vector2D{v.X / scalar, v.Y / scalar}, nil
}

// ---------------------------------------------------------------------
// Magnitude and Normalization
// ---------------------------------------------------------------------

// LenSqr is the squared magnitude. Use it for range checks, it avoids the square root.
func (v Vector2D) LenSqr() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Len is the magnitude of the vector.
func (v Vector2D) Len() float64 {
	return math.Sqrt(v.LenSqr())
}

// Resize returns the vector scaled to the given magnitude.
// The zero vector has no direction and is returned unchanged.
func (v Vector2D) Resize(size float64) Vector2D {
	l := v.Len()
	if l > 0 {
		return v.Mul(size / l)
	}
	return v
}

// Normalize returns the unit vector pointing the same way (zero stays zero).
func (v Vector2D) Normalize() Vector2D {
	return v.Resize(1)
}

// IsZero reports whether both components are exactly zero.
func (v Vector2D) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// ---------------------------------------------------------------------
// Geometric Utilities
// ---------------------------------------------------------------------

// DistanceSquaredTo calculates the squared Euclidean distance to another point.
func (v Vector2D) DistanceSquaredTo(other Vector2D) float64 {
	return v.Sub(other).LenSqr()
}

// DistanceTo calculates the Euclidean distance to another point.
func (v Vector2D) DistanceTo(other Vector2D) float64 {
	return math.Sqrt(v.DistanceSquaredTo(other))
}

// Angle returns the heading of the vector relative to the X-axis, in [-Pi, Pi].
func (v Vector2D) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Eq checks if two vectors are equal within Epsilon.
func (v Vector2D) Eq(other Vector2D) bool {
	return v.EqWithin(other, Epsilon)
}

// EqWithin checks if two vectors are equal within tol on both axes.
func (v Vector2D) EqWithin(other Vector2D, tol float64) bool {
	return math.Abs(v.X-other.X) <= tol && math.Abs(v.Y-other.Y) <= tol
}
