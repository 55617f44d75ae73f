package core

import (
	"fmt"
	"math"
)

// Tuple is a homogeneous 4-component value. Points carry W=1, vectors W=0.
//
// Arithmetic does not enforce the W convention: adding two points yields W=2,
// which is not a point or a vector. Callers that care can check IsPoint or IsVector.
type Tuple struct {
	X, Y, Z, W float64
}

// NewTuple creates a new Tuple
func NewTuple(x, y, z, w float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: w}
}

// NewPoint creates a point (W=1)
func NewPoint(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 1}
}

// NewVector creates a vector (W=0)
func NewVector(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 0}
}

// Add returns the componentwise sum
func (t Tuple) Add(other Tuple) Tuple {
	return Tuple{t.X + other.X, t.Y + other.Y, t.Z + other.Z, t.W + other.W}
}

// Subtract returns the componentwise difference
func (t Tuple) Subtract(other Tuple) Tuple {
	return Tuple{t.X - other.X, t.Y - other.Y, t.Z - other.Z, t.W - other.W}
}

// Multiply returns the tuple scaled by a scalar
func (t Tuple) Multiply(scalar float64) Tuple {
	return Tuple{t.X * scalar, t.Y * scalar, t.Z * scalar, t.W * scalar}
}

// Divide returns the tuple divided by a scalar
func (t Tuple) Divide(scalar float64) Tuple {
	return Tuple{t.X / scalar, t.Y / scalar, t.Z / scalar, t.W / scalar}
}

// Negate returns the negative of the tuple
func (t Tuple) Negate() Tuple {
	return Tuple{-t.X, -t.Y, -t.Z, -t.W}
}

// Dot returns the dot product over all four components
func (t Tuple) Dot(other Tuple) float64 {
	return t.X*other.X + t.Y*other.Y + t.Z*other.Z + t.W*other.W
}

// Cross returns the cross product of two vectors. W is always zero.
func (t Tuple) Cross(other Tuple) Tuple {
	return Tuple{
		X: t.Y*other.Z - t.Z*other.Y,
		Y: t.Z*other.X - t.X*other.Z,
		Z: t.X*other.Y - t.Y*other.X,
		W: 0,
	}
}

// Magnitude returns the Euclidean norm over all four components
func (t Tuple) Magnitude() float64 {
	return math.Sqrt(t.Dot(t))
}

// Normalize returns a unit tuple in the same direction.
// It panics if the magnitude is zero.
func (t Tuple) Normalize() Tuple {
	magnitude := t.Magnitude()
	if magnitude == 0 {
		panic(fmt.Sprintf("core: cannot normalize zero-magnitude tuple %v", t))
	}
	return t.Divide(magnitude)
}

// Reflect reflects the vector around the given normal
func (t Tuple) Reflect(normal Tuple) Tuple {
	return t.Subtract(normal.Multiply(2 * t.Dot(normal)))
}

// IsPoint reports whether W is approximately 1
func (t Tuple) IsPoint() bool {
	return ApproxEqual(t.W, 1)
}

// IsVector reports whether W is approximately 0
func (t Tuple) IsVector() bool {
	return ApproxEqual(t.W, 0)
}

// Equals compares componentwise within Epsilon
func (t Tuple) Equals(other Tuple) bool {
	return ApproxEqual(t.X, other.X) &&
		ApproxEqual(t.Y, other.Y) &&
		ApproxEqual(t.Z, other.Z) &&
		ApproxEqual(t.W, other.W)
}

func (t Tuple) String() string {
	if t.IsPoint() {
		return fmt.Sprintf("point(%g, %g, %g)", t.X, t.Y, t.Z)
	}
	if t.IsVector() {
		return fmt.Sprintf("vector(%g, %g, %g)", t.X, t.Y, t.Z)
	}
	return fmt.Sprintf("tuple(%g, %g, %g, %g)", t.X, t.Y, t.Z, t.W)
}
