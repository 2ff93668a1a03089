package geometry

import (
	"fmt"
	"math"

	"github.com/philipparndt/gofit/pkg/numeric"
)

// Vector3 represents a 3D point or vector
type Vector3 struct {
	X, Y, Z float64
}

// NewVector3 creates a new 3D vector
func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Vector3FromSlice builds a vector from exactly three coordinates
func Vector3FromSlice(coords []float64) (Vector3, error) {
	if err := numeric.RequireLengthEqual(coords, 3); err != nil {
		return Vector3{}, fmt.Errorf("3D point: %w", err)
	}
	return Vector3{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}

// Add returns the sum of two vectors
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
	}
}

// Sub returns the difference between two vectors
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{
		X: v.X - other.X,
		Y: v.Y - other.Y,
		Z: v.Z - other.Z,
	}
}

// Mul multiplies the vector by a scalar
func (v Vector3) Mul(scalar float64) Vector3 {
	return Vector3{
		X: v.X * scalar,
		Y: v.Y * scalar,
		Z: v.Z * scalar,
	}
}

// Dot returns the dot product of two vectors
func (v Vector3) Dot(other Vector3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// SquaredLength returns the squared magnitude of the vector
func (v Vector3) SquaredLength() float64 {
	return v.Dot(v)
}

// Length returns the magnitude of the vector
func (v Vector3) Length() float64 {
	return math.Sqrt(v.SquaredLength())
}

// Distance returns the distance between two points
func (v Vector3) Distance(other Vector3) float64 {
	return v.Sub(other).Length()
}

// Min returns a vector with the minimum components of two vectors
func (v Vector3) Min(other Vector3) Vector3 {
	return Vector3{
		X: math.Min(v.X, other.X),
		Y: math.Min(v.Y, other.Y),
		Z: math.Min(v.Z, other.Z),
	}
}

// Max returns a vector with the maximum components of two vectors
func (v Vector3) Max(other Vector3) Vector3 {
	return Vector3{
		X: math.Max(v.X, other.X),
		Y: math.Max(v.Y, other.Y),
		Z: math.Max(v.Z, other.Z),
	}
}

// XY drops the Z component
func (v Vector3) XY() Vector2 {
	return Vector2{X: v.X, Y: v.Y}
}

// IsFinite reports whether all coordinates are finite
func (v Vector3) IsFinite() bool {
	return numeric.IsFinite(v.X) && numeric.IsFinite(v.Y) && numeric.IsFinite(v.Z)
}

// EqualWithin compares all components with an absolute tolerance
func (v Vector3) EqualWithin(other Vector3, eps float64) bool {
	return numeric.IsEqual(v.X, other.X, eps) &&
		numeric.IsEqual(v.Y, other.Y, eps) &&
		numeric.IsEqual(v.Z, other.Z, eps)
}

func (v Vector3) String() string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
