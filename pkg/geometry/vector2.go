package geometry

import (
	"fmt"
	"math"

	"github.com/philipparndt/gofit/pkg/numeric"
)

// Vector2 represents a 2D point or vector
type Vector2 struct {
	X, Y float64
}

// NewVector2 creates a new 2D vector
func NewVector2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Vector2FromSlice builds a vector from exactly two coordinates
func Vector2FromSlice(coords []float64) (Vector2, error) {
	if err := numeric.RequireLengthEqual(coords, 2); err != nil {
		return Vector2{}, fmt.Errorf("2D point: %w", err)
	}
	return Vector2{X: coords[0], Y: coords[1]}, nil
}

// Sub returns the difference between two vectors
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{X: v.X - other.X, Y: v.Y - other.Y}
}

// SquaredLength returns the squared magnitude of the vector
func (v Vector2) SquaredLength() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Length returns the magnitude of the vector
func (v Vector2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the distance between two points
func (v Vector2) Distance(other Vector2) float64 {
	return v.Sub(other).Length()
}

// EqualWithin compares both components with an absolute tolerance
func (v Vector2) EqualWithin(other Vector2, eps float64) bool {
	return numeric.IsEqual(v.X, other.X, eps) && numeric.IsEqual(v.Y, other.Y, eps)
}

// IsFinite reports whether both coordinates are finite
func (v Vector2) IsFinite() bool {
	return numeric.IsFinite(v.X) && numeric.IsFinite(v.Y)
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%.6f, %.6f)", v.X, v.Y)
}
