package geometry

import (
	"fmt"

	"github.com/philipparndt/gofit/pkg/numeric"
)

// Circle is an immutable 2D circle with a strictly positive radius
type Circle struct {
	Center Vector2
	Radius float64
}

// NewCircle validates the radius and returns the circle
func NewCircle(center Vector2, radius float64) (Circle, error) {
	if radius <= 0 {
		return Circle{}, fmt.Errorf("circle radius must be positive, got %g: %w", radius, numeric.ErrValue)
	}
	if !numeric.IsFinite(radius) || !center.IsFinite() {
		return Circle{}, fmt.Errorf("circle center %s and radius %g must be finite: %w", center, radius, numeric.ErrValue)
	}
	return Circle{Center: center, Radius: radius}, nil
}

// CircleFromSlice builds a circle from a center given as exactly two coordinates
func CircleFromSlice(center []float64, radius float64) (Circle, error) {
	c, err := Vector2FromSlice(center)
	if err != nil {
		return Circle{}, fmt.Errorf("circle center: %w", err)
	}
	return NewCircle(c, radius)
}

// SignedDistance returns the distance from p to the center minus the radius:
// positive outside, negative inside, zero on the boundary.
func (c Circle) SignedDistance(p Vector2) float64 {
	return c.Center.Distance(p) - c.Radius
}

// IsOnBoundary reports whether p lies on the circle within eps
func (c Circle) IsOnBoundary(p Vector2, eps float64) bool {
	return numeric.IsZero(c.SignedDistance(p), eps)
}

// MeanSquaredError returns the mean of the squared signed distances
func (c Circle) MeanSquaredError(points []Vector2) (float64, error) {
	if err := numeric.RequireNonEmpty(points); err != nil {
		return 0, fmt.Errorf("mean squared error: %w", err)
	}
	var sum float64
	for _, p := range points {
		d := c.SignedDistance(p)
		sum += d * d
	}
	return sum / float64(len(points)), nil
}

// MeanSignedDistance returns the mean of the signed distances
func (c Circle) MeanSignedDistance(points []Vector2) (float64, error) {
	if err := numeric.RequireNonEmpty(points); err != nil {
		return 0, fmt.Errorf("mean signed distance: %w", err)
	}
	var sum float64
	for _, p := range points {
		sum += c.SignedDistance(p)
	}
	return sum / float64(len(points)), nil
}

// Equal compares center and radius component-wise using numeric.DefaultEpsilon
func (c Circle) Equal(other Circle) bool {
	return c.EqualWithin(other, numeric.DefaultEpsilon)
}

// EqualWithin compares center and radius component-wise with tolerance eps
func (c Circle) EqualWithin(other Circle, eps float64) bool {
	return c.Center.EqualWithin(other.Center, eps) && numeric.IsEqual(c.Radius, other.Radius, eps)
}

func (c Circle) String() string {
	return fmt.Sprintf("Circle{Center: %s, Radius: %.6f}", c.Center, c.Radius)
}
