package geometry

import (
	"fmt"

	"github.com/philipparndt/gofit/pkg/numeric"
)

// Sphere is an immutable sphere with a strictly positive radius
type Sphere struct {
	Center Vector3
	Radius float64
}

// NewSphere validates the radius and returns the sphere
func NewSphere(center Vector3, radius float64) (Sphere, error) {
	if radius <= 0 {
		return Sphere{}, fmt.Errorf("sphere radius must be positive, got %g: %w", radius, numeric.ErrValue)
	}
	if !numeric.IsFinite(radius) || !center.IsFinite() {
		return Sphere{}, fmt.Errorf("sphere center %s and radius %g must be finite: %w", center, radius, numeric.ErrValue)
	}
	return Sphere{Center: center, Radius: radius}, nil
}

// SphereFromSlice builds a sphere from a center given as exactly three coordinates
func SphereFromSlice(center []float64, radius float64) (Sphere, error) {
	c, err := Vector3FromSlice(center)
	if err != nil {
		return Sphere{}, fmt.Errorf("sphere center: %w", err)
	}
	return NewSphere(c, radius)
}

// SignedDistance returns the distance from p to the center minus the radius
func (s Sphere) SignedDistance(p Vector3) float64 {
	return s.Center.Distance(p) - s.Radius
}

// IsOnBoundary reports whether p lies on the sphere within eps
func (s Sphere) IsOnBoundary(p Vector3, eps float64) bool {
	return numeric.IsZero(s.SignedDistance(p), eps)
}

// MeanSquaredError returns the mean of the squared signed distances
func (s Sphere) MeanSquaredError(points []Vector3) (float64, error) {
	if err := numeric.RequireNonEmpty(points); err != nil {
		return 0, fmt.Errorf("mean squared error: %w", err)
	}
	var sum float64
	for _, p := range points {
		d := s.SignedDistance(p)
		sum += d * d
	}
	return sum / float64(len(points)), nil
}

// MeanSignedDistance returns the mean of the signed distances
func (s Sphere) MeanSignedDistance(points []Vector3) (float64, error) {
	if err := numeric.RequireNonEmpty(points); err != nil {
		return 0, fmt.Errorf("mean signed distance: %w", err)
	}
	var sum float64
	for _, p := range points {
		sum += s.SignedDistance(p)
	}
	return sum / float64(len(points)), nil
}

// Equal compares center and radius component-wise using numeric.DefaultEpsilon
func (s Sphere) Equal(other Sphere) bool {
	return s.EqualWithin(other, numeric.DefaultEpsilon)
}

// EqualWithin compares center and radius component-wise with tolerance eps
func (s Sphere) EqualWithin(other Sphere, eps float64) bool {
	return s.Center.EqualWithin(other.Center, eps) && numeric.IsEqual(s.Radius, other.Radius, eps)
}

func (s Sphere) String() string {
	return fmt.Sprintf("Sphere{Center: %s, Radius: %.6f}", s.Center, s.Radius)
}
