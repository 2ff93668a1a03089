package bestfit

import (
	"fmt"

	"github.com/philipparndt/gofit/pkg/geometry"
	"github.com/philipparndt/gofit/pkg/numeric"
)

// Sphere finds the center y of a sphere with known center x, center z and
// radius. At least MinSpherePoints points are required.
func Sphere(points []geometry.Vector3, centerX, centerZ, radius float64, opts ...Option) (geometry.Sphere, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return geometry.Sphere{}, err
	}
	if err := numeric.RequireLengthGreaterOrEqual(points, MinSpherePoints); err != nil {
		return geometry.Sphere{}, fmt.Errorf("best-fit sphere: %w", err)
	}
	if _, err := geometry.NewSphere(geometry.Vector3{X: centerX, Z: centerZ}, radius); err != nil {
		return geometry.Sphere{}, fmt.Errorf("best-fit sphere: %w", err)
	}

	best, err := sphereAtRadius(points, centerX, centerZ, radius, cfg)
	if err != nil {
		return geometry.Sphere{}, fmt.Errorf("best-fit sphere: %w", err)
	}
	return best.candidate, nil
}

// SphereRadius finds radius and center y of a sphere with known center x
// and z. Every radius in radiusRange is scored by the error of its best
// center y.
func SphereRadius(points []geometry.Vector3, centerX, centerZ float64, radiusRange [2]float64, opts ...Option) (geometry.Sphere, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return geometry.Sphere{}, err
	}
	if err := numeric.RequireLengthGreaterOrEqual(points, MinSpherePoints); err != nil {
		return geometry.Sphere{}, fmt.Errorf("best-fit sphere radius: %w", err)
	}

	bracket, err := radiusBracket(sphereReaches(points, centerX, centerZ), radiusRange, cfg.Tolerance)
	if err != nil {
		return geometry.Sphere{}, fmt.Errorf("best-fit sphere radius: %w", err)
	}

	inner := cfg.inner()
	eval := func(radius float64) (geometry.Sphere, float64, error) {
		best, err := sphereAtRadius(points, centerX, centerZ, radius, inner)
		return best.candidate, best.err, err
	}

	best, err := narrow(bracket, eval, cfg, "radius")
	if err != nil {
		return geometry.Sphere{}, fmt.Errorf("best-fit sphere radius: %w", err)
	}
	return best.candidate, nil
}

func sphereAtRadius(points []geometry.Vector3, centerX, centerZ, radius float64, cfg *Config) (evaluation[geometry.Sphere], error) {
	bracket, err := freeAxisBracket(sphereReaches(points, centerX, centerZ), radius, cfg.Tolerance)
	if err != nil {
		return evaluation[geometry.Sphere]{}, err
	}
	if cfg.YRange != nil {
		bracket = *cfg.YRange
	}

	eval := func(y float64) (geometry.Sphere, float64, error) {
		s, err := geometry.NewSphere(geometry.Vector3{X: centerX, Y: y, Z: centerZ}, radius)
		if err != nil {
			return s, 0, err
		}
		e, err := measure(cfg.Metric, s, points)
		return s, e, err
	}
	return narrow(bracket, eval, cfg, "y")
}

func sphereReaches(points []geometry.Vector3, centerX, centerZ float64) []reach {
	reaches := make([]reach, len(points))
	for i, p := range points {
		dx := p.X - centerX
		dz := p.Z - centerZ
		reaches[i] = reach{offset2: dx*dx + dz*dz, free: p.Y}
	}
	return reaches
}
