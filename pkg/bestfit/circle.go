package bestfit

import (
	"fmt"

	"github.com/philipparndt/gofit/pkg/geometry"
	"github.com/philipparndt/gofit/pkg/numeric"
)

// Circle finds the center y of a circle with known center x and radius
// that minimizes the configured metric over points. At least
// MinCirclePoints points are required.
func Circle(points []geometry.Vector2, centerX, radius float64, opts ...Option) (geometry.Circle, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return geometry.Circle{}, err
	}
	if err := numeric.RequireLengthGreaterOrEqual(points, MinCirclePoints); err != nil {
		return geometry.Circle{}, fmt.Errorf("best-fit circle: %w", err)
	}
	if _, err := geometry.NewCircle(geometry.Vector2{X: centerX}, radius); err != nil {
		return geometry.Circle{}, fmt.Errorf("best-fit circle: %w", err)
	}

	best, err := circleAtRadius(points, centerX, radius, cfg)
	if err != nil {
		return geometry.Circle{}, fmt.Errorf("best-fit circle: %w", err)
	}
	return best.candidate, nil
}

// CircleRadius finds radius and center y of a circle with known center x.
// Every radius in radiusRange is scored by the error of its best center y.
func CircleRadius(points []geometry.Vector2, centerX float64, radiusRange [2]float64, opts ...Option) (geometry.Circle, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return geometry.Circle{}, err
	}
	if err := numeric.RequireLengthGreaterOrEqual(points, MinCirclePoints); err != nil {
		return geometry.Circle{}, fmt.Errorf("best-fit circle radius: %w", err)
	}

	bracket, err := radiusBracket(circleReaches(points, centerX), radiusRange, cfg.Tolerance)
	if err != nil {
		return geometry.Circle{}, fmt.Errorf("best-fit circle radius: %w", err)
	}

	inner := cfg.inner()
	eval := func(radius float64) (geometry.Circle, float64, error) {
		best, err := circleAtRadius(points, centerX, radius, inner)
		return best.candidate, best.err, err
	}

	best, err := narrow(bracket, eval, cfg, "radius")
	if err != nil {
		return geometry.Circle{}, fmt.Errorf("best-fit circle radius: %w", err)
	}
	return best.candidate, nil
}

func circleAtRadius(points []geometry.Vector2, centerX, radius float64, cfg *Config) (evaluation[geometry.Circle], error) {
	bracket, err := freeAxisBracket(circleReaches(points, centerX), radius, cfg.Tolerance)
	if err != nil {
		return evaluation[geometry.Circle]{}, err
	}
	if cfg.YRange != nil {
		bracket = *cfg.YRange
	}

	eval := func(y float64) (geometry.Circle, float64, error) {
		c, err := geometry.NewCircle(geometry.Vector2{X: centerX, Y: y}, radius)
		if err != nil {
			return c, 0, err
		}
		e, err := measure(cfg.Metric, c, points)
		return c, e, err
	}
	return narrow(bracket, eval, cfg, "y")
}

func circleReaches(points []geometry.Vector2, centerX float64) []reach {
	reaches := make([]reach, len(points))
	for i, p := range points {
		dx := p.X - centerX
		reaches[i] = reach{offset2: dx * dx, free: p.Y}
	}
	return reaches
}
