package bestfit

import (
	"fmt"
	"math"

	"github.com/philipparndt/gofit/pkg/numeric"
	"github.com/philipparndt/gofit/pkg/unimodal"
	"gonum.org/v1/gonum/floats"
)

// evaluation is one candidate built at an axis value together with its error
type evaluation[P any] struct {
	value     float64
	candidate P
	err       float64
}

// evaluateFunc builds and scores the candidate at an axis value
type evaluateFunc[P any] func(value float64) (P, float64, error)

// narrow repeatedly samples the bracket and shrinks it around the sample
// with the smallest absolute error. It serves both the y-search and the
// radius search, which passes a nested y-search as eval. The result is the
// lowest-error sample of the last pass, never worse than either endpoint of
// the final bracket.
func narrow[P any](bracket [2]float64, eval evaluateFunc[P], cfg *Config, axis string) (evaluation[P], error) {
	lo, hi := bracket[0], bracket[1]
	values := make([]float64, cfg.Samples)
	errs := make([]float64, cfg.Samples)
	evals := make([]evaluation[P], cfg.Samples)

	var best evaluation[P]
	found := false

	for iter := 1; iter <= MaxIterations; iter++ {
		if numeric.IsEqual(lo, hi, cfg.Tolerance) {
			c, e, err := eval(lo)
			if err != nil {
				return evaluation[P]{}, fmt.Errorf("%s = %g: %w", axis, lo, err)
			}
			if found && math.Abs(best.err) < math.Abs(e) {
				return best, nil
			}
			return evaluation[P]{value: lo, candidate: c, err: e}, nil
		}

		floats.Span(values, lo, hi)
		for i, v := range values {
			c, e, err := eval(v)
			if err != nil {
				return evaluation[P]{}, fmt.Errorf("%s = %g: %w", axis, v, err)
			}
			evals[i] = evaluation[P]{value: v, candidate: c, err: e}
			if numeric.IsZero(e, cfg.Tolerance) {
				cfg.Logger.Debug("exact fit", "axis", axis, "iteration", iter, "value", v, "error", e)
				return evals[i], nil
			}
			errs[i] = e
		}

		loIdx, hiIdx, err := unimodal.IndicesAroundMinimumAbs(errs, cfg.Tolerance)
		if err != nil {
			return evaluation[P]{}, fmt.Errorf("%s search over [%g, %g], pass %d: %w", axis, lo, hi, iter, err)
		}
		minIdx, err := unimodal.IndexOfMinimumAbs(errs)
		if err != nil {
			return evaluation[P]{}, err
		}
		best, found = evals[minIdx], true

		spread, _ := unimodal.RangeLength(errs)
		cfg.Logger.Debug("bracket narrowed",
			"axis", axis,
			"iteration", iter,
			"low", values[loIdx],
			"high", values[hiIdx],
			"best", best.value,
			"error", best.err,
			"spread", spread,
		)

		if numeric.IsEqual(errs[loIdx], errs[hiIdx], cfg.Tolerance) {
			return best, nil
		}
		lo, hi = values[loIdx], values[hiIdx]
	}

	cfg.Logger.Debug("iteration cap reached", "axis", axis, "best", best.value, "error", best.err)
	return best, nil
}

// reach locates a point relative to the fixed center coordinates:
// offset2 is its squared distance across the fixed axes and free its
// coordinate on the searched axis.
type reach struct {
	offset2 float64
	free    float64
}

func (p reach) finite() bool {
	return numeric.IsFinite(p.offset2) && numeric.IsFinite(p.free)
}

// freeAxisBracket returns the range of center positions on the free axis
// for which every point can lie on a boundary of the given radius.
// Each point contributes free ± sqrt(r² - offset2); tangential points only
// contribute their own coordinate.
func freeAxisBracket(reaches []reach, radius, eps float64) ([2]float64, error) {
	lo, hi := math.Inf(1), math.Inf(-1)
	r2 := radius * radius
	tol := eps * math.Max(1, r2)

	for i, p := range reaches {
		d := r2 - p.offset2
		switch {
		case !p.finite():
			return [2]float64{}, fmt.Errorf("point %d is not finite: %w", i, numeric.ErrValue)
		case numeric.IsZero(d, tol):
			lo = math.Min(lo, p.free)
			hi = math.Max(hi, p.free)
		case d < 0:
			return [2]float64{}, fmt.Errorf("radius %g too small to reach point %d: %w", radius, i, numeric.ErrValue)
		default:
			s := math.Sqrt(d)
			lo = math.Min(lo, p.free-s)
			hi = math.Max(hi, p.free+s)
		}
	}
	return [2]float64{lo, hi}, nil
}

// radiusBracket orders the caller range and raises its lower bound to the
// smallest radius that reaches every point.
func radiusBracket(reaches []reach, radiusRange [2]float64, eps float64) ([2]float64, error) {
	r := ordered(radiusRange)
	if r[0] <= 0 || !numeric.IsFinite(r[1]) {
		return [2]float64{}, fmt.Errorf("radius range must be positive and finite, got %v: %w", radiusRange, numeric.ErrValue)
	}

	var farthest float64
	for i, p := range reaches {
		if !p.finite() {
			return [2]float64{}, fmt.Errorf("point %d is not finite: %w", i, numeric.ErrValue)
		}
		farthest = math.Max(farthest, p.offset2)
	}
	need := math.Sqrt(farthest)

	if r[1] < need && !numeric.IsEqual(r[1], need, eps) {
		return [2]float64{}, fmt.Errorf("radius %g too small to reach every point (needs %g): %w", r[1], need, numeric.ErrValue)
	}
	r[0] = math.Max(r[0], need)
	r[1] = math.Max(r[1], r[0])
	return r, nil
}

type measurable[V any] interface {
	MeanSquaredError(points []V) (float64, error)
	MeanSignedDistance(points []V) (float64, error)
}

func measure[V any, P measurable[V]](m Metric, primitive P, points []V) (float64, error) {
	if m == MetricMeanSigned {
		return primitive.MeanSignedDistance(points)
	}
	return primitive.MeanSquaredError(points)
}
