// Package bestfit finds circles and spheres whose center is only partly
// known by narrowing a bracket along the free axis.
//
// Each pass samples the bracket evenly, evaluates the selected error metric
// for a candidate built at every sample and keeps the two samples around the
// smallest absolute error. The sampled errors must change direction at most
// once; a second change means the point configuration has no single optimum
// along the axis and the search fails with numeric.ErrValue instead of
// guessing.
//
// The y-searches fix the radius and every other center coordinate:
//
//	circle, err := bestfit.Circle(points, 0, 1)
//
// The radius searches wrap the y-search, evaluating each candidate radius by
// the error of its best y:
//
//	sphere, err := bestfit.SphereRadius(points, x, z, [2]float64{10, 20},
//	    bestfit.WithSamples(7))
package bestfit
