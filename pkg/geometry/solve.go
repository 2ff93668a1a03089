package geometry

import (
	"fmt"

	"github.com/philipparndt/gofit/pkg/numeric"
	"gonum.org/v1/gonum/mat"
)

// CircleFrom3Points returns the circle passing through exactly three points.
//
// The center follows from the circumcenter formulas
//
//	D  = det[x y 1]
//	bc = (|p0|² - |p1|²) / 2
//	cd = (|p1|² - |p2|²) / 2
//	cx = (bc(y1-y2) - cd(y0-y1)) / D
//	cy = ((x0-x1)cd - (x1-x2)bc) / D
//
// Collinear or coincident points give D == 0 and fail with ErrArithmetic.
func CircleFrom3Points(points []Vector2) (Circle, error) {
	if err := numeric.RequireLengthEqual(points, 3); err != nil {
		return Circle{}, fmt.Errorf("circle from points: %w", err)
	}
	for i, p := range points {
		if !p.IsFinite() {
			return Circle{}, fmt.Errorf("circle from points: point %d is not finite: %w", i, numeric.ErrValue)
		}
	}
	p0, p1, p2 := points[0], points[1], points[2]

	d := mat.Det(mat.NewDense(3, 3, []float64{
		p0.X, p0.Y, 1,
		p1.X, p1.Y, 1,
		p2.X, p2.Y, 1,
	}))
	if numeric.IsZero(d, numeric.DefaultEpsilon) {
		return Circle{}, fmt.Errorf("points are collinear or coincident: %w", numeric.ErrArithmetic)
	}

	bc := (p0.SquaredLength() - p1.SquaredLength()) / 2
	cd := (p1.SquaredLength() - p2.SquaredLength()) / 2

	center := Vector2{
		X: (bc*(p1.Y-p2.Y) - cd*(p0.Y-p1.Y)) / d,
		Y: ((p0.X-p1.X)*cd - (p1.X-p2.X)*bc) / d,
	}
	return NewCircle(center, center.Distance(p0))
}

// SphereFrom4Points returns the sphere passing through exactly four points.
//
// With s = x²+y²+z² for each row the center is
//
//	cx =  det[s y z 1] / (2 det[x y z 1])
//	cy = -det[s x z 1] / (2 det[x y z 1])
//	cz =  det[s x y 1] / (2 det[x y z 1])
//
// Coplanar or coincident points give a zero baseline determinant and fail
// with ErrArithmetic.
func SphereFrom4Points(points []Vector3) (Sphere, error) {
	if err := numeric.RequireLengthEqual(points, 4); err != nil {
		return Sphere{}, fmt.Errorf("sphere from points: %w", err)
	}
	for i, p := range points {
		if !p.IsFinite() {
			return Sphere{}, fmt.Errorf("sphere from points: point %d is not finite: %w", i, numeric.ErrValue)
		}
	}

	minor := func(row func(p Vector3) [4]float64) float64 {
		data := make([]float64, 0, 16)
		for _, p := range points {
			r := row(p)
			data = append(data, r[:]...)
		}
		return mat.Det(mat.NewDense(4, 4, data))
	}

	m11 := minor(func(p Vector3) [4]float64 { return [4]float64{p.X, p.Y, p.Z, 1} })
	if numeric.IsZero(m11, numeric.DefaultEpsilon) {
		return Sphere{}, fmt.Errorf("points are coplanar or coincident: %w", numeric.ErrArithmetic)
	}
	m12 := minor(func(p Vector3) [4]float64 { return [4]float64{p.SquaredLength(), p.Y, p.Z, 1} })
	m13 := minor(func(p Vector3) [4]float64 { return [4]float64{p.SquaredLength(), p.X, p.Z, 1} })
	m14 := minor(func(p Vector3) [4]float64 { return [4]float64{p.SquaredLength(), p.X, p.Y, 1} })

	center := Vector3{
		X: 0.5 * m12 / m11,
		Y: -0.5 * m13 / m11,
		Z: 0.5 * m14 / m11,
	}
	return NewSphere(center, center.Distance(points[0]))
}
