package geometry

import (
	"fmt"
	"math"
	"strings"

	"github.com/philipparndt/gofit/pkg/numeric"
)

// Axis names the coordinate that stays constant for a planar fit
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// ParseAxis accepts "x", "y" or "z" in any case
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	case "z":
		return AxisZ, nil
	default:
		return 0, fmt.Errorf("invalid constraint axis %q (must be x, y or z): %w", s, numeric.ErrValue)
	}
}

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// CircleFit is a circle fitted to 3D points lying in an axis-aligned plane
type CircleFit struct {
	Center Vector3 // Circle center in 3D
	Radius float64
	Axis   Axis    // Axis orthogonal to the circle plane
	StdDev float64 // RMS of the signed distances of all points
}

// FitCircleToPoints3D fits a circle to 3D points picked on an arc whose
// plane is orthogonal to constraintAxis. The circle runs through the first,
// middle and last point; the remaining points only contribute to StdDev.
// The constant coordinate is taken from the first point.
func FitCircleToPoints3D(points []Vector3, constraintAxis Axis) (*CircleFit, error) {
	if err := numeric.RequireLengthGreaterOrEqual(points, 3); err != nil {
		return nil, fmt.Errorf("arc fit: %w", err)
	}
	if constraintAxis < AxisX || constraintAxis > AxisZ {
		return nil, fmt.Errorf("invalid constraint axis %d: %w", int(constraintAxis), numeric.ErrValue)
	}

	planar := make([]Vector2, len(points))
	for i, p := range points {
		planar[i] = project(p, constraintAxis)
	}

	// First, middle and last give the widest coverage of the arc
	circle, err := CircleFrom3Points([]Vector2{
		planar[0],
		planar[len(planar)/2],
		planar[len(planar)-1],
	})
	if err != nil {
		return nil, fmt.Errorf("arc fit: %w", err)
	}

	mse, err := circle.MeanSquaredError(planar)
	if err != nil {
		return nil, err
	}

	return &CircleFit{
		Center: lift(circle.Center, constraintAxis, points[0]),
		Radius: circle.Radius,
		Axis:   constraintAxis,
		StdDev: math.Sqrt(mse),
	}, nil
}

func project(p Vector3, axis Axis) Vector2 {
	switch axis {
	case AxisX:
		return Vector2{X: p.Y, Y: p.Z}
	case AxisY:
		return Vector2{X: p.X, Y: p.Z}
	default:
		return Vector2{X: p.X, Y: p.Y}
	}
}

func lift(c Vector2, axis Axis, ref Vector3) Vector3 {
	switch axis {
	case AxisX:
		return Vector3{X: ref.X, Y: c.X, Z: c.Y}
	case AxisY:
		return Vector3{X: c.X, Y: ref.Y, Z: c.Y}
	default:
		return Vector3{X: c.X, Y: c.Y, Z: ref.Z}
	}
}

// Project drops the coordinate along a
func (a Axis) Project(p Vector3) Vector2 {
	return project(p, a)
}

// Circle returns the fitted circle in the coordinates of its plane
func (f *CircleFit) Circle() Circle {
	return Circle{Center: project(f.Center, f.Axis), Radius: f.Radius}
}
