// Package analysis summarizes how well a fitted primitive matches its points.
package analysis

import (
	"fmt"
	"math"
	"strings"

	"github.com/philipparndt/gofit/pkg/geometry"
	"github.com/philipparndt/gofit/pkg/numeric"
	"gonum.org/v1/gonum/floats"
)

// Residuals describes the signed distances of the points to a fitted boundary
type Residuals struct {
	Count      int
	RMS        float64
	MeanSigned float64
	MinSigned  float64
	MaxSigned  float64
	Worst      int // index of the point farthest from the boundary
}

// ResidualsOf summarizes a list of signed distances
func ResidualsOf(distances []float64) (Residuals, error) {
	if err := numeric.RequireNonEmpty(distances); err != nil {
		return Residuals{}, fmt.Errorf("residuals: %w", err)
	}

	n := float64(len(distances))
	abs := make([]float64, len(distances))
	for i, d := range distances {
		abs[i] = math.Abs(d)
	}

	return Residuals{
		Count:      len(distances),
		RMS:        math.Sqrt(floats.Dot(distances, distances) / n),
		MeanSigned: floats.Sum(distances) / n,
		MinSigned:  floats.Min(distances),
		MaxSigned:  floats.Max(distances),
		Worst:      floats.MaxIdx(abs),
	}, nil
}

// CircleResiduals measures points against a circle
func CircleResiduals(c geometry.Circle, points []geometry.Vector2) (Residuals, error) {
	distances := make([]float64, len(points))
	for i, p := range points {
		distances[i] = c.SignedDistance(p)
	}
	return ResidualsOf(distances)
}

// SphereResiduals measures points against a sphere
func SphereResiduals(s geometry.Sphere, points []geometry.Vector3) (Residuals, error) {
	distances := make([]float64, len(points))
	for i, p := range points {
		distances[i] = s.SignedDistance(p)
	}
	return ResidualsOf(distances)
}

// ArcResiduals measures 3D points against an arc fit in the plane of the arc
func ArcResiduals(fit *geometry.CircleFit, points []geometry.Vector3) (Residuals, error) {
	planar := make([]geometry.Vector2, len(points))
	for i, p := range points {
		planar[i] = fit.Axis.Project(p)
	}
	return CircleResiduals(fit.Circle(), planar)
}

// Within reports whether every point lies within tol of the boundary
func (r Residuals) Within(tol float64) bool {
	return math.Max(math.Abs(r.MinSigned), math.Abs(r.MaxSigned)) <= tol
}

// String renders the report as aligned lines
func (r Residuals) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Points:       %d\n", r.Count)
	fmt.Fprintf(&b, "RMS:          %s\n", FormatMeasurement(r.RMS, ""))
	fmt.Fprintf(&b, "Mean signed:  %s\n", FormatMeasurement(r.MeanSigned, ""))
	fmt.Fprintf(&b, "Min signed:   %s\n", FormatMeasurement(r.MinSigned, ""))
	fmt.Fprintf(&b, "Max signed:   %s\n", FormatMeasurement(r.MaxSigned, ""))
	fmt.Fprintf(&b, "Worst point:  #%d\n", r.Worst)
	return b.String()
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}

// FormatVector2 formats a 2D vector
func FormatVector2(v geometry.Vector2) string {
	return fmt.Sprintf("(%.6f, %.6f)", v.X, v.Y)
}
