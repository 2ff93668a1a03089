package geometry

import (
	"math"
	"testing"

	"github.com/philipparndt/gofit/pkg/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pointOnCircle(c Circle, angle float64) Vector2 {
	return NewVector2(c.Center.X+c.Radius*math.Cos(angle), c.Center.Y+c.Radius*math.Sin(angle))
}

func pointOnSphere(s Sphere, dir Vector3) Vector3 {
	return s.Center.Add(dir.Mul(s.Radius / dir.Length()))
}

func TestCircleFrom3Points(t *testing.T) {
	tests := []struct {
		name   string
		circle Circle
		angles [3]float64
	}{
		{"unit circle", Circle{Center: NewVector2(0, 0), Radius: 1}, [3]float64{0, math.Pi / 2, math.Pi}},
		{"offset circle", Circle{Center: NewVector2(3, -7), Radius: 2.5}, [3]float64{0.3, 2.1, 4.4}},
		{"large circle", Circle{Center: NewVector2(-120.5, 88.25), Radius: 310}, [3]float64{1, 1.5, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := []Vector2{
				pointOnCircle(tt.circle, tt.angles[0]),
				pointOnCircle(tt.circle, tt.angles[1]),
				pointOnCircle(tt.circle, tt.angles[2]),
			}

			c, err := CircleFrom3Points(points)
			require.NoError(t, err)
			assert.True(t, c.EqualWithin(tt.circle, 1e-9), "got %s, want %s", c, tt.circle)
		})
	}
}

func TestCircleFrom3PointsKnownValues(t *testing.T) {
	c, err := CircleFrom3Points([]Vector2{NewVector2(1, 0), NewVector2(0, 1), NewVector2(-1, 0)})
	require.NoError(t, err)
	assert.True(t, c.Equal(Circle{Center: NewVector2(0, 0), Radius: 1}), "got %s", c)
}

func TestCircleFrom3PointsDegenerate(t *testing.T) {
	_, err := CircleFrom3Points([]Vector2{NewVector2(0, 0), NewVector2(1, 1), NewVector2(2, 2)})
	require.ErrorIs(t, err, numeric.ErrArithmetic)

	_, err = CircleFrom3Points([]Vector2{NewVector2(-1, 3), NewVector2(-1, 3), NewVector2(-1, 3)})
	require.ErrorIs(t, err, numeric.ErrArithmetic)

	_, err = CircleFrom3Points([]Vector2{NewVector2(0, 0), NewVector2(1, 1)})
	require.ErrorIs(t, err, numeric.ErrValue)

	_, err = CircleFrom3Points([]Vector2{NewVector2(0, 0), NewVector2(1, 1), NewVector2(1, 0), NewVector2(0, 1)})
	require.ErrorIs(t, err, numeric.ErrValue)

	_, err = CircleFrom3Points([]Vector2{NewVector2(0, 0), NewVector2(math.NaN(), 1), NewVector2(1, 0)})
	require.ErrorIs(t, err, numeric.ErrValue)
}

func TestSphereFrom4Points(t *testing.T) {
	tests := []struct {
		name   string
		sphere Sphere
		dirs   [4]Vector3
	}{
		{
			name:   "first fixture",
			sphere: Sphere{Center: NewVector3(-21.94, 113.52, -10.58), Radius: 114.396},
			dirs: [4]Vector3{
				NewVector3(1, 0, 0),
				NewVector3(0, 1, 0),
				NewVector3(0, 0, 1),
				NewVector3(-1, -1, -1),
			},
		},
		{
			name:   "second fixture",
			sphere: Sphere{Center: NewVector3(-26.68, 111.42, -5.84), Radius: 112.378},
			dirs: [4]Vector3{
				NewVector3(0.6, 0.8, 0),
				NewVector3(0, -0.6, 0.8),
				NewVector3(-0.8, 0, -0.6),
				NewVector3(0.48, 0.6, -0.64),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := make([]Vector3, 0, 4)
			for _, dir := range tt.dirs {
				points = append(points, pointOnSphere(tt.sphere, dir))
			}

			s, err := SphereFrom4Points(points)
			require.NoError(t, err)
			assert.True(t, s.EqualWithin(tt.sphere, 1e-9), "got %s, want %s", s, tt.sphere)
		})
	}
}

func TestSphereFrom4PointsDegenerate(t *testing.T) {
	coplanar := []Vector3{
		NewVector3(0, 0, 1),
		NewVector3(1, 0, 1),
		NewVector3(0, 1, 1),
		NewVector3(1, 1, 1),
	}
	_, err := SphereFrom4Points(coplanar)
	require.ErrorIs(t, err, numeric.ErrArithmetic)

	p := NewVector3(2, 3, 4)
	_, err = SphereFrom4Points([]Vector3{p, p, p, p})
	require.ErrorIs(t, err, numeric.ErrArithmetic)

	_, err = SphereFrom4Points(coplanar[:3])
	require.ErrorIs(t, err, numeric.ErrValue)

	_, err = SphereFrom4Points([]Vector3{coplanar[0], coplanar[1], NewVector3(0, 0, math.Inf(1)), p})
	require.ErrorIs(t, err, numeric.ErrValue)
}
