package geometry

import (
	"math"
	"testing"

	"github.com/philipparndt/gofit/pkg/numeric"
)

func TestVector3Add(t *testing.T) {
	v1 := NewVector3(1, 2, 3)
	v2 := NewVector3(4, 5, 6)
	result := v1.Add(v2)

	expected := NewVector3(5, 7, 9)
	if result != expected {
		t.Errorf("Add failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Sub(t *testing.T) {
	v1 := NewVector3(5, 7, 9)
	v2 := NewVector3(1, 2, 3)
	result := v1.Sub(v2)

	expected := NewVector3(4, 5, 6)
	if result != expected {
		t.Errorf("Sub failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Distance(t *testing.T) {
	v1 := NewVector3(0, 0, 0)
	v2 := NewVector3(3, 4, 12)
	distance := v1.Distance(v2)

	expected := 13.0
	if math.Abs(distance-expected) > 1e-10 {
		t.Errorf("Distance failed: expected %v, got %v", expected, distance)
	}
}

func TestVector3FromSlice(t *testing.T) {
	v, err := Vector3FromSlice([]float64{1, 2, 3})
	if err != nil {
		t.Fatalf("Vector3FromSlice failed: %v", err)
	}
	if v != NewVector3(1, 2, 3) {
		t.Errorf("Vector3FromSlice failed: got %v", v)
	}

	for _, coords := range [][]float64{{1, 2}, {1, 2, 3, 4}, nil} {
		if _, err := Vector3FromSlice(coords); err == nil {
			t.Errorf("expected arity error for %v", coords)
		}
	}
}

func TestVector2Distance(t *testing.T) {
	v1 := NewVector2(1, 1)
	v2 := NewVector2(4, 5)

	if d := v1.Distance(v2); math.Abs(d-5) > 1e-10 {
		t.Errorf("Distance failed: expected 5, got %v", d)
	}
	if l := v2.SquaredLength(); math.Abs(l-41) > 1e-10 {
		t.Errorf("SquaredLength failed: expected 41, got %v", l)
	}
}

func TestVectorEqualWithin(t *testing.T) {
	a := NewVector3(1, 2, 3)
	if !a.EqualWithin(NewVector3(1+1e-13, 2, 3-1e-13), numeric.DefaultEpsilon) {
		t.Error("expected vectors to be equal within tolerance")
	}
	if a.EqualWithin(NewVector3(1, 2, 3.001), numeric.DefaultEpsilon) {
		t.Error("expected vectors to differ")
	}
	if !NewVector2(1, 2).EqualWithin(NewVector2(1.05, 2), 0.1) {
		t.Error("expected custom tolerance to be honoured")
	}
}

func TestBoundsOf(t *testing.T) {
	bbox := BoundsOf([]Vector3{
		NewVector3(1, -2, 0),
		NewVector3(-1, 4, 2),
		NewVector3(0, 0, -2),
	})

	if bbox.Min != NewVector3(-1, -2, -2) || bbox.Max != NewVector3(1, 4, 2) {
		t.Errorf("BoundsOf failed: got %v .. %v", bbox.Min, bbox.Max)
	}
	if c := bbox.Center(); c != NewVector3(0, 1, 0) {
		t.Errorf("Center failed: got %v", c)
	}
	if d := bbox.Diagonal(); math.Abs(d-math.Sqrt(4+36+16)) > 1e-10 {
		t.Errorf("Diagonal failed: got %v", d)
	}
}

func TestTriangleVertices(t *testing.T) {
	tri := NewTriangle(
		NewVector3(0, 0, 1),
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 4, 0),
	)

	vertices := tri.Vertices()
	if vertices[1] != NewVector3(3, 0, 0) || vertices[2] != NewVector3(0, 4, 0) {
		t.Errorf("Vertices failed: got %v", vertices)
	}
}

func TestIsFinite(t *testing.T) {
	if !NewVector3(1, -2, 3).IsFinite() || !NewVector2(1, -2).IsFinite() {
		t.Error("finite vectors reported as non-finite")
	}
	if NewVector3(1, math.NaN(), 3).IsFinite() {
		t.Error("NaN coordinate reported as finite")
	}
	if NewVector2(math.Inf(-1), 0).IsFinite() {
		t.Error("infinite coordinate reported as finite")
	}
}
