package core

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, Epsilon)

func TestTuple_PointAndVector(t *testing.T) {
	p := NewTuple(4.3, -4.2, 3.1, 1.0)
	if !p.IsPoint() || p.IsVector() {
		t.Errorf("Expected %v to be a point only", p)
	}

	v := NewTuple(4.3, -4.2, 3.1, 0.0)
	if v.IsPoint() || !v.IsVector() {
		t.Errorf("Expected %v to be a vector only", v)
	}

	if diff := cmp.Diff(NewPoint(4, -4, 3), NewTuple(4, -4, 3, 1)); diff != "" {
		t.Errorf("NewPoint mismatch (-got +want):\n%s", diff)
	}
	if diff := cmp.Diff(NewVector(4, -4, 3), NewTuple(4, -4, 3, 0)); diff != "" {
		t.Errorf("NewVector mismatch (-got +want):\n%s", diff)
	}
}

func TestTuple_Equals(t *testing.T) {
	zero := NewTuple(0, 0, 0, 0)
	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			for z := 0; z < 2; z++ {
				for w := 0; w < 2; w++ {
					value := NewTuple(float64(x), float64(y), float64(z), float64(w))
					want := x+y+z+w == 0
					if got := zero.Equals(value); got != want {
						t.Errorf("zero.Equals(%v) = %v, want %v", value, got, want)
					}
				}
			}
		}
	}

	if !NewPoint(1, 2, 3).Equals(NewPoint(1+Epsilon/10, 2, 3)) {
		t.Errorf("Expected tuples within epsilon to be equal")
	}
}

func TestTuple_Arithmetic(t *testing.T) {
	tests := []struct {
		name     string
		got      Tuple
		expected Tuple
	}{
		{"point plus vector", NewPoint(3, -2, 5).Add(NewVector(-2, 3, 1)), NewPoint(1, 1, 6)},
		{"point minus point", NewPoint(3, 2, 1).Subtract(NewPoint(5, 6, 7)), NewVector(-2, -4, -6)},
		{"point minus vector", NewPoint(3, 2, 1).Subtract(NewVector(5, 6, 7)), NewPoint(-2, -4, -6)},
		{"vector minus vector", NewVector(3, 2, 1).Subtract(NewVector(5, 6, 7)), NewVector(-2, -4, -6)},
		{"vector plus vector", NewVector(1, 2, 3).Add(NewVector(1, 1, 1)), NewVector(2, 3, 4)},
		{"negate", NewTuple(1, -2, 3, -4).Negate(), NewTuple(-1, 2, -3, 4)},
		{"multiply", NewTuple(1, -2, 3, -4).Multiply(3.5), NewTuple(3.5, -7, 10.5, -14)},
		{"multiply by fraction", NewTuple(1, -2, 3, -4).Multiply(0.5), NewTuple(0.5, -1, 1.5, -2)},
		{"divide", NewTuple(1, -2, 3, -4).Divide(2), NewTuple(0.5, -1, 1.5, -2)},
		{"point plus point is neither", NewPoint(1, 1, 1).Add(NewPoint(1, 1, 1)), NewTuple(2, 2, 2, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.got, tt.expected, approx); diff != "" {
				t.Errorf("mismatch (-got +want):\n%s", diff)
			}
		})
	}
}

func TestTuple_Magnitude(t *testing.T) {
	tests := []struct {
		vector   Tuple
		expected float64
	}{
		{NewVector(1, 0, 0), 1},
		{NewVector(0, 1, 0), 1},
		{NewVector(0, 0, 1), 1},
		{NewVector(1, 2, 3), math.Sqrt(14)},
		{NewVector(-1, -2, -3), math.Sqrt(14)},
	}

	for _, tt := range tests {
		if got := tt.vector.Magnitude(); !ApproxEqual(got, tt.expected) {
			t.Errorf("%v.Magnitude() = %v, want %v", tt.vector, got, tt.expected)
		}
	}
}

func TestTuple_Normalize(t *testing.T) {
	if diff := cmp.Diff(NewVector(4, 0, 0).Normalize(), NewVector(1, 0, 0), approx); diff != "" {
		t.Errorf("mismatch (-got +want):\n%s", diff)
	}

	s := math.Sqrt(14)
	if diff := cmp.Diff(NewVector(1, 2, 3).Normalize(), NewVector(1/s, 2/s, 3/s), approx); diff != "" {
		t.Errorf("mismatch (-got +want):\n%s", diff)
	}

	for _, v := range []Tuple{NewVector(1, 2, 3), NewVector(-0.001, 5, 1e3), NewVector(0, 0, 1e-3)} {
		if m := v.Normalize().Magnitude(); !ApproxEqual(m, 1) {
			t.Errorf("magnitude of normalized %v = %v, want 1", v, m)
		}
	}
}

func TestTuple_NormalizeZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Expected panic normalizing a zero vector")
		}
	}()
	NewVector(0, 0, 0).Normalize()
}

func TestTuple_DotAndCross(t *testing.T) {
	a := NewVector(1, 2, 3)
	b := NewVector(2, 3, 4)

	if got := a.Dot(b); !ApproxEqual(got, 20) {
		t.Errorf("Dot = %v, want 20", got)
	}
	if diff := cmp.Diff(a.Cross(b), NewVector(-1, 2, -1), approx); diff != "" {
		t.Errorf("a x b mismatch (-got +want):\n%s", diff)
	}
	if diff := cmp.Diff(b.Cross(a), NewVector(1, -2, 1), approx); diff != "" {
		t.Errorf("b x a mismatch (-got +want):\n%s", diff)
	}

	pairs := [][2]Tuple{
		{NewVector(1, 0, 0), NewVector(0, 1, 0)},
		{NewVector(-3, 7, 0.5), NewVector(2, 2, -9)},
		{NewVector(0.1, 0.2, 0.3), NewVector(3, 2, 1)},
	}
	for _, p := range pairs {
		if !p[0].Cross(p[1]).Equals(p[1].Cross(p[0]).Negate()) {
			t.Errorf("Expected cross(%v, %v) to be anticommutative", p[0], p[1])
		}
	}
}

func TestTuple_Reflect(t *testing.T) {
	tests := []struct {
		name     string
		v        Tuple
		normal   Tuple
		expected Tuple
	}{
		{
			name:     "approaching at 45 degrees",
			v:        NewVector(1, -1, 0),
			normal:   NewVector(0, 1, 0),
			expected: NewVector(1, 1, 0),
		},
		{
			name:     "off a slanted surface",
			v:        NewVector(0, -1, 0),
			normal:   NewVector(math.Sqrt2/2, math.Sqrt2/2, 0),
			expected: NewVector(1, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.v.Reflect(tt.normal), tt.expected, approx); diff != "" {
				t.Errorf("mismatch (-got +want):\n%s", diff)
			}
		})
	}
}
