package geometry

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIntersection_New(t *testing.T) {
	s := NewSphere(NewIDAllocator())
	i := NewIntersection(3.5, s)

	if i.T != 3.5 {
		t.Errorf("Expected t=3.5, got %v", i.T)
	}
	if !SameShape(i.Object, s) {
		t.Errorf("Expected object to be the sphere")
	}
}

func TestIntersections_Hit(t *testing.T) {
	tests := []struct {
		name     string
		ts       []float64
		expected float64
		hit      bool
	}{
		{"all positive", []float64{1, 2}, 1, true},
		{"some negative", []float64{1, -1}, 1, true},
		{"all negative", []float64{-2, -1}, 0, false},
		{"unsorted", []float64{5, 7, -3, 2}, 2, true},
		{"zero counts", []float64{0, 3}, 0, true},
		{"empty", []float64{}, 0, false},
		{"nan ignored", []float64{math.NaN(), 4}, 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSphere(NewIDAllocator())
			var xs Intersections
			for _, v := range tt.ts {
				xs = append(xs, NewIntersection(v, s))
			}

			hit, ok := xs.Hit()
			if ok != tt.hit {
				t.Fatalf("Hit() ok = %v, want %v", ok, tt.hit)
			}
			if ok && hit.T != tt.expected {
				t.Errorf("Hit().T = %v, want %v", hit.T, tt.expected)
			}
		})
	}
}

func TestIntersections_HitOrderIndependent(t *testing.T) {
	ids := NewIDAllocator()
	a, b := NewSphere(ids), NewSphere(ids)
	forward := Intersections{NewIntersection(5, a), NewIntersection(-3, a), NewIntersection(2, b), NewIntersection(7, b)}
	backward := Intersections{forward[3], forward[2], forward[1], forward[0]}

	h1, _ := forward.Hit()
	h2, _ := backward.Hit()
	if h1.T != h2.T || !SameShape(h1.Object, h2.Object) {
		t.Errorf("Hit depends on order: %v vs %v", h1.T, h2.T)
	}
	if !SameShape(h1.Object, b) {
		t.Errorf("Expected hit on sphere %d, got %d", b.ID(), h1.Object.ID())
	}
}

func TestIntersections_Sort(t *testing.T) {
	ids := NewIDAllocator()
	a, b, c := NewSphere(ids), NewSphere(ids), NewSphere(ids)
	xs := Intersections{
		NewIntersection(6, a),
		NewIntersection(4.5, b),
		NewIntersection(4, a),
		NewIntersection(4.5, c),
		NewIntersection(-1, b),
	}

	xs.Sort()

	if diff := cmp.Diff(xs.Ts(), []float64{-1, 4, 4.5, 4.5, 6}); diff != "" {
		t.Errorf("sorted t values mismatch (-got +want):\n%s", diff)
	}
	// Equal t values keep insertion order
	if !SameShape(xs[2].Object, b) || !SameShape(xs[3].Object, c) {
		t.Errorf("Expected stable order for equal t, got ids %d, %d", xs[2].Object.ID(), xs[3].Object.ID())
	}
}
