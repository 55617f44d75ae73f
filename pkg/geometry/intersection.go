package geometry

import (
	"cmp"
	"slices"
)

// Intersection records where along a ray a shape was crossed. The shape is
// held by value and stays valid independently of the scene.
type Intersection struct {
	T      float64
	Object Shape
}

// NewIntersection creates a new intersection
func NewIntersection(t float64, object Shape) Intersection {
	return Intersection{T: t, Object: object}
}

// Intersections is an ordered list of intersections. Order is whatever the
// producer used; Hit does not depend on it.
type Intersections []Intersection

// Hit returns the visible intersection: the smallest non-negative t.
// The first minimum found wins on exact ties.
func (xs Intersections) Hit() (Intersection, bool) {
	var hit Intersection
	found := false
	for _, x := range xs {
		// NaN fails this comparison and is never a hit
		if !(x.T >= 0) {
			continue
		}
		if !found || x.T < hit.T {
			hit = x
			found = true
		}
	}
	return hit, found
}

// Sort orders the list by ascending t in place. The sort is stable, so equal
// t values keep their insertion order. NaN values sort first.
func (xs Intersections) Sort() {
	slices.SortStableFunc(xs, func(a, b Intersection) int {
		return cmp.Compare(a.T, b.T)
	})
}

// Ts returns the t values in list order
func (xs Intersections) Ts() []float64 {
	ts := make([]float64, len(xs))
	for i, x := range xs {
		ts[i] = x.T
	}
	return ts
}
