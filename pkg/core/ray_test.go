package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRay_Position(t *testing.T) {
	r := NewRay(NewPoint(2, 3, 4), NewVector(1, 0, 0))

	tests := []struct {
		t        float64
		expected Tuple
	}{
		{0, NewPoint(2, 3, 4)},
		{1, NewPoint(3, 3, 4)},
		{-1, NewPoint(1, 3, 4)},
		{2.5, NewPoint(4.5, 3, 4)},
	}

	for _, tt := range tests {
		if diff := cmp.Diff(r.Position(tt.t), tt.expected, approx); diff != "" {
			t.Errorf("Position(%v) mismatch (-got +want):\n%s", tt.t, diff)
		}
	}
}

func TestRay_Transform(t *testing.T) {
	r := NewRay(NewPoint(1, 2, 3), NewVector(0, 1, 0))

	tests := []struct {
		name     string
		m        Matrix4
		expected Ray
	}{
		{"translate", Translation(3, 4, 5), NewRay(NewPoint(4, 6, 8), NewVector(0, 1, 0))},
		{"scale", Scaling(2, 3, 4), NewRay(NewPoint(2, 6, 12), NewVector(0, 3, 0))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(r.Transform(tt.m), tt.expected, approx); diff != "" {
				t.Errorf("mismatch (-got +want):\n%s", diff)
			}
		})
	}

	// The original ray is untouched
	if diff := cmp.Diff(r, NewRay(NewPoint(1, 2, 3), NewVector(0, 1, 0))); diff != "" {
		t.Errorf("original ray mutated (-got +want):\n%s", diff)
	}
}
