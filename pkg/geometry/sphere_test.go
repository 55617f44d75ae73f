package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, core.Epsilon)

func TestSphere_Defaults(t *testing.T) {
	s := NewSphere(NewIDAllocator())

	if !s.GetTransform().Equals(core.IdentityMatrix()) {
		t.Errorf("Expected identity transform, got %v", s.GetTransform())
	}
	if !s.GetMaterial().Equals(material.DefaultMaterial()) {
		t.Errorf("Expected default material, got %+v", s.GetMaterial())
	}
	if s.Kind() != KindSphere {
		t.Errorf("Expected kind %v, got %v", KindSphere, s.Kind())
	}
	if s.ID() != 1 {
		t.Errorf("Expected first id to be 1, got %d", s.ID())
	}
}

func TestSphere_AssignTransformAndMaterial(t *testing.T) {
	s := NewSphere(NewIDAllocator())
	transform := core.Translation(2, 3, 4)
	s.Transform = transform

	m := material.DefaultMaterial()
	m.Ambient = 1
	s.Material = m

	if !s.GetTransform().Equals(transform) {
		t.Errorf("Expected transform %v, got %v", transform, s.GetTransform())
	}
	if !s.GetMaterial().Equals(m) {
		t.Errorf("Expected material %+v, got %+v", m, s.GetMaterial())
	}
}

func TestSphere_Intersect(t *testing.T) {
	tests := []struct {
		name      string
		origin    core.Tuple
		direction core.Tuple
		transform core.Matrix4
		expected  []float64
	}{
		{
			name:      "through the center",
			origin:    core.NewPoint(0, 0, -5),
			direction: core.NewVector(0, 0, 1),
			transform: core.IdentityMatrix(),
			expected:  []float64{4, 6},
		},
		{
			name:      "tangent",
			origin:    core.NewPoint(0, 1, -5),
			direction: core.NewVector(0, 0, 1),
			transform: core.IdentityMatrix(),
			expected:  []float64{5, 5},
		},
		{
			name:      "miss",
			origin:    core.NewPoint(0, 2, -5),
			direction: core.NewVector(0, 0, 1),
			transform: core.IdentityMatrix(),
			expected:  []float64{},
		},
		{
			name:      "origin inside",
			origin:    core.NewPoint(0, 0, 0),
			direction: core.NewVector(0, 0, 1),
			transform: core.IdentityMatrix(),
			expected:  []float64{-1, 1},
		},
		{
			name:      "sphere behind ray",
			origin:    core.NewPoint(0, 0, 5),
			direction: core.NewVector(0, 0, 1),
			transform: core.IdentityMatrix(),
			expected:  []float64{-6, -4},
		},
		{
			name:      "scaled sphere",
			origin:    core.NewPoint(0, 0, -5),
			direction: core.NewVector(0, 0, 1),
			transform: core.Scaling(2, 2, 2),
			expected:  []float64{3, 7},
		},
		{
			name:      "translated sphere",
			origin:    core.NewPoint(0, 0, -5),
			direction: core.NewVector(0, 0, 1),
			transform: core.Translation(5, 0, 0),
			expected:  []float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSphere(NewIDAllocator())
			s.Transform = tt.transform

			xs := s.Intersect(core.NewRay(tt.origin, tt.direction))
			if diff := cmp.Diff(xs.Ts(), tt.expected, approx); diff != "" {
				t.Errorf("t values mismatch (-got +want):\n%s", diff)
			}
			for _, x := range xs {
				if !SameShape(x.Object, s) {
					t.Errorf("Expected intersection object to be sphere %d, got %d", s.ID(), x.Object.ID())
				}
			}
		})
	}
}

func TestSphere_IntersectDoesNotMutateRay(t *testing.T) {
	s := NewSphere(NewIDAllocator())
	s.Transform = core.Scaling(2, 2, 2)
	ray := core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))

	s.Intersect(ray)

	if !ray.Origin.Equals(core.NewPoint(0, 0, -5)) || !ray.Direction.Equals(core.NewVector(0, 0, 1)) {
		t.Errorf("Ray was modified: %+v", ray)
	}
}

func TestSphere_NormalAt(t *testing.T) {
	f := math.Sqrt(3) / 3

	tests := []struct {
		name      string
		transform core.Matrix4
		point     core.Tuple
		expected  core.Tuple
	}{
		{"x axis", core.IdentityMatrix(), core.NewPoint(1, 0, 0), core.NewVector(1, 0, 0)},
		{"y axis", core.IdentityMatrix(), core.NewPoint(0, 1, 0), core.NewVector(0, 1, 0)},
		{"z axis", core.IdentityMatrix(), core.NewPoint(0, 0, 1), core.NewVector(0, 0, 1)},
		{"nonaxial", core.IdentityMatrix(), core.NewPoint(f, f, f), core.NewVector(f, f, f)},
		{
			"translated",
			core.Translation(0, 1, 0),
			core.NewPoint(0, 1.70711, -0.70711),
			core.NewVector(0, 0.70711, -0.70711),
		},
		{
			"scaled and rotated",
			core.Scaling(1, 0.5, 1).Multiply(core.RotationZ(math.Pi / 5)),
			core.NewPoint(0, math.Sqrt2/2, -math.Sqrt2/2),
			core.NewVector(0, 0.97014, -0.24254),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSphere(NewIDAllocator())
			s.Transform = tt.transform

			n := s.NormalAt(tt.point)
			if !n.Equals(tt.expected) {
				t.Errorf("NormalAt(%v) = %v, want %v", tt.point, n, tt.expected)
			}
			if !n.Equals(n.Normalize()) {
				t.Errorf("Expected normal %v to be normalized", n)
			}
			if !n.IsVector() {
				t.Errorf("Expected normal %v to be a vector", n)
			}
		})
	}
}
