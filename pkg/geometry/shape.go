package geometry

import (
	"fmt"
	"sync/atomic"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Kind identifies the concrete shape behind a Shape value
type Kind int

const (
	KindSphere Kind = iota + 1
)

func (k Kind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Shape interface for objects that can be intersected by rays.
//
// Shapes are compared by ID, never structurally: two spheres with the same
// transform and material are still different shapes.
type Shape interface {
	ID() int
	Kind() Kind
	GetTransform() core.Matrix4
	GetMaterial() material.Material

	// Intersect returns every intersection of a world-space ray with the
	// shape, in ascending t order for this shape only
	Intersect(ray core.Ray) Intersections

	// NormalAt returns the unit world-space surface normal at a world-space point
	NormalAt(worldPoint core.Tuple) core.Tuple
}

// SameShape reports whether a and b refer to the same shape
func SameShape(a, b Shape) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Kind() == b.Kind() && a.ID() == b.ID()
}

// IDAllocator hands out unique shape ids starting at 1. It is safe for
// concurrent use; the zero value is ready to use.
type IDAllocator struct {
	last atomic.Int64
}

// NewIDAllocator creates a new allocator
func NewIDAllocator() *IDAllocator {
	return &IDAllocator{}
}

// Next returns the next unused id
func (a *IDAllocator) Next() int {
	return int(a.last.Add(1))
}
