package scene

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// World is the set of objects and the optional single light of a scene.
// It is built once and only read while rendering.
type World struct {
	Light   *lights.PointLight
	Objects []geometry.Shape
}

// NewWorld creates an empty world with no light
func NewWorld() *World {
	return &World{Objects: make([]geometry.Shape, 0)}
}

// NewDefaultWorld creates two concentric spheres lit from the upper left:
// a green unit sphere and a default sphere scaled by one half
func NewDefaultWorld(ids *geometry.IDAllocator) *World {
	outer := geometry.NewSphere(ids)
	outer.Material.Color = core.NewColor(0.6, 1.0, 0.6)
	outer.Material.Diffuse = 0.7
	outer.Material.Specular = 0.2

	inner := geometry.NewSphere(ids)
	inner.Transform = core.Scaling(0.5, 0.5, 0.5)

	light := lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White)

	return &World{
		Light:   &light,
		Objects: []geometry.Shape{outer, inner},
	}
}

// AddObject appends a shape to the world
func (w *World) AddObject(shape geometry.Shape) {
	w.Objects = append(w.Objects, shape)
}

// Intersect tests the ray against every object and returns all
// intersections sorted by ascending t
func (w *World) Intersect(ray core.Ray) geometry.Intersections {
	xs := make(geometry.Intersections, 0, 2*len(w.Objects))
	for _, object := range w.Objects {
		xs = append(xs, object.Intersect(ray)...)
	}
	xs.Sort()
	return xs
}

// ColorAt returns the Phong-shaded color seen along the ray, or black when
// nothing is hit or the world has no light
func (w *World) ColorAt(ray core.Ray) core.Color {
	hit, ok := w.Intersect(ray).Hit()
	if !ok {
		return core.Black
	}
	return w.ShadeHit(ray, hit)
}

// ShadeHit evaluates the lighting at an intersection found along ray
func (w *World) ShadeHit(ray core.Ray, hit geometry.Intersection) core.Color {
	if w.Light == nil {
		return core.Black
	}

	point := ray.Position(hit.T)
	eye := ray.Direction.Negate()
	normal := hit.Object.NormalAt(point)
	// Looking out from inside the shape
	if normal.Dot(eye) < 0 {
		normal = normal.Negate()
	}

	return hit.Object.GetMaterial().Lighting(*w.Light, point, eye.Normalize(), normal)
}

// materialFor is a helper for scene builders
func materialFor(color core.Color, diffuse, specular float64) material.Material {
	m := material.DefaultMaterial()
	m.Color = color
	m.Diffuse = diffuse
	m.Specular = specular
	return m
}
