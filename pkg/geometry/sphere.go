package geometry

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Sphere is a unit sphere centered at the object-space origin. It is placed
// in the world entirely through Transform.
type Sphere struct {
	id        int
	Transform core.Matrix4
	Material  material.Material
}

// NewSphere creates a sphere with a fresh id, the identity transform and the default material
func NewSphere(ids *IDAllocator) Sphere {
	return Sphere{
		id:        ids.Next(),
		Transform: core.IdentityMatrix(),
		Material:  material.DefaultMaterial(),
	}
}

func (s Sphere) ID() int                        { return s.id }
func (s Sphere) Kind() Kind                     { return KindSphere }
func (s Sphere) GetTransform() core.Matrix4     { return s.Transform }
func (s Sphere) GetMaterial() material.Material { return s.Material }

// Intersect tests a world-space ray against the sphere.
// A miss yields an empty list, a tangent ray two equal intersections.
func (s Sphere) Intersect(ray core.Ray) Intersections {
	local := ray.Transform(s.Transform.Inverse())

	// Vector from sphere center to ray origin
	sphereToRay := local.Origin.Subtract(core.NewPoint(0, 0, 0))

	// Quadratic equation coefficients: at² + bt + c = 0
	a := local.Direction.Dot(local.Direction)
	b := 2 * local.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return Intersections{}
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)

	return Intersections{
		NewIntersection(t1, s),
		NewIntersection(t2, s),
	}
}

// NormalAt computes the object-space normal and carries it back to world
// space with the inverse transpose of Transform
func (s Sphere) NormalAt(worldPoint core.Tuple) core.Tuple {
	inverse := s.Transform.Inverse()
	objectPoint := inverse.MultiplyTuple(worldPoint)
	objectNormal := objectPoint.Subtract(core.NewPoint(0, 0, 0))

	worldNormal := inverse.Transpose().MultiplyTuple(objectNormal)
	// Translation in the inverse transpose leaks into w
	worldNormal.W = 0
	return worldNormal.Normalize()
}
