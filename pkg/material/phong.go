package material

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"golang.org/x/xerrors"
)

// Material holds the Phong reflection parameters of a surface
type Material struct {
	Color     core.Color
	Ambient   float64
	Diffuse   float64
	Specular  float64
	Shininess float64
}

// DefaultMaterial returns a white material with ambient 0.1, diffuse 0.9,
// specular 0.9 and shininess 200
func DefaultMaterial() Material {
	return Material{
		Color:     core.White,
		Ambient:   0.1,
		Diffuse:   0.9,
		Specular:  0.9,
		Shininess: 200,
	}
}

// Validate rejects negative coefficients
func (m Material) Validate() error {
	for _, c := range []struct {
		name  string
		value float64
	}{
		{"ambient", m.Ambient},
		{"diffuse", m.Diffuse},
		{"specular", m.Specular},
		{"shininess", m.Shininess},
	} {
		if c.value < 0 || math.IsNaN(c.value) {
			return xerrors.Errorf("material %s must be non-negative, got %v", c.name, c.value)
		}
	}
	return nil
}

// Equals compares all parameters within core.Epsilon
func (m Material) Equals(other Material) bool {
	return m.Color.Equals(other.Color) &&
		core.ApproxEqual(m.Ambient, other.Ambient) &&
		core.ApproxEqual(m.Diffuse, other.Diffuse) &&
		core.ApproxEqual(m.Specular, other.Specular) &&
		core.ApproxEqual(m.Shininess, other.Shininess)
}

// Lighting evaluates the Phong model at position for a single point light.
// eye and normal must be unit vectors. The result is not clamped.
func (m Material) Lighting(light lights.PointLight, position, eye, normal core.Tuple) core.Color {
	effectiveColor := m.Color.Product(light.Intensity)
	lightDir := light.Position.Subtract(position).Normalize()
	ambient := effectiveColor.Multiply(m.Ambient)

	// Light on the other side of the surface contributes only ambient
	lightDotNormal := lightDir.Dot(normal)
	if lightDotNormal < 0 {
		return ambient
	}

	diffuse := effectiveColor.Multiply(m.Diffuse * lightDotNormal)

	specular := core.Black
	reflectDir := lightDir.Negate().Reflect(normal)
	if reflectDotEye := reflectDir.Dot(eye); reflectDotEye > 0 {
		factor := math.Pow(reflectDotEye, m.Shininess)
		specular = light.Intensity.Multiply(m.Specular * factor)
	}

	return ambient.Add(diffuse).Add(specular)
}
