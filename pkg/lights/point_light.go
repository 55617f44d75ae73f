package lights

import "github.com/df07/go-phong-raytracer/pkg/core"

// PointLight emits light of a fixed intensity from a single point in space
type PointLight struct {
	Position  core.Tuple
	Intensity core.Color
}

// NewPointLight creates a new point light
func NewPointLight(position core.Tuple, intensity core.Color) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}

// Type returns LightTypePoint
func (l PointLight) Type() LightType {
	return LightTypePoint
}

// Equals compares position and intensity within core.Epsilon
func (l PointLight) Equals(other PointLight) bool {
	return l.Position.Equals(other.Position) && l.Intensity.Equals(other.Intensity)
}
