package scene

import (
	"math"

	"golang.org/x/xerrors"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Shading selects how a hit is turned into a pixel color
type Shading int

const (
	ShadingPhong Shading = iota // full Phong lighting
	ShadingFlat                 // material color of the hit object, no lighting
)

func (s Shading) String() string {
	switch s {
	case ShadingPhong:
		return "phong"
	case ShadingFlat:
		return "flat"
	default:
		return "unknown"
	}
}

// ParseShading converts a shading name to its Shading value
func ParseShading(name string) (Shading, error) {
	switch name {
	case "", "phong":
		return ShadingPhong, nil
	case "flat":
		return ShadingFlat, nil
	default:
		return 0, xerrors.Errorf("unknown shading %q", name)
	}
}

// Sampling selects where in a pixel the ray is aimed and which way image rows run
type Sampling int

const (
	SampleCenters Sampling = iota // pixel centers, row 0 at the top of the wall
	SampleCorners                 // pixel corners, row 0 at the bottom of the wall
)

func (s Sampling) String() string {
	switch s {
	case SampleCenters:
		return "centers"
	case SampleCorners:
		return "corners"
	default:
		return "unknown"
	}
}

// ParseSampling converts a sampling name to its Sampling value
func ParseSampling(name string) (Sampling, error) {
	switch name {
	case "", "centers":
		return SampleCenters, nil
	case "corners":
		return SampleCorners, nil
	default:
		return 0, xerrors.Errorf("unknown sampling %q", name)
	}
}

// Projection casts rays from a single eye point through a square wall
// perpendicular to the z axis. The wall is centered on (CenterX, CenterY).
type Projection struct {
	Origin   core.Tuple // eye point
	WallZ    float64    // z coordinate of the wall
	WallSize float64    // world-space extent of the wall along the longer image side
	CenterX  float64
	CenterY  float64
	Sampling Sampling
}

// DefaultProjection returns the eye at (0,0,-5) looking through a 7 unit wall at z=10
func DefaultProjection() Projection {
	return Projection{
		Origin:   core.NewPoint(0, 0, -5),
		WallZ:    10,
		WallSize: 7,
	}
}

// RayForPixel returns the ray through pixel (x, y) of a width x height image
func (p Projection) RayForPixel(x, y, width, height int) core.Ray {
	pixelSize := p.WallSize / float64(max(width, height))

	var worldX, worldY float64
	switch p.Sampling {
	case SampleCorners:
		worldX = pixelSize * (float64(x) - float64(width)/2)
		worldY = pixelSize * (float64(y) - float64(height)/2)
	default:
		worldX = pixelSize * (float64(x) + 0.5 - float64(width)/2)
		worldY = pixelSize * (float64(height)/2 - float64(y) - 0.5)
	}

	target := core.NewPoint(p.CenterX+worldX, p.CenterY+worldY, p.WallZ)
	return core.NewRay(p.Origin, target.Subtract(p.Origin).Normalize())
}

// Validate reports whether the projection can produce rays
func (p Projection) Validate() error {
	if !p.Origin.IsPoint() {
		return xerrors.Errorf("projection origin %v is not a point", p.Origin)
	}
	if !(p.WallSize > 0) || math.IsInf(p.WallSize, 0) {
		return xerrors.Errorf("wall size must be positive, got %v", p.WallSize)
	}
	if math.IsNaN(p.WallZ) || math.IsInf(p.WallZ, 0) {
		return xerrors.Errorf("wall z must be finite, got %v", p.WallZ)
	}
	if math.IsNaN(p.CenterX) || math.IsInf(p.CenterX, 0) || math.IsNaN(p.CenterY) || math.IsInf(p.CenterY, 0) {
		return xerrors.Errorf("wall center (%v, %v) must be finite", p.CenterX, p.CenterY)
	}
	if p.Sampling != SampleCenters && p.Sampling != SampleCorners {
		return xerrors.Errorf("unknown sampling %d", int(p.Sampling))
	}
	if core.ApproxEqual(p.WallZ, p.Origin.Z) {
		return xerrors.Errorf("wall z %v coincides with the eye", p.WallZ)
	}
	return nil
}

// Scene contains all the elements needed for rendering
type Scene struct {
	Name       string
	Width      int
	Height     int
	World      *World
	Projection Projection
	Shading    Shading
}

// NewScene creates a scene of the given size around a world using the default projection
func NewScene(name string, width, height int, world *World) *Scene {
	return &Scene{
		Name:       name,
		Width:      width,
		Height:     height,
		World:      world,
		Projection: DefaultProjection(),
		Shading:    ShadingPhong,
	}
}

// GetSize returns the image dimensions
func (s *Scene) GetSize() (int, int) {
	return s.Width, s.Height
}

// SetSize overrides the image dimensions
func (s *Scene) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// RayForPixel returns the primary ray for pixel (x, y)
func (s *Scene) RayForPixel(x, y int) core.Ray {
	return s.Projection.RayForPixel(x, y, s.Width, s.Height)
}

// ColorAt returns the color seen along a primary ray
func (s *Scene) ColorAt(ray core.Ray) core.Color {
	col, _ := s.Trace(ray)
	return col
}

// Trace returns the color seen along ray and whether it hit anything.
// A miss is black.
func (s *Scene) Trace(ray core.Ray) (core.Color, bool) {
	hit, ok := s.World.Intersect(ray).Hit()
	if !ok {
		return core.Black, false
	}
	if s.Shading == ShadingFlat {
		return hit.Object.GetMaterial().Color, true
	}
	return s.World.ShadeHit(ray, hit), true
}

// Validate checks the scene before it is handed to a renderer
func (s *Scene) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return xerrors.Errorf("image size must be positive, got %dx%d", s.Width, s.Height)
	}
	if s.World == nil {
		return xerrors.New("scene has no world")
	}
	if err := s.Projection.Validate(); err != nil {
		return xerrors.Errorf("while validating projection: %w", err)
	}
	for i, shape := range s.World.Objects {
		if err := shape.GetMaterial().Validate(); err != nil {
			return xerrors.Errorf("while validating material of object %d: %w", i, err)
		}
		if !shape.GetTransform().IsInvertible() {
			return xerrors.Errorf("object %d has a singular transform", i)
		}
	}
	return nil
}
