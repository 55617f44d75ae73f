package scene

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
)

const (
	defaultWidth  = 256
	defaultHeight = 256
)

// NewDefaultScene creates a single magenta unit sphere lit from the upper left
func NewDefaultScene(ids *geometry.IDAllocator) *Scene {
	sphere := geometry.NewSphere(ids)
	sphere.Material = materialFor(core.NewColor(1, 0.2, 1), 0.9, 0.9)

	light := lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White)

	world := NewWorld()
	world.Light = &light
	world.AddObject(sphere)

	return NewScene("default", defaultWidth, defaultHeight, world)
}

// NewWorldScene renders the two concentric spheres of NewDefaultWorld
func NewWorldScene(ids *geometry.IDAllocator) *Scene {
	return NewScene("world", defaultWidth, defaultHeight, NewDefaultWorld(ids))
}

// NewSilhouetteScene creates a large sphere drawn as a flat cyan disc
// against a black background. No light is needed. Pixel (x, y) is aimed
// along (x-128, y-128, 135) from the eye.
func NewSilhouetteScene(ids *geometry.IDAllocator) *Scene {
	sphere := geometry.NewSphere(ids)
	sphere.Transform = core.Scaling(25, 25, 25)
	sphere.Material.Color = core.NewColor(0, 0.9, 1)

	world := NewWorld()
	world.AddObject(sphere)

	s := NewScene("silhouette", defaultWidth, defaultHeight, world)
	s.Shading = ShadingFlat
	s.Projection = Projection{
		Origin:   core.NewPoint(14, 19, -75),
		WallZ:    60,
		WallSize: 256,
		CenterX:  14,
		CenterY:  19,
		Sampling: SampleCorners,
	}
	return s
}
