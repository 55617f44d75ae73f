package scene

import (
	"bytes"
	"errors"
	"io"
	"math"
	"os"

	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// FileConfig is the on-disk YAML form of a scene.
//
//	name: Three spheres
//	width: 320
//	height: 200
//	light:
//	  position: [-10, 10, -10]
//	spheres:
//	  - material: {color: [1, 0.2, 1]}
//	    transform:
//	      - scale: [0.5, 0.5, 0.5]
//	      - translate: [1, 0, 0]
type FileConfig struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Group       string            `yaml:"group"`
	Width       int               `yaml:"width"`
	Height      int               `yaml:"height"`
	Shading     string            `yaml:"shading"`
	Projection  *ProjectionConfig `yaml:"projection"`
	Light       *LightConfig      `yaml:"light"`
	Spheres     []SphereConfig    `yaml:"spheres"`
}

type ProjectionConfig struct {
	Origin   []float64 `yaml:"origin"`
	WallZ    *float64  `yaml:"wall-z"`
	WallSize *float64  `yaml:"wall-size"`
	Center   []float64 `yaml:"center"`
	Sampling string    `yaml:"sampling"`
}

type LightConfig struct {
	Position  []float64 `yaml:"position"`
	Intensity []float64 `yaml:"intensity"`
}

type SphereConfig struct {
	Material  MaterialConfig    `yaml:"material"`
	Transform []TransformConfig `yaml:"transform"`
}

// MaterialConfig fields left out keep their DefaultMaterial values
type MaterialConfig struct {
	Color     []float64 `yaml:"color"`
	Ambient   *float64  `yaml:"ambient"`
	Diffuse   *float64  `yaml:"diffuse"`
	Specular  *float64  `yaml:"specular"`
	Shininess *float64  `yaml:"shininess"`
}

// TransformConfig is one step of a transform list. Exactly one field must be set.
// Rotations are in degrees.
type TransformConfig struct {
	Translate []float64 `yaml:"translate"`
	Scale     []float64 `yaml:"scale"`
	RotateX   *float64  `yaml:"rotate-x"`
	RotateY   *float64  `yaml:"rotate-y"`
	RotateZ   *float64  `yaml:"rotate-z"`
	Shear     []float64 `yaml:"shear"`
}

// ParseConfig decodes a YAML scene description, rejecting unknown fields
func ParseConfig(r io.Reader) (*FileConfig, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	cfg := &FileConfig{}
	if err := dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return nil, xerrors.Errorf("while decoding scene: %w", err)
	}
	return cfg, nil
}

// LoadFile reads and builds the scene stored at path
func LoadFile(path string, ids *geometry.IDAllocator) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, xerrors.Errorf("while reading scene file: %w", err)
	}
	cfg, err := ParseConfig(bytes.NewReader(data))
	if err != nil {
		return nil, xerrors.Errorf("while parsing %s: %w", path, err)
	}
	if cfg.Name == "" {
		cfg.Name = sceneIDFromPath(path)
	}
	s, err := cfg.Build(ids)
	if err != nil {
		return nil, xerrors.Errorf("while building %s: %w", path, err)
	}
	return s, nil
}

// Build converts the configuration into a validated scene
func (c *FileConfig) Build(ids *geometry.IDAllocator) (*Scene, error) {
	width, height := c.Width, c.Height
	if width == 0 {
		width = defaultWidth
	}
	if height == 0 {
		height = defaultHeight
	}

	world := NewWorld()
	s := NewScene(c.Name, width, height, world)

	shading, err := ParseShading(c.Shading)
	if err != nil {
		return nil, err
	}
	s.Shading = shading

	if c.Projection != nil {
		if s.Projection, err = c.Projection.build(); err != nil {
			return nil, xerrors.Errorf("while reading projection: %w", err)
		}
	}

	if c.Light != nil {
		light, err := c.Light.build()
		if err != nil {
			return nil, xerrors.Errorf("while reading light: %w", err)
		}
		world.Light = &light
	}

	for i, sc := range c.Spheres {
		sphere, err := sc.build(ids)
		if err != nil {
			return nil, xerrors.Errorf("while reading sphere %d: %w", i, err)
		}
		world.AddObject(sphere)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (p *ProjectionConfig) build() (Projection, error) {
	proj := DefaultProjection()
	if p.Origin != nil {
		x, y, z, err := triple("origin", p.Origin)
		if err != nil {
			return proj, err
		}
		proj.Origin = core.NewPoint(x, y, z)
	}
	if p.WallZ != nil {
		proj.WallZ = *p.WallZ
	}
	if p.WallSize != nil {
		proj.WallSize = *p.WallSize
	}
	if p.Center != nil {
		if len(p.Center) != 2 {
			return proj, xerrors.Errorf("center needs 2 values, got %d", len(p.Center))
		}
		proj.CenterX, proj.CenterY = p.Center[0], p.Center[1]
	}
	sampling, err := ParseSampling(p.Sampling)
	if err != nil {
		return proj, err
	}
	proj.Sampling = sampling
	return proj, nil
}

func (l *LightConfig) build() (lights.PointLight, error) {
	x, y, z, err := triple("position", l.Position)
	if err != nil {
		return lights.PointLight{}, err
	}
	intensity := core.White
	if l.Intensity != nil {
		r, g, b, err := triple("intensity", l.Intensity)
		if err != nil {
			return lights.PointLight{}, err
		}
		intensity = core.NewColor(r, g, b)
	}
	return lights.NewPointLight(core.NewPoint(x, y, z), intensity), nil
}

func (sc *SphereConfig) build(ids *geometry.IDAllocator) (geometry.Sphere, error) {
	sphere := geometry.NewSphere(ids)

	m, err := sc.Material.build()
	if err != nil {
		return sphere, xerrors.Errorf("while reading material: %w", err)
	}
	sphere.Material = m

	steps := make([]core.Matrix4, 0, len(sc.Transform))
	for i, tc := range sc.Transform {
		step, err := tc.build()
		if err != nil {
			return sphere, xerrors.Errorf("while reading transform step %d: %w", i, err)
		}
		steps = append(steps, step)
	}
	if len(steps) > 0 {
		sphere.Transform = core.Chain(steps...)
	}
	return sphere, nil
}

func (mc *MaterialConfig) build() (material.Material, error) {
	m := material.DefaultMaterial()
	if mc.Color != nil {
		r, g, b, err := triple("color", mc.Color)
		if err != nil {
			return m, err
		}
		m.Color = core.NewColor(r, g, b)
	}
	if mc.Ambient != nil {
		m.Ambient = *mc.Ambient
	}
	if mc.Diffuse != nil {
		m.Diffuse = *mc.Diffuse
	}
	if mc.Specular != nil {
		m.Specular = *mc.Specular
	}
	if mc.Shininess != nil {
		m.Shininess = *mc.Shininess
	}
	return m, m.Validate()
}

func (tc *TransformConfig) build() (core.Matrix4, error) {
	var (
		result core.Matrix4
		set    int
		err    error
	)

	if tc.Translate != nil {
		set++
		var x, y, z float64
		x, y, z, err = triple("translate", tc.Translate)
		result = core.Translation(x, y, z)
	}
	if tc.Scale != nil {
		set++
		var x, y, z float64
		x, y, z, err = triple("scale", tc.Scale)
		result = core.Scaling(x, y, z)
	}
	if tc.RotateX != nil {
		set++
		result = core.RotationX(degrees(*tc.RotateX))
	}
	if tc.RotateY != nil {
		set++
		result = core.RotationY(degrees(*tc.RotateY))
	}
	if tc.RotateZ != nil {
		set++
		result = core.RotationZ(degrees(*tc.RotateZ))
	}
	if tc.Shear != nil {
		set++
		if len(tc.Shear) != 6 {
			err = xerrors.Errorf("shear needs 6 values, got %d", len(tc.Shear))
		} else {
			s := tc.Shear
			result = core.Shearing(s[0], s[1], s[2], s[3], s[4], s[5])
		}
	}

	if err != nil {
		return core.Matrix4{}, err
	}
	if set != 1 {
		return core.Matrix4{}, xerrors.Errorf("transform step must set exactly one operation, got %d", set)
	}
	return result, nil
}

func triple(field string, v []float64) (float64, float64, float64, error) {
	if len(v) != 3 {
		return 0, 0, 0, xerrors.Errorf("%s needs 3 values, got %d", field, len(v))
	}
	return v[0], v[1], v[2], nil
}

func degrees(d float64) float64 {
	return d * math.Pi / 180
}
