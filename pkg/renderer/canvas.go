package renderer

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Canvas is a fixed-size grid of colors, black until written
type Canvas struct {
	width, height int
	pixels        []core.Color
}

// NewCanvas creates a black canvas. Negative dimensions panic.
func NewCanvas(width, height int) *Canvas {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("canvas size %dx%d is negative", width, height))
	}
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]core.Color, width*height),
	}
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

// WritePixel sets the color at (x, y); row 0 is the top of the image
func (c *Canvas) WritePixel(x, y int, col core.Color) {
	c.pixels[c.index(x, y)] = col
}

// PixelAt returns the color at (x, y)
func (c *Canvas) PixelAt(x, y int) core.Color {
	return c.pixels[c.index(x, y)]
}

func (c *Canvas) index(x, y int) int {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		panic(fmt.Sprintf("pixel (%d, %d) outside %dx%d canvas", x, y, c.width, c.height))
	}
	return y*c.width + x
}

// ToImage quantizes the canvas into an opaque RGBA image
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			r, g, b := quantize(c.PixelAt(x, y))
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

// quantize maps each channel from [0,1] onto 0..255, clamping out-of-range values
func quantize(col core.Color) (uint8, uint8, uint8) {
	col = col.Clamp(0, 1)
	return channel(col.R), channel(col.G), channel(col.B)
}

func channel(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return uint8(math.Round(v * 255))
}
