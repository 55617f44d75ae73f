package renderer

import (
	"image"
	"io"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/xerrors"
)

// Upscale enlarges the image by an integer factor with nearest-neighbour
// sampling so pixels stay sharp. A factor of 1 or less returns img unchanged.
func Upscale(img image.Image, factor int) image.Image {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	return imaging.Resize(img, b.Dx()*factor, b.Dy()*factor, imaging.NearestNeighbor)
}

// WritePNG encodes the canvas as PNG, upscaled by factor
func WritePNG(w io.Writer, c *Canvas, factor int) error {
	dc := gg.NewContextForImage(Upscale(c.ToImage(), factor))
	if err := dc.EncodePNG(w); err != nil {
		return xerrors.Errorf("while encoding PNG: %w", err)
	}
	return nil
}

// SavePNG writes the canvas to a PNG file, upscaled by factor
func SavePNG(path string, c *Canvas, factor int) error {
	if err := gg.SavePNG(path, Upscale(c.ToImage(), factor)); err != nil {
		return xerrors.Errorf("while saving %s: %w", path, err)
	}
	return nil
}
