package chaos

import (
	"image"

	"github.com/matzehuels/triangler/pkg/canvas"
)

// ColorSource decides what color to plot at a given coordinate. It is
// selected once before the walk starts and must not change during it.
type ColorSource interface {
	// ColorAt returns the color for the pixel at (x, y).
	ColorAt(x, y int) canvas.RGB
}

// Constant is a ColorSource that applies the same color to every pixel.
type Constant canvas.RGB

// ColorAt implements ColorSource.
func (c Constant) ColorAt(x, y int) canvas.RGB { return canvas.RGB(c) }

// ImageSampled is a ColorSource that samples a pre-loaded image at the pixel
// being plotted. The image is typically the original (colored) seed, while
// the canvas background holds its darkened grayscale conversion; sampling
// the original keeps the plotted dots visible against that background.
type ImageSampled struct {
	img image.Image
	min image.Point
}

// NewImageSampled wraps img as a per-coordinate color source. Coordinates are
// translated by the image's bounds origin, so images not anchored at (0, 0)
// sample correctly.
func NewImageSampled(img image.Image) *ImageSampled {
	return &ImageSampled{img: img, min: img.Bounds().Min}
}

// ColorAt implements ColorSource. Coordinates outside the image yield black.
func (s *ImageSampled) ColorAt(x, y int) canvas.RGB {
	p := image.Pt(x+s.min.X, y+s.min.Y)
	if !p.In(s.img.Bounds()) {
		return canvas.RGB{}
	}
	r, g, b, _ := s.img.At(p.X, p.Y).RGBA()
	return canvas.RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}
