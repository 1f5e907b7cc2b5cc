package canvas

import (
	"image"

	"github.com/disintegration/imaging"
)

// seedDarkenOffset is subtracted from every channel of the grayscale seed so
// dots plotted on top of it remain visible. Units on the 0-255 scale.
const seedDarkenOffset = 50

// FromImage builds a canvas seeded from an existing image.
//
// The seed is resized to width×height when its dimensions differ (Lanczos
// resampling), converted to grayscale, then darkened by a fixed 50-unit
// offset with clamping at zero. The result is the background the fractal is
// drawn over; the original (colored) image is typically kept around for
// per-pixel color sampling.
func FromImage(img image.Image, width, height int) *Canvas {
	b := img.Bounds()
	if b.Dx() != width || b.Dy() != height {
		img = imaging.Resize(img, width, height, imaging.Lanczos)
	}
	gray := imaging.Grayscale(img)

	c := New(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := gray.PixOffset(x, y)
			v := darken(gray.Pix[i])
			c.Set(x, y, RGB{v, v, v})
		}
	}
	return c
}

// darken subtracts seedDarkenOffset from a channel value, clamping at zero.
func darken(v uint8) uint8 {
	if v < seedDarkenOffset {
		return 0
	}
	return v - seedDarkenOffset
}
