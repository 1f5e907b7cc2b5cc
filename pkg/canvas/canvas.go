package canvas

import (
	"image"
)

// RGB is a literal 24-bit color triple. No alpha, no color management.
type RGB struct {
	R, G, B uint8
}

// White is the default plotting color when no other color is resolved.
var White = RGB{255, 255, 255}

// Point is an integer pixel coordinate.
type Point struct {
	X, Y int
}

// Canvas is a width×height grid of RGB triples, row-major, 3 bytes per pixel.
// It has exactly one writer during generation and no concurrent readers.
type Canvas struct {
	width  int
	height int
	pix    []uint8
}

// New creates a blank (all-black) canvas of the given dimensions.
// Dimensions must be positive; the caller validates them beforehand.
func New(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*3),
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// In reports whether (x, y) lies within the canvas bounds.
func (c *Canvas) In(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// Set writes the color at (x, y). Out-of-bounds writes are ignored, mirroring
// the stdlib image package contract.
func (c *Canvas) Set(x, y int, col RGB) {
	if !c.In(x, y) {
		return
	}
	i := (y*c.width + x) * 3
	c.pix[i] = col.R
	c.pix[i+1] = col.G
	c.pix[i+2] = col.B
}

// At returns the color at (x, y). Out-of-bounds reads return black.
func (c *Canvas) At(x, y int) RGB {
	if !c.In(x, y) {
		return RGB{}
	}
	i := (y*c.width + x) * 3
	return RGB{c.pix[i], c.pix[i+1], c.pix[i+2]}
}

// Image expands the buffer into an *image.NRGBA (opaque alpha) for encoding.
// The returned image does not share memory with the canvas.
func (c *Canvas) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.width, c.height))
	for i, j := 0, 0; i < len(c.pix); i, j = i+3, j+4 {
		img.Pix[j] = c.pix[i]
		img.Pix[j+1] = c.pix[i+1]
		img.Pix[j+2] = c.pix[i+2]
		img.Pix[j+3] = 0xff
	}
	return img
}

// Bounds returns the canvas rectangle anchored at the origin.
func (c *Canvas) Bounds() image.Rectangle { return image.Rect(0, 0, c.width, c.height) }

// Vertices returns the three fixed triangle corners for a width×height canvas.
// The result depends only on the arguments.
func Vertices(width, height int) [3]Point {
	return [3]Point{
		{X: width / 10, Y: height - height/10},
		{X: width - width/10, Y: height - height/10},
		{X: width / 2, Y: height / 10},
	}
}
