package raster

import "image"

// Gray is a single-band raster of uint8 samples in the fixed 0-255
// intensity range, the representation shared by normalized acquisitions
// and their difference image.
type Gray struct {
	width  int
	height int
	pix    []uint8
}

// NewGray returns a zero-filled 8-bit grid of the given dimensions.
// Non-positive dimensions yield an empty grid.
func NewGray(width, height int) *Gray {
	if width <= 0 || height <= 0 {
		return &Gray{}
	}
	return &Gray{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height),
	}
}

// Width returns the number of columns.
func (g *Gray) Width() int { return g.width }

// Height returns the number of rows.
func (g *Gray) Height() int { return g.height }

// At returns the sample at (x, y).
func (g *Gray) At(x, y int) uint8 { return g.pix[y*g.width+x] }

// Set stores a sample at (x, y).
func (g *Gray) Set(x, y int, v uint8) { g.pix[y*g.width+x] = v }

// Clone returns an independent copy of the raster.
func (g *Gray) Clone() *Gray {
	out := &Gray{width: g.width, height: g.height}
	if len(g.pix) > 0 {
		out.pix = make([]uint8, len(g.pix))
		copy(out.pix, g.pix)
	}
	return out
}

// ToImage copies the raster into a standard library grayscale image
// for encoding or display. The returned image owns its pixels.
func (g *Gray) ToImage() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.width, g.height))
	for y := 0; y < g.height; y++ {
		copy(img.Pix[y*img.Stride:y*img.Stride+g.width], g.pix[y*g.width:(y+1)*g.width])
	}
	return img
}
