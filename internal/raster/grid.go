package raster

import "image"

// Grid is a single-band raster of float64 samples in row-major order.
//
// A Grid carries values at whatever radiometric scale its source used;
// Normalize brings them into the comparable 0-255 range. The zero-size
// grid is valid as a value but is rejected by every transform.
type Grid struct {
	width  int
	height int
	values []float64
}

// NewGrid returns a zero-filled grid of the given dimensions.
// Non-positive dimensions yield an empty grid.
func NewGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		return &Grid{}
	}
	return &Grid{
		width:  width,
		height: height,
		values: make([]float64, width*height),
	}
}

// GridFromRows builds a grid from row slices, copying the data.
//
// All rows must have the same length; ragged input is rejected with a
// ShapeError, zero-length rows included. An empty slice produces an
// empty grid.
func GridFromRows(rows [][]float64) (*Grid, error) {
	if len(rows) == 0 {
		return &Grid{}, nil
	}
	width := len(rows[0])
	for _, row := range rows {
		if len(row) != width {
			return nil, &ShapeError{Width: len(row), Height: len(rows), Reason: "ragged rows"}
		}
	}
	g := NewGrid(width, len(rows))
	for y, row := range rows {
		copy(g.values[y*width:(y+1)*width], row)
	}
	return g, nil
}

// GridFromImage extracts a single luminance band from an image.
//
// Color pixels are reduced with the ITU-R BT.601 weights
// (0.299*R + 0.587*G + 0.114*B); grayscale pixels keep their native
// value. Samples stay at the decoder's 16-bit scale, which is
// irrelevant downstream because Normalize is scale invariant.
func GridFromImage(img image.Image) *Grid {
	bounds := img.Bounds()
	g := NewGrid(bounds.Dx(), bounds.Dy())
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			r, gr, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			g.values[y*g.width+x] = 0.299*float64(r) + 0.587*float64(gr) + 0.114*float64(b)
		}
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// At returns the sample at (x, y).
func (g *Grid) At(x, y int) float64 { return g.values[y*g.width+x] }

// Set stores a sample at (x, y).
func (g *Grid) Set(x, y int, v float64) { g.values[y*g.width+x] = v }

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	out := &Grid{width: g.width, height: g.height}
	if len(g.values) > 0 {
		out.values = make([]float64, len(g.values))
		copy(out.values, g.values)
	}
	return out
}
