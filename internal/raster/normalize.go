package raster

import "math"

// Normalize linearly rescales a grid into the 0-255 intensity range,
// making acquisitions with different absolute radiometric scales
// comparable.
//
// The minimum sample maps to 0 and the maximum to 255, with every
// other value rounded to the nearest integer in between, so relative
// ordering is preserved. A constant grid has no range to stretch; by
// policy it normalizes to all zeros instead of failing, keeping the
// transform total over well-shaped inputs.
//
// Returns a ShapeError when the grid has no cells.
func Normalize(g *Grid) (*Gray, error) {
	if g.width == 0 || g.height == 0 {
		return nil, &ShapeError{Width: g.width, Height: g.height, Reason: "no cells to normalize"}
	}

	lo, hi := g.values[0], g.values[0]
	for _, v := range g.values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	out := NewGray(g.width, g.height)
	if hi == lo {
		return out, nil
	}

	scale := 255.0 / (hi - lo)
	for i, v := range g.values {
		s := math.Round((v - lo) * scale)
		if s < 0 {
			s = 0
		} else if s > 255 {
			s = 255
		}
		out.pix[i] = uint8(s)
	}
	return out, nil
}
