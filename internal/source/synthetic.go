package source

import (
	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/noise"

	"github.com/telluris/satdiff/internal/raster"
)

// Synthetic fabricates a before/after pair so the tool can run end to
// end with no imagery on hand: blurred monochrome noise plays the
// terrain, and the after raster gets a bright plateau stamped into it
// to play a construction site.
type Synthetic struct {
	// Width and Height are the raster dimensions. Non-positive values
	// fall back to 256.
	Width, Height int
}

// Acquire generates the pair. The terrain is random, so repeated calls
// differ, but the stamped site always covers the same cells.
func (s Synthetic) Acquire() (*Pair, error) {
	w, h := s.Width, s.Height
	if w <= 0 {
		w = 256
	}
	if h <= 0 {
		h = 256
	}

	terrain := blur.Gaussian(noise.Generate(w, h, &noise.Options{NoiseFn: noise.Uniform, Monochrome: true}), 3.0)
	before := raster.GridFromImage(terrain)

	// Anchor the terrain extremes at two corners, away from the stamped
	// site. Both rasters then normalize over the same range and the diff
	// stays confined to the stamp.
	st := before.Stats()
	before.Set(0, 0, st.Min)
	before.Set(w-1, h-1, st.Max)

	after := before.Clone()
	stampSite(after)

	return &Pair{Before: before, After: after, Meta: Meta{DateRange: "synthetic pair"}}, nil
}

// stampSite overwrites a centered block, a quarter of each dimension,
// with the raster's maximum value. Using the existing maximum keeps the
// normalization ranges of before and after identical, so the diff is
// confined to the stamped cells.
func stampSite(g *raster.Grid) {
	w, h := g.Width(), g.Height()
	bw, bh := w/4, h/4
	if bw < 1 || bh < 1 {
		return
	}
	x0, y0 := (w-bw)/2, (h-bh)/2

	peak := g.Stats().Max
	for y := y0; y < y0+bh; y++ {
		for x := x0; x < x0+bw; x++ {
			g.Set(x, y, peak)
		}
	}
}
