package raster

// Diff returns the per-cell absolute difference of two normalized
// rasters. The operation is symmetric and purely local: no cell
// influences any neighbor.
//
// Returns a ShapeMismatchError when the rasters differ in width or
// height.
func Diff(a, b *Gray) (*Gray, error) {
	if a.width != b.width || a.height != b.height {
		return nil, &ShapeMismatchError{
			AWidth: a.width, AHeight: a.height,
			BWidth: b.width, BHeight: b.height,
		}
	}

	out := NewGray(a.width, a.height)
	for i := range a.pix {
		out.pix[i] = absDiff(a.pix[i], b.pix[i])
	}
	return out, nil
}

// absDiff returns |a - b| without intermediate overflow.
func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
