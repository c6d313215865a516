package change

import (
	"github.com/telluris/satdiff/internal/morph"
	"github.com/telluris/satdiff/internal/raster"
)

// DefaultThreshold is the binarization threshold used when the caller
// does not configure one.
const DefaultThreshold = 25

// Segment converts a difference raster into a cleaned change mask:
// cells strictly above threshold are marked changed, then a 3x3 box
// opening removes isolated specks and a 3x3 box closing fills small
// holes. The threshold must lie in [0, 255].
func Segment(diff *raster.Gray, threshold int) (*morph.Mask, error) {
	if threshold < 0 || threshold > 255 {
		return nil, &InvalidParameterError{Name: "threshold", Value: threshold, Min: 0, Max: 255}
	}
	el := morph.Box(3, 3)
	mask := binarize(diff, uint8(threshold))
	mask = morph.Open(mask, el)
	mask = morph.Close(mask, el)
	return mask, nil
}

// binarize marks every cell strictly above threshold as changed. Cells
// equal to the threshold stay unchanged.
func binarize(diff *raster.Gray, threshold uint8) *morph.Mask {
	m := morph.NewMask(diff.Width(), diff.Height())
	for y := 0; y < diff.Height(); y++ {
		for x := 0; x < diff.Width(); x++ {
			if diff.At(x, y) > threshold {
				m.SetOn(x, y, true)
			}
		}
	}
	return m
}
