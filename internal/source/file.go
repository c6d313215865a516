package source

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"

	_ "golang.org/x/image/tiff" // Register TIFF format decoder

	"github.com/telluris/satdiff/internal/raster"
)

// FileSource reads the before and after rasters from two image files
// on disk. TIFF, PNG, JPEG and GIF are supported; band 1 is extracted
// as floating-point samples regardless of the on-disk encoding.
type FileSource struct {
	BeforePath string
	AfterPath  string
}

// Acquire loads both files. The acquisition dates of plain raster
// files are unknown, so Meta carries an empty date range.
func (s FileSource) Acquire() (*Pair, error) {
	before, err := loadGrid(s.BeforePath)
	if err != nil {
		return nil, &AcquisitionError{Source: s.BeforePath, Err: err}
	}
	after, err := loadGrid(s.AfterPath)
	if err != nil {
		return nil, &AcquisitionError{Source: s.AfterPath, Err: err}
	}
	return &Pair{Before: before, After: after, Meta: Meta{Scenes: 2}}, nil
}

// loadGrid decodes one raster file into a float64 grid.
func loadGrid(path string) (*raster.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open raster: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode raster: %w", err)
	}
	g := raster.GridFromImage(img)
	if g.Width() == 0 || g.Height() == 0 {
		return nil, errors.New("raster has no pixels")
	}
	return g, nil
}
