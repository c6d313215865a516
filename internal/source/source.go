// Package source acquires before/after raster pairs for the pipeline.
//
// Acquisition is an external collaborator of the change pipeline: the
// pipeline consumes two same-shape single-band rasters and does not
// care where they came from. This package provides the seam, a small
// Source interface, with three local implementations: a two-file
// reader, a scene-directory compositor, and a synthetic generator for
// demo runs. Failures surface as AcquisitionError; the pipeline never
// interprets them.
package source

import (
	"fmt"

	"github.com/telluris/satdiff/internal/raster"
)

// Meta describes how an acquired pair was assembled.
type Meta struct {
	// DateRange covers the acquisition window as
	// "YYYY-MM-DD to YYYY-MM-DD". Empty when dates are unknown.
	DateRange string

	// Scenes is the number of scene files consumed.
	Scenes int
}

// Pair is a before/after raster pair ready for the pipeline.
type Pair struct {
	Before *raster.Grid
	After  *raster.Grid
	Meta   Meta
}

// Source acquires a before/after pair.
type Source interface {
	Acquire() (*Pair, error)
}

// AcquisitionError reports an upstream imagery failure.
type AcquisitionError struct {
	Source string
	Err    error
}

func (e *AcquisitionError) Error() string {
	return fmt.Sprintf("acquire from %s: %v", e.Source, e.Err)
}

func (e *AcquisitionError) Unwrap() error { return e.Err }
