package raster

import "fmt"

// ShapeError reports a raster whose shape cannot be processed, such as
// a grid with no cells or row data of uneven length.
type ShapeError struct {
	Width  int
	Height int
	Reason string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("raster shape %dx%d: %s", e.Width, e.Height, e.Reason)
}

// ShapeMismatchError reports two rasters whose dimensions must agree
// but do not.
type ShapeMismatchError struct {
	AWidth, AHeight int
	BWidth, BHeight int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("raster shapes differ: %dx%d vs %dx%d",
		e.AWidth, e.AHeight, e.BWidth, e.BHeight)
}
