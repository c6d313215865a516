// Package raster provides the owned raster value types the change
// pipeline operates on, together with the radiometric transforms that
// prepare two acquisitions for comparison.
//
// Two grid types cover the pipeline's needs:
//
//   - Grid: a 2-D float64 raster holding one spectral band at source
//     radiometric scale. This is what an acquisition layer hands over,
//     regardless of the on-disk encoding it decoded from.
//   - Gray: a 2-D uint8 raster in the fixed 0-255 intensity range,
//     produced by Normalize and consumed by Diff.
//
// # Ownership
//
// Every transform allocates and returns a new raster; caller-supplied
// inputs are never written to. There is no shared or cached buffer
// between calls, so the same inputs can be processed repeatedly and
// concurrently from multiple goroutines.
//
// # Coordinate System
//
// Cell coordinates are 0-based with origin at the top-left corner,
// X increasing rightward and Y increasing downward. All grids are
// dense and rectangular; width and height fully describe the shape.
//
// # Error Handling
//
// Shape problems are reported with typed errors: ShapeError for a
// raster that cannot be processed on its own (no cells, ragged rows)
// and ShapeMismatchError when two rasters that must agree in size do
// not. Degenerate values are not errors: normalizing a constant
// raster yields an all-zero result by policy rather than failing.
package raster
