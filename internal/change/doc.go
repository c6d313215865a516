// Package change implements the change-detection pipeline core.
//
// The pipeline is a fixed sequence of pure transforms over two
// same-shape single-band rasters:
//
//  1. Normalize each raster independently to the 8-bit range
//  2. Per-cell absolute difference of the normalized rasters
//  3. Binarize the difference at a threshold (strict greater-than)
//  4. Morphological opening, then closing, with a 3x3 box element
//  5. Count changed cells and compute the changed-area percentage
//
// No stage is skipped or reordered, every stage allocates its own
// output, and the first failing stage aborts the run. Identical inputs
// always produce bit-identical results; the package holds no state
// between invocations and is safe to call concurrently.
//
// # Error Handling
//
// Precondition violations abort with typed errors: raster.ShapeError
// for empty inputs, raster.ShapeMismatchError for dimension mismatch,
// InvalidParameterError for a threshold outside [0, 255], and
// DivideByZeroError for statistics over a zero-size mask (unreachable
// through Run, which rejects empty rasters at normalization). Degenerate
// numeric cases are policy, not errors: a constant raster normalizes to
// all zero.
package change
