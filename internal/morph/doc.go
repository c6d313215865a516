// Package morph provides binary mask morphology for change-mask cleanup.
//
// The package operates on Mask, an owned binary raster where "on" cells
// mark detected change. Erosion, dilation, opening and closing are
// parameterized by a structuring Element; the change pipeline uses a
// 3x3 box element to remove isolated noise (opening) and fill small
// holes (closing).
//
// # Border Policy
//
// Cells outside the mask read as off ("unchanged") for every operation,
// erosion and dilation alike. Foreground touching the border is therefore
// eroded as if surrounded by background, and dilation never grows past
// the raster edge. Results depend only on cells inside the raster.
//
// # Ownership
//
// Every operation allocates and returns a new Mask; inputs are never
// modified. Applying the same operation to equal masks yields equal
// results.
package morph
