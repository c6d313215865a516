package change

import (
	"fmt"

	"github.com/telluris/satdiff/internal/morph"
	"github.com/telluris/satdiff/internal/raster"
)

// Result bundles every raster produced by a completed pipeline run plus
// the summary statistics. Results are owned by the caller and never
// shared between runs.
type Result struct {
	BeforeN *raster.Gray
	AfterN  *raster.Gray
	Diff    *raster.Gray
	Mask    *morph.Mask
	Stats   Statistics
}

// Run executes the full pipeline in fixed order: normalize both inputs
// independently, difference, segment at threshold, summarize. The first
// failing stage aborts the run; a partial Result is never returned.
func Run(before, after *raster.Grid, threshold int) (*Result, error) {
	beforeN, err := raster.Normalize(before)
	if err != nil {
		return nil, fmt.Errorf("normalize before raster: %w", err)
	}
	afterN, err := raster.Normalize(after)
	if err != nil {
		return nil, fmt.Errorf("normalize after raster: %w", err)
	}
	diff, err := raster.Diff(beforeN, afterN)
	if err != nil {
		return nil, fmt.Errorf("difference rasters: %w", err)
	}
	mask, err := Segment(diff, threshold)
	if err != nil {
		return nil, err
	}
	stats, err := Summarize(mask)
	if err != nil {
		return nil, err
	}

	return &Result{
		BeforeN: beforeN,
		AfterN:  afterN,
		Diff:    diff,
		Mask:    mask,
		Stats:   stats,
	}, nil
}
