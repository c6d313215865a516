// Package batch orchestrates a full detection run: acquire a pair,
// execute the change pipeline, write the report files.
//
// Every stage failure passes through typed and unmodified, so callers
// can inspect the error taxonomy directly. Logging happens here rather
// than in the core packages, which stay pure.
package batch

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/telluris/satdiff/internal/change"
	"github.com/telluris/satdiff/internal/config"
	"github.com/telluris/satdiff/internal/raster"
	"github.com/telluris/satdiff/internal/regions"
	"github.com/telluris/satdiff/internal/report"
	"github.com/telluris/satdiff/internal/source"
)

// Options configures one detection run.
type Options struct {
	// OutDir receives the report files.
	OutDir string

	// Threshold is the binarization threshold.
	Threshold int

	// ThumbSize is the square thumbnail edge length.
	ThumbSize int

	// Regions also writes the changed-region listing.
	Regions bool

	// Extras also writes the overlay and heatmap frames.
	Extras bool

	// AOI attaches registry metadata to the run logs. Optional.
	AOI *config.AOI
}

// Runner executes detection runs.
type Runner struct {
	log zerolog.Logger
}

// New returns a Runner logging through log.
func New(log zerolog.Logger) *Runner {
	return &Runner{log: log}
}

// Run acquires a pair from src, executes the pipeline and writes the
// report to opts.OutDir. The returned statistics are the ones written
// to meta.json.
func (r *Runner) Run(src source.Source, opts Options) (change.Statistics, error) {
	start := time.Now()

	if opts.AOI != nil {
		lat, lon := opts.AOI.Bounds.Center()
		w, h := opts.AOI.Bounds.SizeKm()
		r.log.Info().
			Str("aoi", opts.AOI.Name).
			Float64("center_lat", lat).
			Float64("center_lon", lon).
			Str("size_km", fmt.Sprintf("%.1fx%.1f", w, h)).
			Msg("monitoring area")
	}

	pair, err := src.Acquire()
	if err != nil {
		return change.Statistics{}, err
	}
	r.log.Info().
		Int("scenes", pair.Meta.Scenes).
		Str("date_range", pair.Meta.DateRange).
		Int("width", pair.Before.Width()).
		Int("height", pair.Before.Height()).
		Msg("acquired before/after pair")
	r.logBandStats("before", pair.Before.Stats())
	r.logBandStats("after", pair.After.Stats())

	res, err := change.Run(pair.Before, pair.After, opts.Threshold)
	if err != nil {
		return change.Statistics{}, err
	}
	r.logBandStats("diff", res.Diff.Stats())
	r.log.Info().
		Int("change_pixels", res.Stats.ChangedPixels).
		Int("total_pixels", res.Stats.TotalPixels).
		Float64("change_pct", res.Stats.ChangePct).
		Msg("pipeline complete")

	if err := report.Write(opts.OutDir, res, opts.ThumbSize); err != nil {
		return change.Statistics{}, err
	}
	if opts.Regions {
		listing := regions.Collect(res.Mask)
		if err := report.WriteRegions(opts.OutDir, listing); err != nil {
			return change.Statistics{}, err
		}
		if listing.Count > 0 {
			top := listing.Regions[0]
			r.log.Info().
				Int("count", listing.Count).
				Int("largest_area", top.Area).
				Int("largest_x", top.Centroid.X).
				Int("largest_y", top.Centroid.Y).
				Msg("changed regions")
		} else {
			r.log.Info().Msg("no changed regions")
		}
	}
	if opts.Extras {
		if err := report.WriteExtras(opts.OutDir, res, opts.ThumbSize); err != nil {
			return change.Statistics{}, err
		}
	}

	r.log.Info().
		Str("dir", opts.OutDir).
		Dur("elapsed", time.Since(start)).
		Msg("outputs saved")
	return res.Stats, nil
}

func (r *Runner) logBandStats(band string, s raster.BandStats) {
	r.log.Debug().
		Str("band", band).
		Float64("min", s.Min).
		Float64("max", s.Max).
		Float64("mean", s.Mean).
		Float64("std", s.Std).
		Msg("band statistics")
}
