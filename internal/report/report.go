// Package report writes the batch output contract: four thumbnails and
// a meta.json holding the change statistics.
//
// The file names, the thumbnail set and the three meta.json keys are a
// preserved interface; downstream consumers read them by name. Optional
// extras (regions.json, overlay.png, heatmap.png) are separate files
// and never alter the shape of meta.json.
package report

import (
	"encoding/json"
	"fmt"
	"image"
	"os"
	"path/filepath"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/telluris/satdiff/internal/change"
	"github.com/telluris/satdiff/internal/regions"
	"github.com/telluris/satdiff/internal/render"
)

// Files written for every run.
const (
	BeforeThumb = "before_thumb.png"
	AfterThumb  = "after_thumb.png"
	DiffThumb   = "diff_thumb.png"
	MaskThumb   = "change_mask_thumb.png"
	MetaFile    = "meta.json"
)

// Optional extra files.
const (
	RegionsFile = "regions.json"
	OverlayFile = "overlay.png"
	HeatmapFile = "heatmap.png"
)

// overlayTint is the color painted over changed cells in the overlay
// extra.
var overlayTint = colorful.Color{R: 1, G: 0.1, B: 0.1}

const overlayOpacity = 0.55

// Write saves the four thumbnails and meta.json to dir, creating the
// directory as needed. thumbSize is the square thumbnail edge length.
func Write(dir string, res *change.Result, thumbSize int) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	thumbs := []struct {
		name string
		img  image.Image
	}{
		{BeforeThumb, render.GrayImage(res.BeforeN)},
		{AfterThumb, render.GrayImage(res.AfterN)},
		{DiffThumb, render.GrayImage(res.Diff)},
		{MaskThumb, render.MaskImage(res.Mask)},
	}
	for _, t := range thumbs {
		if err := render.SavePNG(filepath.Join(dir, t.name), render.Thumbnail(t.img, thumbSize)); err != nil {
			return err
		}
	}

	meta, err := json.MarshalIndent(res.Stats, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", MetaFile, err)
	}
	if err := os.WriteFile(filepath.Join(dir, MetaFile), meta, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", MetaFile, err)
	}
	return nil
}

// WriteRegions saves a changed-region listing as regions.json.
func WriteRegions(dir string, listing regions.Result) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	raw, err := json.MarshalIndent(listing, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", RegionsFile, err)
	}
	if err := os.WriteFile(filepath.Join(dir, RegionsFile), raw, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", RegionsFile, err)
	}
	return nil
}

// WriteExtras saves the visual extras: the change overlay painted on
// the normalized after frame and the difference heatmap, both at
// thumbnail size.
func WriteExtras(dir string, res *change.Result, thumbSize int) error {
	overlay, err := render.Overlay(res.AfterN, res.Mask, overlayTint, overlayOpacity)
	if err != nil {
		return err
	}
	if err := render.SavePNG(filepath.Join(dir, OverlayFile), render.Thumbnail(overlay, thumbSize)); err != nil {
		return err
	}

	heat := render.Heatmap(res.Diff, render.HeatRamp())
	return render.SavePNG(filepath.Join(dir, HeatmapFile), render.Thumbnail(heat, thumbSize))
}
