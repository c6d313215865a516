// Package render materializes pipeline outputs as images: grayscale
// frames, change overlays, difference heatmaps and thumbnails.
//
// The pipeline itself exposes plain raster data; everything visual
// lives here. All functions allocate fresh images and never modify
// their inputs.
package render

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/telluris/satdiff/internal/morph"
	"github.com/telluris/satdiff/internal/raster"
)

// GrayImage materializes an 8-bit raster as a grayscale frame.
func GrayImage(g *raster.Gray) *image.Gray {
	return g.ToImage()
}

// MaskImage materializes a change mask as a 0/255 grayscale frame.
func MaskImage(m *morph.Mask) *image.Gray {
	return m.ToGray().ToImage()
}

// Overlay paints the changed cells of a mask over a base frame,
// blending the tint color in Lab space at the given opacity. Opacity 0
// leaves the base untouched, 1 paints the tint outright; values
// outside [0, 1] are clamped. The mask must match the base shape.
func Overlay(base *raster.Gray, m *morph.Mask, tint colorful.Color, opacity float64) (*image.RGBA, error) {
	if base.Width() != m.Width() || base.Height() != m.Height() {
		return nil, &raster.ShapeMismatchError{
			AWidth: base.Width(), AHeight: base.Height(),
			BWidth: m.Width(), BHeight: m.Height(),
		}
	}
	if opacity < 0 {
		opacity = 0
	} else if opacity > 1 {
		opacity = 1
	}

	out := image.NewRGBA(image.Rect(0, 0, base.Width(), base.Height()))
	for y := 0; y < base.Height(); y++ {
		for x := 0; x < base.Width(); x++ {
			v := float64(base.At(x, y)) / 255
			c := colorful.Color{R: v, G: v, B: v}
			if m.On(x, y) {
				c = c.BlendLab(tint, opacity).Clamped()
			}
			r, g, b := c.RGB255()
			out.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return out, nil
}

// Heatmap renders difference magnitudes through a color ramp: cell 0
// takes the first ramp color, cell 255 the last.
func Heatmap(diff *raster.Gray, ramp Ramp) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, diff.Width(), diff.Height()))
	for y := 0; y < diff.Height(); y++ {
		for x := 0; x < diff.Width(); x++ {
			r, g, b := ramp.At(float64(diff.At(x, y)) / 255).RGB255()
			out.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return out
}

// Thumbnail resizes a frame to a size x size square with Lanczos
// resampling, stretching if the aspect ratio differs.
func Thumbnail(img image.Image, size int) *image.NRGBA {
	return imaging.Resize(img, size, size, imaging.Lanczos)
}

// SavePNG writes a frame to path, creating parent directories as
// needed. The encoding follows the file extension, .png throughout
// this system.
func SavePNG(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save %s: %w", filepath.Base(path), err)
	}
	return nil
}
