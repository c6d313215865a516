package report

import (
	"encoding/json"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/telluris/satdiff/internal/change"
	"github.com/telluris/satdiff/internal/morph"
	"github.com/telluris/satdiff/internal/raster"
	"github.com/telluris/satdiff/internal/regions"
)

// fixtureResult builds a small completed pipeline result by hand: a
// 6x6 frame with a 2x2 changed block.
func fixtureResult(t *testing.T) *change.Result {
	t.Helper()

	gray := raster.NewGray(6, 6)
	diff := raster.NewGray(6, 6)
	mask := morph.NewMask(6, 6)
	for y := 2; y <= 3; y++ {
		for x := 2; x <= 3; x++ {
			gray.Set(x, y, 255)
			diff.Set(x, y, 200)
			mask.SetOn(x, y, true)
		}
	}

	stats, err := change.Summarize(mask)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	return &change.Result{
		BeforeN: raster.NewGray(6, 6),
		AfterN:  gray,
		Diff:    diff,
		Mask:    mask,
		Stats:   stats,
	}
}

func decodePNG(t *testing.T, path string) (w, h int) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return img.Bounds().Dx(), img.Bounds().Dy()
}

func TestWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	res := fixtureResult(t)

	if err := Write(dir, res, 16); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	for _, name := range []string{BeforeThumb, AfterThumb, DiffThumb, MaskThumb} {
		w, h := decodePNG(t, filepath.Join(dir, name))
		if w != 16 || h != 16 {
			t.Errorf("%s: got %dx%d, want 16x16", name, w, h)
		}
	}

	raw, err := os.ReadFile(filepath.Join(dir, MetaFile))
	if err != nil {
		t.Fatalf("read meta.json: %v", err)
	}
	if !strings.HasPrefix(string(raw), "{\n  \"change_pixels\":") {
		t.Errorf("meta.json indent or key order changed:\n%s", raw)
	}

	var meta map[string]any
	if err := json.Unmarshal(raw, &meta); err != nil {
		t.Fatalf("parse meta.json: %v", err)
	}
	if len(meta) != 3 {
		t.Errorf("meta.json has %d keys, want exactly 3", len(meta))
	}
	if got := meta["change_pixels"].(float64); got != 4 {
		t.Errorf("change_pixels: got %v, want 4", got)
	}
	if got := meta["total_pixels"].(float64); got != 36 {
		t.Errorf("total_pixels: got %v, want 36", got)
	}
	if got := meta["change_pct"].(float64); got != 11.11 {
		t.Errorf("change_pct: got %v, want 11.11", got)
	}
}

func TestWriteRegions(t *testing.T) {
	dir := t.TempDir()
	res := fixtureResult(t)

	if err := WriteRegions(dir, regions.Collect(res.Mask)); err != nil {
		t.Fatalf("WriteRegions failed: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, RegionsFile))
	if err != nil {
		t.Fatalf("read regions.json: %v", err)
	}

	var listing struct {
		Regions []struct {
			Area int `json:"area"`
		} `json:"regions"`
		Count int `json:"count"`
	}
	if err := json.Unmarshal(raw, &listing); err != nil {
		t.Fatalf("parse regions.json: %v", err)
	}
	if listing.Count != 1 || len(listing.Regions) != 1 {
		t.Fatalf("got %d regions, want 1", listing.Count)
	}
	if listing.Regions[0].Area != 4 {
		t.Errorf("region area: got %d, want 4", listing.Regions[0].Area)
	}
}

func TestWriteExtras(t *testing.T) {
	dir := t.TempDir()
	res := fixtureResult(t)

	if err := WriteExtras(dir, res, 16); err != nil {
		t.Fatalf("WriteExtras failed: %v", err)
	}

	for _, name := range []string{OverlayFile, HeatmapFile} {
		w, h := decodePNG(t, filepath.Join(dir, name))
		if w != 16 || h != 16 {
			t.Errorf("%s: got %dx%d, want 16x16", name, w, h)
		}
	}
}

func TestWrite_MetaMatchesStats(t *testing.T) {
	dir := t.TempDir()
	res := fixtureResult(t)

	if err := Write(dir, res, 8); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, MetaFile))
	if err != nil {
		t.Fatalf("read meta.json: %v", err)
	}
	var got change.Statistics
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("parse meta.json: %v", err)
	}
	if got != res.Stats {
		t.Errorf("round trip: got %+v, want %+v", got, res.Stats)
	}
}
