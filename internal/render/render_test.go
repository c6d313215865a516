package render

import (
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/telluris/satdiff/internal/morph"
	"github.com/telluris/satdiff/internal/raster"
)

func grayFromRows(rows [][]uint8) *raster.Gray {
	if len(rows) == 0 {
		return raster.NewGray(0, 0)
	}
	g := raster.NewGray(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, v := range row {
			g.Set(x, y, v)
		}
	}
	return g
}

func TestGrayImage(t *testing.T) {
	img := GrayImage(grayFromRows([][]uint8{{0, 128}, {255, 7}}))

	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
		t.Fatalf("bounds: got %v, want 2x2", img.Bounds())
	}
	if got := img.GrayAt(1, 0).Y; got != 128 {
		t.Errorf("pixel (1,0): got %d, want 128", got)
	}
}

func TestMaskImage(t *testing.T) {
	m := morph.NewMask(2, 1)
	m.SetOn(1, 0, true)

	img := MaskImage(m)
	if got := img.GrayAt(0, 0).Y; got != 0 {
		t.Errorf("off cell: got %d, want 0", got)
	}
	if got := img.GrayAt(1, 0).Y; got != 255 {
		t.Errorf("on cell: got %d, want 255", got)
	}
}

func TestOverlay(t *testing.T) {
	base := grayFromRows([][]uint8{{100, 100}})
	m := morph.NewMask(2, 1)
	m.SetOn(1, 0, true)
	red := colorful.Color{R: 1, G: 0, B: 0}

	img, err := Overlay(base, m, red, 1.0)
	if err != nil {
		t.Fatalf("Overlay failed: %v", err)
	}

	// Unchanged cells keep the base gray.
	c := img.RGBAAt(0, 0)
	if c.R != 100 || c.G != 100 || c.B != 100 {
		t.Errorf("unchanged cell: got %v, want gray 100", c)
	}
	// Full opacity paints the tint outright.
	c = img.RGBAAt(1, 0)
	if c.R != 255 || c.G != 0 || c.B != 0 {
		t.Errorf("changed cell at full opacity: got %v, want pure red", c)
	}
}

func TestOverlay_ZeroOpacity(t *testing.T) {
	base := grayFromRows([][]uint8{{40}})
	m := morph.NewMask(1, 1)
	m.SetOn(0, 0, true)

	img, err := Overlay(base, m, colorful.Color{R: 1}, 0)
	if err != nil {
		t.Fatalf("Overlay failed: %v", err)
	}
	c := img.RGBAAt(0, 0)
	if c.R != 40 || c.G != 40 || c.B != 40 {
		t.Errorf("zero opacity: got %v, want untouched gray 40", c)
	}
}

func TestOverlay_ShapeMismatch(t *testing.T) {
	base := grayFromRows([][]uint8{{1, 2}})
	m := morph.NewMask(3, 1)

	_, err := Overlay(base, m, colorful.Color{R: 1}, 0.5)
	if err == nil {
		t.Fatal("expected error for mismatched shapes, got nil")
	}
	var mismatch *raster.ShapeMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected ShapeMismatchError, got %T: %v", err, err)
	}
}

func TestHeatmap(t *testing.T) {
	img := Heatmap(grayFromRows([][]uint8{{0, 255}}), HeatRamp())

	c := img.RGBAAt(0, 0)
	if c.R != 0 || c.G != 0 || c.B != 0 {
		t.Errorf("zero difference: got %v, want black", c)
	}
	c = img.RGBAAt(1, 0)
	if c.R != 255 || c.G != 255 || c.B != 255 {
		t.Errorf("full difference: got %v, want white", c)
	}
}

func TestRampAt_Clamps(t *testing.T) {
	r := HeatRamp()

	lo := r.At(-0.5)
	if lo != r[0].Col {
		t.Errorf("below range: got %+v, want first stop", lo)
	}
	hi := r.At(1.5)
	if hi != r[len(r)-1].Col {
		t.Errorf("above range: got %+v, want last stop", hi)
	}
}

func TestThumbnail(t *testing.T) {
	src := GrayImage(grayFromRows([][]uint8{
		{0, 50, 100, 150},
		{200, 250, 10, 60},
	}))

	thumb := Thumbnail(src, 16)
	if thumb.Bounds().Dx() != 16 || thumb.Bounds().Dy() != 16 {
		t.Errorf("bounds: got %v, want 16x16", thumb.Bounds())
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.png")
	src := GrayImage(grayFromRows([][]uint8{{0, 255}}))

	if err := SavePNG(path, src); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open written file: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode written file: %v", err)
	}
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 1 {
		t.Errorf("bounds: got %v, want 2x1", img.Bounds())
	}
}
