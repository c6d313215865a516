package source

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/tiff"
)

// writeGrayPNG writes a constant-valued 8-bit grayscale PNG.
func writeGrayPNG(t *testing.T, path string, w, h int, v uint8) {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = v
	}
	writeImage(t, path, func(f *os.File) error { return png.Encode(f, img) })
}

// writeGray16TIFF writes a 16-bit grayscale TIFF from row data.
func writeGray16TIFF(t *testing.T, path string, rows [][]uint16) {
	t.Helper()
	img := image.NewGray16(image.Rect(0, 0, len(rows[0]), len(rows)))
	for y, row := range rows {
		for x, v := range row {
			img.SetGray16(x, y, color.Gray16{Y: v})
		}
	}
	writeImage(t, path, func(f *os.File) error { return tiff.Encode(f, img, nil) })
}

func writeImage(t *testing.T, path string, encode func(*os.File) error) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	if err := encode(f); err != nil {
		f.Close()
		t.Fatalf("encode %s: %v", path, err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close %s: %v", path, err)
	}
}

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	before := filepath.Join(dir, "before.png")
	after := filepath.Join(dir, "after.png")
	writeGrayPNG(t, before, 4, 3, 80)
	writeGrayPNG(t, after, 4, 3, 160)

	pair, err := FileSource{BeforePath: before, AfterPath: after}.Acquire()
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}

	if pair.Before.Width() != 4 || pair.Before.Height() != 3 {
		t.Errorf("before dimensions: got %dx%d, want 4x3", pair.Before.Width(), pair.Before.Height())
	}
	if pair.Meta.Scenes != 2 {
		t.Errorf("Meta.Scenes: got %d, want 2", pair.Meta.Scenes)
	}
	if pair.Meta.DateRange != "" {
		t.Errorf("Meta.DateRange: got %q, want empty", pair.Meta.DateRange)
	}

	// The after scene is twice as bright as the before scene.
	b, a := pair.Before.At(0, 0), pair.After.At(0, 0)
	if b <= 0 || math.Abs(a/b-2.0) > 1e-6 {
		t.Errorf("brightness ratio: before %v, after %v", b, a)
	}
}

func TestFileSource_TIFF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "band1.tif")
	writeGray16TIFF(t, path, [][]uint16{
		{1000, 3000},
		{500, 65535},
	})
	other := filepath.Join(dir, "other.tif")
	writeGray16TIFF(t, other, [][]uint16{
		{1000, 3000},
		{500, 65535},
	})

	pair, err := FileSource{BeforePath: path, AfterPath: other}.Acquire()
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}

	g := pair.Before
	if g.Width() != 2 || g.Height() != 2 {
		t.Fatalf("dimensions: got %dx%d, want 2x2", g.Width(), g.Height())
	}
	// 16-bit samples come through at full precision.
	if math.Abs(g.At(1, 0)/g.At(0, 0)-3.0) > 1e-6 {
		t.Errorf("sample ratio: got %v / %v", g.At(1, 0), g.At(0, 0))
	}
	if g.At(1, 1) <= g.At(1, 0) {
		t.Errorf("ordering lost: %v should exceed %v", g.At(1, 1), g.At(1, 0))
	}
}

func TestFileSource_MissingFile(t *testing.T) {
	dir := t.TempDir()
	writeGrayPNG(t, filepath.Join(dir, "before.png"), 2, 2, 10)

	_, err := FileSource{
		BeforePath: filepath.Join(dir, "before.png"),
		AfterPath:  filepath.Join(dir, "missing.png"),
	}.Acquire()
	if err == nil {
		t.Fatal("expected error for missing file, got nil")
	}

	var acq *AcquisitionError
	if !errors.As(err, &acq) {
		t.Fatalf("expected AcquisitionError, got %T: %v", err, err)
	}
}

func TestFileSource_Undecodable(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.png")
	if err := os.WriteFile(bad, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	writeGrayPNG(t, filepath.Join(dir, "ok.png"), 2, 2, 10)

	_, err := FileSource{BeforePath: bad, AfterPath: filepath.Join(dir, "ok.png")}.Acquire()
	if err == nil {
		t.Fatal("expected error for undecodable file, got nil")
	}

	var acq *AcquisitionError
	if !errors.As(err, &acq) {
		t.Fatalf("expected AcquisitionError, got %T: %v", err, err)
	}
}
