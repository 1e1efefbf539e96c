package raster

import (
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// testSVG is 200x100 user units with the left half filled red.
const testSVG = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="200" height="100" viewBox="0 0 200 100">
  <rect x="0" y="0" width="100" height="100" fill="#ff0000"/>
</svg>
`

func writeTestSVG(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.svg")
	if err := os.WriteFile(path, []byte(testSVG), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func decodeSize(t *testing.T, path string) (int, int) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	return cfg.Width, cfg.Height
}

func TestConvertScaleAndDPIConflict(t *testing.T) {
	src := writeTestSVG(t)
	dst := filepath.Join(t.TempDir(), "out.png")

	err := Convert(src, dst, Options{Scale: 500, DPI: 300})
	if !errors.Is(err, ErrScaleAndDPI) {
		t.Fatalf("error = %v, want ErrScaleAndDPI", err)
	}
	if _, statErr := os.Stat(dst); !os.IsNotExist(statErr) {
		t.Error("destination must be untouched when validation fails")
	}
}

func TestConvertScale(t *testing.T) {
	src := writeTestSVG(t)
	dst := filepath.Join(t.TempDir(), "out.png")

	if err := Convert(src, dst, Options{Scale: 500}); err != nil {
		t.Fatalf("Convert() error: %v", err)
	}

	w, h := decodeSize(t, dst)
	// Larger dimension matches the scale, aspect ratio preserved.
	if w != 500 || h != 250 {
		t.Errorf("output = %dx%d, want 500x250", w, h)
	}
}

func TestConvertScalePortrait(t *testing.T) {
	// Height dominates: 100x200 scaled by 300 → 150x300.
	svg := `<svg xmlns="http://www.w3.org/2000/svg" width="100" height="200" viewBox="0 0 100 200">` +
		`<rect width="100" height="200" fill="#000"/></svg>`
	src := filepath.Join(t.TempDir(), "tall.svg")
	if err := os.WriteFile(src, []byte(svg), 0o644); err != nil {
		t.Fatal(err)
	}
	dst := filepath.Join(t.TempDir(), "out.png")

	if err := Convert(src, dst, Options{Scale: 300}); err != nil {
		t.Fatalf("Convert() error: %v", err)
	}
	if w, h := decodeSize(t, dst); w != 150 || h != 300 {
		t.Errorf("output = %dx%d, want 150x300", w, h)
	}
}

func TestConvertDPI(t *testing.T) {
	src := writeTestSVG(t)
	dst := filepath.Join(t.TempDir(), "out.png")

	// 192 dpi doubles the 96-dpi user-unit size.
	if err := Convert(src, dst, Options{DPI: 192}); err != nil {
		t.Fatalf("Convert() error: %v", err)
	}
	if w, h := decodeSize(t, dst); w != 400 || h != 200 {
		t.Errorf("output = %dx%d, want 400x200", w, h)
	}
}

func TestConvertNativeSize(t *testing.T) {
	src := writeTestSVG(t)
	dst := filepath.Join(t.TempDir(), "out.png")

	if err := Convert(src, dst, Options{}); err != nil {
		t.Fatalf("Convert() error: %v", err)
	}
	if w, h := decodeSize(t, dst); w != 200 || h != 100 {
		t.Errorf("output = %dx%d, want 200x100", w, h)
	}
}

func TestConvertCreatesParentDirs(t *testing.T) {
	src := writeTestSVG(t)
	dst := filepath.Join(t.TempDir(), "a", "b", "out.png")

	if err := Convert(src, dst, Options{}); err != nil {
		t.Fatalf("Convert() error: %v", err)
	}
	if _, err := os.Stat(dst); err != nil {
		t.Errorf("output missing: %v", err)
	}
}

func TestConvertMissingSource(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "out.png")
	if err := Convert(filepath.Join(t.TempDir(), "nope.svg"), dst, Options{}); err == nil {
		t.Error("Convert() should fail for a missing source")
	}
}

func TestConvertOverwrites(t *testing.T) {
	src := writeTestSVG(t)
	dst := filepath.Join(t.TempDir(), "out.png")
	if err := os.WriteFile(dst, []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Convert(src, dst, Options{}); err != nil {
		t.Fatalf("Convert() error: %v", err)
	}
	// A valid PNG replaced the stale bytes.
	if w, _ := decodeSize(t, dst); w != 200 {
		t.Errorf("width = %d, want 200", w)
	}
}
