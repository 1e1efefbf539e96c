// Package raster converts vector schematic exports to PNG images. The SVG
// is parsed and rasterized in-process, so no external converter is needed
// and the alpha channel survives.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/cgnd/kicad-release/pkg/fsutil"
)

// baseDPI is the SVG user-unit resolution: one unit is 1/96 inch.
const baseDPI = 96

// ErrScaleAndDPI reports that both sizing modes were requested at once.
var ErrScaleAndDPI = errors.New("cannot specify both scale and dpi")

// Options controls Convert. Scale and DPI are mutually exclusive; zero
// means unset.
type Options struct {
	// Scale sizes the output so its larger dimension equals Scale pixels,
	// preserving the aspect ratio.
	Scale int
	// DPI resamples the drawing at the given resolution.
	DPI int
	// Alpha keeps the background transparent instead of opaque white.
	Alpha bool
}

// Convert rasterizes the SVG at srcPath into a PNG at dstPath, creating
// parent directories as needed and overwriting any existing file. Sizing
// validation happens before any work, so an invalid option combination
// never touches the destination.
func Convert(srcPath, dstPath string, opts Options) error {
	if opts.Scale != 0 && opts.DPI != 0 {
		return ErrScaleAndDPI
	}
	if opts.Scale < 0 || opts.DPI < 0 {
		return fmt.Errorf("scale and dpi must be positive")
	}

	icon, err := oksvg.ReadIcon(srcPath, oksvg.WarnErrorMode)
	if err != nil {
		return fmt.Errorf("parse %s: %w", srcPath, err)
	}
	w, h := icon.ViewBox.W, icon.ViewBox.H
	if w <= 0 || h <= 0 {
		return fmt.Errorf("parse %s: drawing has no extent", srcPath)
	}

	factor := 1.0
	switch {
	case opts.Scale > 0:
		factor = float64(opts.Scale) / math.Max(w, h)
	case opts.DPI > 0:
		factor = float64(opts.DPI) / baseDPI
	}

	outW := max(int(math.Round(w*factor)), 1)
	outH := max(int(math.Round(h*factor)), 1)

	img := image.NewRGBA(image.Rect(0, 0, outW, outH))
	if !opts.Alpha {
		draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	}

	icon.SetTarget(0, 0, float64(outW), float64(outH))
	scanner := rasterx.NewScannerGV(outW, outH, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(outW, outH, scanner), 1)

	if err := fsutil.EnsureDir(dstPath); err != nil {
		return fmt.Errorf("create directory for %s: %w", dstPath, err)
	}
	out, err := os.Create(dstPath)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := png.Encode(out, img); err != nil {
		return fmt.Errorf("encode %s: %w", dstPath, err)
	}
	return out.Close()
}
