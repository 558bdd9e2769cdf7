package terrain

// synth.go builds deterministic in-memory rasters for tests and the CLI's
// demo subcommand, in the manner of builder.Grid's deterministic,
// option-driven construction: no file I/O, no randomness, identical input
// always produces an identical Raster.
//
// Canonical model:
//   - Projected, square-pixel geotransform anchored at the origin; callers
//     needing a geographic CRS supply one with WithGeographicCRS.
//   - PixelSizeM defaults to 1.0.
//   - Elevations are in the same linear unit as PixelSizeM, by construction.

import (
	"fmt"
	"math"

	"github.com/mempa-rover/pathplanner/geotransform"
)

// SynthOption configures a synthetic raster's geotransform.
type SynthOption func(*synthConfig) error

type synthConfig struct {
	pixelSizeM      float64
	crsIsGeographic bool
	bodyRadiusM     float64
}

func defaultSynthConfig() synthConfig {
	return synthConfig{pixelSizeM: 1.0}
}

// WithSynthPixelSizeM overrides the default 1m pixel size.
func WithSynthPixelSizeM(m float64) SynthOption {
	return func(c *synthConfig) error {
		if m <= 0 {
			return fmt.Errorf("terrain: synthetic pixel size must be positive, got %g", m)
		}
		c.pixelSizeM = m
		return nil
	}
}

// WithGeographicCRS marks the synthetic raster as geographic (degrees per
// pixel) on a body of the given radius, rather than the default projected
// (metres per pixel) geotransform.
func WithGeographicCRS(bodyRadiusM float64) SynthOption {
	return func(c *synthConfig) error {
		if bodyRadiusM <= 0 {
			return fmt.Errorf("terrain: body radius must be positive, got %g", bodyRadiusM)
		}
		c.crsIsGeographic = true
		c.bodyRadiusM = bodyRadiusM
		return nil
	}
}

func newSynthRaster(w, h int, opts []SynthOption, elevAt func(x, y int) float64) (*Raster, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyRaster
	}
	cfg := defaultSynthConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	var gt geotransform.Geotransform
	if cfg.crsIsGeographic {
		degPerPixel := (cfg.pixelSizeM / cfg.bodyRadiusM) * 180 / math.Pi
		gt = geotransform.Geotransform{A1: degPerPixel, A5: -degPerPixel}
	} else {
		gt = geotransform.Geotransform{A1: cfg.pixelSizeM, A5: -cfg.pixelSizeM}
	}
	if err := gt.Validate(); err != nil {
		return nil, fmt.Errorf("terrain: synthetic geotransform: %w", err)
	}

	resolutionM, err := gt.ResolutionMeters(cfg.crsIsGeographic, cfg.bodyRadiusM)
	if err != nil {
		return nil, fmt.Errorf("terrain: synthetic resolution: %w", err)
	}

	data := make([]float32, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			data[y*w+x] = float32(elevAt(x, y))
		}
	}

	return &Raster{
		gt:              gt,
		w:               w,
		h:               h,
		crsIsGeographic: cfg.crsIsGeographic,
		bodyRadiusM:     cfg.bodyRadiusM,
		resolutionM:     resolutionM,
		data:            data,
	}, nil
}

// Flat returns a w x h raster at a single uniform elevation — the S1
// "trivial flat-terrain traverse" scenario fixture.
func Flat(w, h int, elevationM float64, opts ...SynthOption) (*Raster, error) {
	return newSynthRaster(w, h, opts, func(_, _ int) float64 { return elevationM })
}

// Ramp returns a w x h raster whose elevation rises linearly west to east at
// the given slope — used to exercise the CSPE's feasibility filter at a
// known, exact slope angle.
func Ramp(w, h int, slopeDeg, pixelSizeM float64, opts ...SynthOption) (*Raster, error) {
	rise := math.Tan(slopeDeg * math.Pi / 180)
	return newSynthRaster(w, h, opts, func(x, _ int) float64 {
		return float64(x) * pixelSizeM * rise
	})
}

// Wall returns a w x h raster at baseElevationM everywhere except a single
// north-south column at wallCol, which is raised by wallHeightM — the S2/S3
// "wall blocks crossing" scenario fixture.
func Wall(w, h, wallCol int, baseElevationM, wallHeightM float64, opts ...SynthOption) (*Raster, error) {
	return newSynthRaster(w, h, opts, func(x, _ int) float64 {
		if x == wallCol {
			return baseElevationM + wallHeightM
		}
		return baseElevationM
	})
}

// Bowl returns a w x h raster shaped like an inverted cone, deepest at its
// centre by depthM and rising linearly with distance from the centre to 0
// at the corners — exercises routes that must skirt a
// central depression rather than cross it directly.
func Bowl(w, h int, depthM float64, opts ...SynthOption) (*Raster, error) {
	cx, cy := float64(w-1)/2, float64(h-1)/2
	maxR := math.Hypot(cx, cy)
	return newSynthRaster(w, h, opts, func(x, y int) float64 {
		if maxR == 0 {
			return -depthM
		}
		dx, dy := float64(x)-cx, float64(y)-cy
		r := math.Hypot(dx, dy)
		return -depthM * (1 - r/maxR)
	})
}
