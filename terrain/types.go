package terrain

import (
	"errors"
	"math"

	"github.com/mempa-rover/pathplanner/geotransform"
)

// Sentinel errors returned by this package.
var (
	// ErrBadMagic indicates the file does not begin with the expected header magic.
	ErrBadMagic = errors.New("terrain: not a recognised DEM file")
	// ErrUnsupportedVersion indicates a format version this reader cannot decode.
	ErrUnsupportedVersion = errors.New("terrain: unsupported DEM format version")
	// ErrEmptyRaster indicates a raster with zero width or height.
	ErrEmptyRaster = errors.New("terrain: raster must have positive width and height")
	// ErrOutOfBounds indicates a pixel coordinate outside raster bounds.
	ErrOutOfBounds = errors.New("terrain: pixel coordinate out of raster bounds")
	// ErrEmptyWindow indicates a window request that clips to zero area.
	ErrEmptyWindow = errors.New("terrain: requested window has zero area")
)

const (
	magic          = "RDEM"
	formatVersion  = 1
	headerSizeBase = 4 + 1 + 4 + 4 + 6*8 + 1 + 8 // magic,version,w,h,geotransform,crsFlag,bodyRadius
)

// Window is a rectangular clip of a Raster's elevations, in the window's own
// local coordinate space. Local (0,0) is the window's top-left corner;
// Anchor is that corner's global pixel coordinate.
type Window struct {
	Elevations [][]float64 // Elevations[y][x], NaN marks no-data or masked
	W, H       int
	Anchor     geotransform.Pixel
	Local      geotransform.Local // the requested centre's position within this window
}

// InBounds reports whether local coordinate (x, y) lies within the window.
func (w *Window) InBounds(x, y int) bool {
	return x >= 0 && x < w.W && y >= 0 && y < w.H
}

// ValueAt returns the elevation at local cell (x, y), or an error if out of bounds.
func (w *Window) ValueAt(x, y int) (float64, error) {
	if !w.InBounds(x, y) {
		return 0, ErrOutOfBounds
	}
	return w.Elevations[y][x], nil
}

// Circular returns a copy of w with every cell outside radius (in pixels,
// measured from centre) masked to NaN — the circular window variant used
// when a planner wants to bound search cost by a disk rather than a square.
func (w *Window) Circular(radius float64) *Window {
	out := &Window{W: w.W, H: w.H, Anchor: w.Anchor, Local: w.Local}
	out.Elevations = make([][]float64, w.H)
	cx, cy := float64(w.Local.X), float64(w.Local.Y)
	for y := 0; y < w.H; y++ {
		row := make([]float64, w.W)
		for x := 0; x < w.W; x++ {
			dx, dy := float64(x)-cx, float64(y)-cy
			if math.Sqrt(dx*dx+dy*dy) > radius {
				row[x] = math.NaN()
			} else {
				row[x] = w.Elevations[y][x]
			}
		}
		out.Elevations[y] = row
	}
	return out
}
