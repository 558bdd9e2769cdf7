package geotransform

import "errors"

// Sentinel errors for geotransform operations.
var (
	// ErrNonSquarePixels indicates the geotransform does not describe
	// square, axis-aligned pixels (a2 != 0, a4 != 0, or a1 != |a5|).
	ErrNonSquarePixels = errors.New("geotransform: raster does not have square, axis-aligned pixels")

	// ErrNonPositiveRadius indicates a non-positive body radius was supplied
	// when computing the metric resolution of a geographic (angular) CRS.
	ErrNonPositiveRadius = errors.New("geotransform: body radius must be positive")
)

// Pixel is an integer raster coordinate: x is column (east-west), y is row
// (north-south). Valid range is 0 <= x < Xsize, 0 <= y < Ysize, but this
// type itself does not enforce bounds — callers check against raster size.
type Pixel struct {
	X, Y int
}

// Add returns the component-wise sum of p and q.
func (p Pixel) Add(q Pixel) Pixel {
	return Pixel{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the component-wise difference p - q.
func (p Pixel) Sub(q Pixel) Pixel {
	return Pixel{X: p.X - q.X, Y: p.Y - q.Y}
}

// Equal reports whether p and q name the same pixel.
func (p Pixel) Equal(q Pixel) bool {
	return p.X == q.X && p.Y == q.Y
}

// Geographic is a geographic coordinate pair (lon, lat) in the raster's CRS.
type Geographic struct {
	Lon, Lat float64
}

// Local is a pixel coordinate expressed relative to an elevation window's
// upper-left anchor. It may be negative or exceed the window's bounds; the
// caller is responsible for checking before indexing.
type Local struct {
	X, Y int
}

// Geotransform holds the six affine coefficients relating raster pixel
// indices to geographic ordinates, per the GDAL/DEM convention:
//
//	lon = A0 + A1*x + A2*y
//	lat = A3 + A4*x + A5*y
type Geotransform struct {
	A0, A1, A2, A3, A4, A5 float64
}
