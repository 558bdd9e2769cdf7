package geotransform

import "math"

// Validate reports whether gt describes square, axis-aligned pixels:
// A2 == 0, A4 == 0, and A1 == |A5|. Called once at raster load; a violation
// is fatal (ErrNonSquarePixels) rather than silently tolerated.
func (gt Geotransform) Validate() error {
	if gt.A2 != 0 || gt.A4 != 0 {
		return ErrNonSquarePixels
	}
	if gt.A1 != math.Abs(gt.A5) {
		return ErrNonSquarePixels
	}
	return nil
}

// PixelToGeo maps a pixel coordinate to its geographic ordinates with no
// flooring: the exact affine forward transform. It is the inverse of
// GeoToPixel modulo GeoToPixel's truncation toward zero.
func (gt Geotransform) PixelToGeo(p Pixel) Geographic {
	return Geographic{
		Lon: gt.A0 + gt.A1*float64(p.X) + gt.A2*float64(p.Y),
		Lat: gt.A3 + gt.A4*float64(p.X) + gt.A5*float64(p.Y),
	}
}

// GeoToPixel maps a geographic coordinate to a pixel coordinate, truncating
// toward zero. It performs no bounds clipping — the result may lie outside
// the raster; callers check.
func (gt Geotransform) GeoToPixel(g Geographic) Pixel {
	x := (g.Lon - gt.A0) / gt.A1
	y := (g.Lat - gt.A3) / gt.A5
	return Pixel{X: int(math.Trunc(x)), Y: int(math.Trunc(y))}
}

// ResolutionMeters returns the raster's metric pixel size. For a projected
// CRS (crsIsGeographic == false) this is simply A1. For a geographic
// (angular-unit) CRS it converts degrees to metres along the equatorial arc
// of a body with the given semi-major axis, computed once at raster load
// and never repeated per spec.
func (gt Geotransform) ResolutionMeters(crsIsGeographic bool, bodyRadiusM float64) (float64, error) {
	if !crsIsGeographic {
		return gt.A1, nil
	}
	if bodyRadiusM <= 0 {
		return 0, ErrNonPositiveRadius
	}
	return gt.A1 * math.Pi * bodyRadiusM / 180, nil
}

// GlobalToLocal converts a global pixel coordinate into local window indices
// relative to anchor (the window's upper-left pixel in raster coordinates).
// The result may be negative or out of window bounds; callers check.
func GlobalToLocal(p Pixel, anchor Pixel) Local {
	return Local{X: p.X - anchor.X, Y: p.Y - anchor.Y}
}

// LocalToGlobal converts a local window index back to a global pixel
// coordinate, given the window's anchor. Symmetric with GlobalToLocal.
func LocalToGlobal(l Local, anchor Pixel) Pixel {
	return Pixel{X: anchor.X + l.X, Y: anchor.Y + l.Y}
}
