// Package geotransform converts between geographic coordinates, global pixel
// coordinates, and local window indices for a georeferenced raster.
//
// A raster's pixel grid relates to its coordinate reference system (CRS)
// through six affine geotransform coefficients a0..a5:
//
//	lon = a0 + a1*x + a2*y
//	lat = a3 + a4*x + a5*y
//
// This package only supports square-pixel, axis-aligned rasters (a2 == 0,
// a4 == 0, a1 == |a5|); Validate reports anything else as fatal, per the
// raster-load-time contract.
//
// Complexity: every operation here is O(1).
package geotransform
