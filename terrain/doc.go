// Package terrain is the Terrain Window Provider: it opens a georeferenced
// elevation raster and serves bounded elevation windows to the traverse
// planner without exposing the planner to raster I/O or coordinate algebra.
//
// The on-disk format is a small self-describing binary grid (magic,
// dimensions, geotransform, a CRS-kind flag, a body radius, and row-major
// float32 elevations with NaN marking no-data) rather than GeoTIFF or any
// GDAL-backed format; swapping in a real format reader only means
// implementing Open, XSize, YSize, ResolutionMeters, InBounds,
// ReadSquareWindow and ValueAt against it.
//
// Package terrain never converts elevation units: a Raster reports whatever
// linear unit its elevations were written in, and callers are responsible
// for matching that unit to the pixel_size_m they pass into pathengine.
package terrain
