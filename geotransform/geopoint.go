package geotransform

import geo "github.com/kellydunn/golang-geo"

// ToGeoPoint adapts a Geographic coordinate to a *geo.Point for consumers
// that need great-circle distance or bearing (golang-geo uses lat,lng
// argument order; Geographic stores lon,lat, so the fields are swapped
// here, once, at the boundary).
func ToGeoPoint(g Geographic) *geo.Point {
	return geo.NewPoint(g.Lat, g.Lon)
}

// FromGeoPoint adapts a *geo.Point back to a Geographic coordinate.
func FromGeoPoint(p *geo.Point) Geographic {
	return Geographic{Lon: p.Lng(), Lat: p.Lat()}
}

// GreatCircleDistanceM returns the great-circle distance in metres between
// two geographic points, via golang-geo's haversine implementation. This is
// an independent cross-check used by the metrics package, never the
// authoritative pixel-space distance the planner reports.
func GreatCircleDistanceM(a, b Geographic) float64 {
	return ToGeoPoint(a).GreatCircleDistance(ToGeoPoint(b)) * 1000
}
