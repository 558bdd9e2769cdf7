package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mempa-rover/pathplanner/geotransform"
	"github.com/mempa-rover/pathplanner/terrain"
)

// resolvePixel parses raw as either "x,y" (asPixel true) or "lon,lat"
// (asPixel false) and, in the latter case, converts it through r's
// geotransform into a global pixel coordinate.
func resolvePixel(raw string, asPixel bool, r *terrain.Raster) (geotransform.Pixel, error) {
	a, b, err := parsePair(raw)
	if err != nil {
		return geotransform.Pixel{}, err
	}
	if asPixel {
		return geotransform.Pixel{X: int(a), Y: int(b)}, nil
	}
	return r.GeoToPixel(geotransform.Geographic{Lon: a, Lat: b}), nil
}

func parsePair(raw string) (float64, float64, error) {
	parts := strings.SplitN(raw, ",", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("roverplan: %q must be two comma-separated numbers", raw)
	}
	a, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("roverplan: invalid first component of %q: %w", raw, err)
	}
	b, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("roverplan: invalid second component of %q: %w", raw, err)
	}
	return a, b, nil
}
