package metrics

import (
	"errors"
	"fmt"
	"math"

	"github.com/mempa-rover/pathplanner/geotransform"
)

// ErrEmptyRoute indicates Summarize was called with fewer than two pixels.
var ErrEmptyRoute = errors.New("metrics: route must have at least two pixels")

// slopeEpsilonPixels is the minimum horizontal step, in pixel units, a
// segment must have to be included in slope averaging (§4.4).
const slopeEpsilonPixels = 1e-3

// histogramBucketWidthDeg is the bucket width of Summary.SlopeHistogram.
const histogramBucketWidthDeg = 5.0

// ElevationSource is the collaborator Summarize fetches route elevations
// from. *terrain.Raster satisfies it.
type ElevationSource interface {
	ValueAt(p geotransform.Pixel) (float64, error)
}

// Summary holds the statistics computed over one finished route.
type Summary struct {
	HorizontalDistance    float64
	TotalDistance         float64
	CrowFliesDistance     float64
	TotalElevationChange  float64
	NetElevationChange    float64
	MaxSlopeDeg           float64
	AverageSlopeDeg       float64
	SlopeHistogram        map[int]int // bucket lower bound (deg) -> segment count
	GreatCircleDistanceM  float64     // diagnostic only; Summarize does not set it, so it stays zero unless a caller fills it in
}

// Summarize computes a Summary over route, fetching each pixel's elevation
// from src. Elevation fetches that fail skip that segment from the
// elevation-dependent fields, per §4.4.
func Summarize(src ElevationSource, route []geotransform.Pixel, pixelSizeM float64) (Summary, error) {
	if len(route) < 2 {
		return Summary{}, ErrEmptyRoute
	}

	var s Summary
	s.SlopeHistogram = make(map[int]int)

	first := route[0]
	last := route[len(route)-1]
	s.CrowFliesDistance = pixelDistance(first, last) * pixelSizeM

	elev0, err0 := src.ValueAt(first)
	elevN, errN := src.ValueAt(last)
	if err0 == nil && errN == nil {
		s.NetElevationChange = elevN - elev0
	}

	var slopeSum float64
	var slopeCount int

	for i := 1; i < len(route); i++ {
		prev, cur := route[i-1], route[i]
		horizontalStep := pixelDistance(prev, cur) * pixelSizeM
		s.HorizontalDistance += horizontalStep

		prevElev, errPrev := src.ValueAt(prev)
		curElev, errCur := src.ValueAt(cur)
		if errPrev != nil || errCur != nil {
			continue // skip this segment's elevation-dependent fields
		}

		dh := curElev - prevElev
		s.TotalDistance += math.Sqrt(horizontalStep*horizontalStep + dh*dh)
		s.TotalElevationChange += math.Abs(dh)

		if horizontalStep < slopeEpsilonPixels*pixelSizeM {
			continue
		}
		slope := math.Atan2(math.Abs(dh), horizontalStep) * 180 / math.Pi
		if slope > s.MaxSlopeDeg {
			s.MaxSlopeDeg = slope
		}
		slopeSum += slope
		slopeCount++
		s.SlopeHistogram[histogramBucket(slope)]++
	}

	if slopeCount > 0 {
		s.AverageSlopeDeg = slopeSum / float64(slopeCount)
	}

	return s, nil
}

func histogramBucket(slopeDeg float64) int {
	return int(slopeDeg/histogramBucketWidthDeg) * int(histogramBucketWidthDeg)
}

func pixelDistance(a, b geotransform.Pixel) float64 {
	dx, dy := float64(a.X-b.X), float64(a.Y-b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// GreatCircleCrowFlies returns the great-circle distance in metres between
// two geographic endpoints, an independent cross-check reported alongside
// the pixel-space CrowFliesDistance for geographic rasters. It never
// substitutes for the §4.4 formula that Summarize computes.
func GreatCircleCrowFlies(g0, g1 geotransform.Geographic) float64 {
	return geotransform.GreatCircleDistanceM(g0, g1)
}

// FormatHistogram renders a slope histogram as a stable, sorted summary
// line — small convenience for output.WriteText.
func FormatHistogram(h map[int]int) string {
	if len(h) == 0 {
		return "(no segments)"
	}
	maxBucket := 0
	for b := range h {
		if b > maxBucket {
			maxBucket = b
		}
	}
	out := ""
	for b := 0; b <= maxBucket; b += int(histogramBucketWidthDeg) {
		if h[b] == 0 {
			continue
		}
		out += fmt.Sprintf("[%d-%d deg]: %d  ", b, b+int(histogramBucketWidthDeg), h[b])
	}
	return out
}
