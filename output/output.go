package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mempa-rover/pathplanner/geotransform"
	"github.com/mempa-rover/pathplanner/metrics"
)

// document is the shape WriteJSON renders, ordered (x,y) pairs plus an
// optional metrics summary.
type document struct {
	Route   []point  `json:"route"`
	Summary *summary `json:"summary,omitempty"`
}

type point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type summary struct {
	HorizontalDistance   float64       `json:"horizontal_distance_m"`
	TotalDistance        float64       `json:"total_distance_m"`
	CrowFliesDistance    float64       `json:"crow_flies_distance_m"`
	TotalElevationChange float64       `json:"total_elevation_change_m"`
	NetElevationChange   float64       `json:"net_elevation_change_m"`
	MaxSlopeDeg          float64       `json:"max_slope_deg"`
	AverageSlopeDeg      float64       `json:"average_slope_deg"`
	SlopeHistogram       map[int]int   `json:"slope_histogram_deg,omitempty"`
	GreatCircleDistanceM float64       `json:"great_circle_distance_m,omitempty"`
}

func toDocument(route []geotransform.Pixel, s *metrics.Summary) document {
	doc := document{Route: make([]point, len(route))}
	for i, p := range route {
		doc.Route[i] = point{X: p.X, Y: p.Y}
	}
	if s != nil {
		doc.Summary = &summary{
			HorizontalDistance:   s.HorizontalDistance,
			TotalDistance:        s.TotalDistance,
			CrowFliesDistance:    s.CrowFliesDistance,
			TotalElevationChange: s.TotalElevationChange,
			NetElevationChange:   s.NetElevationChange,
			MaxSlopeDeg:          s.MaxSlopeDeg,
			AverageSlopeDeg:      s.AverageSlopeDeg,
			SlopeHistogram:       s.SlopeHistogram,
			GreatCircleDistanceM: s.GreatCircleDistanceM,
		}
	}
	return doc
}

// WriteText writes route as one "x y" pair per line, followed by a blank
// line and a human-readable summary block when summary is non-nil.
func WriteText(w io.Writer, route []geotransform.Pixel, summary *metrics.Summary) error {
	for _, p := range route {
		if _, err := fmt.Fprintf(w, "%d %d\n", p.X, p.Y); err != nil {
			return fmt.Errorf("output: write route: %w", err)
		}
	}
	if summary == nil {
		return nil
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return fmt.Errorf("output: write separator: %w", err)
	}
	_, err := fmt.Fprintf(w,
		"horizontal_distance_m: %.3f\ntotal_distance_m: %.3f\ncrow_flies_distance_m: %.3f\n"+
			"total_elevation_change_m: %.3f\nnet_elevation_change_m: %.3f\n"+
			"max_slope_deg: %.3f\naverage_slope_deg: %.3f\nslope_histogram: %s\n",
		summary.HorizontalDistance, summary.TotalDistance, summary.CrowFliesDistance,
		summary.TotalElevationChange, summary.NetElevationChange,
		summary.MaxSlopeDeg, summary.AverageSlopeDeg, metrics.FormatHistogram(summary.SlopeHistogram))
	if err != nil {
		return fmt.Errorf("output: write summary: %w", err)
	}
	return nil
}

// WriteJSON writes route and the optional summary as a single JSON object.
func WriteJSON(w io.Writer, route []geotransform.Pixel, summary *metrics.Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toDocument(route, summary)); err != nil {
		return fmt.Errorf("output: encode json: %w", err)
	}
	return nil
}
