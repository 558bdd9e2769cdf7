package output_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mempa-rover/pathplanner/geotransform"
	"github.com/mempa-rover/pathplanner/metrics"
	"github.com/mempa-rover/pathplanner/output"
)

func sampleRoute() []geotransform.Pixel {
	return []geotransform.Pixel{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 1}}
}

func TestWriteTextWithoutSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, output.WriteText(&buf, sampleRoute(), nil))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Equal(t, []string{"0 0", "1 0", "2 1"}, lines)
}

func TestWriteTextWithSummary(t *testing.T) {
	s := metrics.Summary{HorizontalDistance: 2.0, MaxSlopeDeg: 12.5}
	var buf bytes.Buffer
	require.NoError(t, output.WriteText(&buf, sampleRoute(), &s))

	out := buf.String()
	require.Contains(t, out, "horizontal_distance_m: 2.000")
	require.Contains(t, out, "max_slope_deg: 12.500")
}

func TestWriteJSONRoundTrips(t *testing.T) {
	s := metrics.Summary{HorizontalDistance: 2.0, SlopeHistogram: map[int]int{0: 2}}
	var buf bytes.Buffer
	require.NoError(t, output.WriteJSON(&buf, sampleRoute(), &s))

	var decoded struct {
		Route []struct {
			X, Y int
		} `json:"route"`
		Summary struct {
			HorizontalDistance float64         `json:"horizontal_distance_m"`
			SlopeHistogram     map[string]int  `json:"slope_histogram_deg"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Route, 3)
	require.Equal(t, 2.0, decoded.Summary.HorizontalDistance)
}

func TestWriteJSONOmitsSummaryWhenNil(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, output.WriteJSON(&buf, sampleRoute(), nil))
	require.NotContains(t, buf.String(), "summary")
}
