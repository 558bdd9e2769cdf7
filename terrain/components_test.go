package terrain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mempa-rover/pathplanner/geotransform"
	"github.com/mempa-rover/pathplanner/terrain"
)

func windowWithNaNColumn(w, h, col int) *terrain.Window {
	rows := make([][]float64, h)
	for y := 0; y < h; y++ {
		row := make([]float64, w)
		for x := 0; x < w; x++ {
			if x == col {
				row[x] = math.NaN()
			}
		}
		rows[y] = row
	}
	return &terrain.Window{Elevations: rows, W: w, H: h}
}

func TestDataComponentsSplitsAcrossNoDataWall(t *testing.T) {
	w := windowWithNaNColumn(5, 5, 2)

	data, gaps := w.DataComponents()

	require.Len(t, data, 2, "data should split into two regions either side of the wall")
	require.Len(t, gaps, 1)
	require.Len(t, gaps[0], 5)
}

func TestDataComponentsAllDataIsOneComponent(t *testing.T) {
	w := &terrain.Window{Elevations: [][]float64{{0, 0}, {0, 0}}, W: 2, H: 2}

	data, gaps := w.DataComponents()

	require.Len(t, data, 1)
	require.Empty(t, gaps)
	require.Len(t, data[0], 4)
}

func TestGapPathCostsOnePerNoDataCellCrossed(t *testing.T) {
	w := windowWithNaNColumn(5, 5, 2)

	path, cost, err := w.GapPath(geotransform.Local{X: 0, Y: 0}, geotransform.Local{X: 4, Y: 0})

	require.NoError(t, err)
	require.Equal(t, 1, cost)
	require.NotEmpty(t, path)
	require.Equal(t, geotransform.Local{X: 0, Y: 0}, path[0])
	require.Equal(t, geotransform.Local{X: 4, Y: 0}, path[len(path)-1])
}

func TestGapPathSameCellIsZeroCost(t *testing.T) {
	w := windowWithNaNColumn(3, 3, 1)
	path, cost, err := w.GapPath(geotransform.Local{X: 0, Y: 0}, geotransform.Local{X: 0, Y: 0})
	require.NoError(t, err)
	require.Equal(t, 0, cost)
	require.Equal(t, []geotransform.Local{{X: 0, Y: 0}}, path)
}

func TestGapPathOutOfBoundsErrors(t *testing.T) {
	w := windowWithNaNColumn(3, 3, 1)
	_, _, err := w.GapPath(geotransform.Local{X: -1, Y: 0}, geotransform.Local{X: 1, Y: 1})
	require.ErrorIs(t, err, terrain.ErrNoGapPath)
}
