package pathengine_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mempa-rover/pathplanner/geotransform"
	"github.com/mempa-rover/pathplanner/pathengine"
	"github.com/mempa-rover/pathplanner/terrain"
)

func flatWindow(w, h int, elev float64) *terrain.Window {
	rows := make([][]float64, h)
	for y := range rows {
		row := make([]float64, w)
		for x := range row {
			row[x] = elev
		}
		rows[y] = row
	}
	return &terrain.Window{Elevations: rows, W: w, H: h}
}

func mustConfig(t *testing.T, maxSlope, pixel float64) pathengine.Config {
	t.Helper()
	cfg, err := pathengine.NewConfig(
		pathengine.WithMaxSlopeDeg(maxSlope),
		pathengine.WithPixelSizeM(pixel),
	)
	require.NoError(t, err)
	return cfg
}

func TestPlanStepFlatGridReachesGoal(t *testing.T) {
	w := flatWindow(5, 5, 0)
	cfg := mustConfig(t, 30, 1)

	path := pathengine.PlanStep(w, geotransform.Local{X: 0, Y: 0}, geotransform.Local{X: 4, Y: 4}, cfg)

	require.NotEmpty(t, path)
	require.Equal(t, geotransform.Local{X: 0, Y: 0}, path[0])
	require.Equal(t, geotransform.Local{X: 4, Y: 4}, path[len(path)-1])
	// Flat terrain with diagonal movement allowed: a straight diagonal is optimal.
	require.Len(t, path, 5)
}

func TestPlanStepStartOutOfBoundsReturnsEmpty(t *testing.T) {
	w := flatWindow(3, 3, 0)
	cfg := mustConfig(t, 30, 1)

	path := pathengine.PlanStep(w, geotransform.Local{X: -1, Y: 0}, geotransform.Local{X: 2, Y: 2}, cfg)

	require.Empty(t, path)
}

func TestPlanStepNaNStartReturnsEmpty(t *testing.T) {
	w := flatWindow(3, 3, 0)
	w.Elevations[0][0] = math.NaN()
	cfg := mustConfig(t, 30, 1)

	path := pathengine.PlanStep(w, geotransform.Local{X: 0, Y: 0}, geotransform.Local{X: 2, Y: 2}, cfg)

	require.Empty(t, path)
}

func TestPlanStepSlopeWallBlocksGoal(t *testing.T) {
	// A 1m-wide, 100m-tall cliff running down the middle column exceeds any
	// reasonable slope tolerance, severing east-west travel entirely: the
	// goal on the far side becomes unreachable and PlanStep must report
	// that as an empty path, never a partial one.
	w := flatWindow(3, 3, 0)
	for y := 0; y < 3; y++ {
		w.Elevations[y][1] = 100
	}
	cfg := mustConfig(t, 30, 1)

	path := pathengine.PlanStep(w, geotransform.Local{X: 0, Y: 1}, geotransform.Local{X: 2, Y: 1}, cfg)

	require.Empty(t, path)
}

func TestPlanStepNoDataWallBlocksGoal(t *testing.T) {
	// A no-data wall spanning every row leaves no route to the far side.
	w := flatWindow(3, 3, 0)
	for y := 0; y < 3; y++ {
		w.Elevations[y][1] = math.NaN()
	}
	cfg := mustConfig(t, 30, 1)

	path := pathengine.PlanStep(w, geotransform.Local{X: 0, Y: 1}, geotransform.Local{X: 2, Y: 1}, cfg)

	require.Empty(t, path)
}

func TestPlanStepEmptyWindowReturnsEmptyPath(t *testing.T) {
	path := pathengine.PlanStep(&terrain.Window{W: 0, H: 0}, geotransform.Local{}, geotransform.Local{}, mustConfig(t, 30, 1))
	require.Empty(t, path)
}

func TestPlanStepStartEqualsGoalReturnsBothEndpoints(t *testing.T) {
	w := flatWindow(3, 3, 0)
	path := pathengine.PlanStep(w, geotransform.Local{X: 1, Y: 1}, geotransform.Local{X: 1, Y: 1}, mustConfig(t, 30, 1))
	require.Equal(t, pathengine.Path{{X: 1, Y: 1}}, path)
}

func TestPlanStepPrefersGentlerDetourOverSteepDirectRoute(t *testing.T) {
	// Direct crossing at column 1 is a single cell rising 50m over 1m (too
	// steep); going around via row 2, where column 1 is flat, is feasible.
	w := flatWindow(3, 3, 0)
	w.Elevations[0][1] = 50
	w.Elevations[1][1] = 50
	cfg := mustConfig(t, 60, 1)

	path := pathengine.PlanStep(w, geotransform.Local{X: 0, Y: 0}, geotransform.Local{X: 2, Y: 0}, cfg)

	require.NotEmpty(t, path)
	for _, c := range path {
		require.False(t, c.X == 1 && c.Y != 2, "path should detour through row 2 at column 1")
	}
}
