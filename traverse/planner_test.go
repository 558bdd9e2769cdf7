package traverse_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mempa-rover/pathplanner/geotransform"
	"github.com/mempa-rover/pathplanner/terrain"
	"github.com/mempa-rover/pathplanner/traverse"
)

func mustPlannerConfig(t *testing.T, maxSlope float64, buffer int) traverse.Config {
	t.Helper()
	cfg, err := traverse.NewConfig(traverse.WithMaxSlopeDeg(maxSlope), traverse.WithBuffer(buffer))
	require.NoError(t, err)
	return cfg
}

func TestRunFlatTerrainReachesGoal(t *testing.T) {
	r, err := terrain.Flat(50, 50, 0)
	require.NoError(t, err)

	p := traverse.NewPlanner(r, mustPlannerConfig(t, 30, 5), nil)
	result, err := p.Run(context.Background(), geotransform.Pixel{X: 0, Y: 0}, geotransform.Pixel{X: 20, Y: 20})

	require.NoError(t, err)
	require.Equal(t, geotransform.Pixel{X: 0, Y: 0}, result.Route[0])
	require.Equal(t, geotransform.Pixel{X: 20, Y: 20}, result.Route[len(result.Route)-1])
}

func TestRunStartEqualsGoalIsTrivialSuccess(t *testing.T) {
	r, err := terrain.Flat(10, 10, 0)
	require.NoError(t, err)

	p := traverse.NewPlanner(r, mustPlannerConfig(t, 30, 3), nil)
	result, err := p.Run(context.Background(), geotransform.Pixel{X: 5, Y: 5}, geotransform.Pixel{X: 5, Y: 5})

	require.NoError(t, err)
	require.Equal(t, []geotransform.Pixel{{X: 5, Y: 5}}, result.Route)
}

func TestRunOutOfBoundsStartIsInvalidConfiguration(t *testing.T) {
	r, err := terrain.Flat(10, 10, 0)
	require.NoError(t, err)

	p := traverse.NewPlanner(r, mustPlannerConfig(t, 30, 3), nil)
	_, err = p.Run(context.Background(), geotransform.Pixel{X: -1, Y: 0}, geotransform.Pixel{X: 5, Y: 5})

	var planErr *traverse.PlanError
	require.ErrorAs(t, err, &planErr)
	require.Equal(t, traverse.InvalidConfiguration, planErr.Kind)
	require.Empty(t, planErr.Route)
}

func TestRunSlopeWallMakesGoalUnreachable(t *testing.T) {
	// Scenario S3: a 20m wall (about 87 degrees over one 1m pixel) spans the
	// raster, goal lies behind it, and the configured tolerance cannot cross it.
	r, err := terrain.Wall(20, 20, 10, 0, 20)
	require.NoError(t, err)

	p := traverse.NewPlanner(r, mustPlannerConfig(t, 10, 8), nil)
	result, err := p.Run(context.Background(), geotransform.Pixel{X: 0, Y: 0}, geotransform.Pixel{X: 19, Y: 0})

	var planErr *traverse.PlanError
	require.ErrorAs(t, err, &planErr)
	require.Equal(t, traverse.Unreachable, planErr.Kind)
	require.Equal(t, geotransform.Pixel{X: 0, Y: 0}, planErr.Route[0])
}

func TestRunRampBlocksCrossingDirectionOnly(t *testing.T) {
	// Scenario S5: a ramp rising in x at ~84 degrees is infeasible to
	// cross at a 20-degree tolerance; the goal on the far side is
	// unreachable, even though travel along y stays feasible.
	r, err := terrain.Ramp(10, 10, 84, 1.0)
	require.NoError(t, err)

	p := traverse.NewPlanner(r, mustPlannerConfig(t, 20, 5), nil)
	_, err = p.Run(context.Background(), geotransform.Pixel{X: 0, Y: 0}, geotransform.Pixel{X: 9, Y: 0})

	var planErr *traverse.PlanError
	require.ErrorAs(t, err, &planErr)
	require.Equal(t, traverse.Unreachable, planErr.Kind)
}

func TestRunRespectsContextCancellation(t *testing.T) {
	r, err := terrain.Flat(50, 50, 0)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := traverse.NewPlanner(r, mustPlannerConfig(t, 30, 5), nil)
	_, err = p.Run(ctx, geotransform.Pixel{X: 0, Y: 0}, geotransform.Pixel{X: 40, Y: 40})

	require.Error(t, err)
	var planErr *traverse.PlanError
	require.ErrorAs(t, err, &planErr)
	require.ErrorIs(t, planErr.Err, context.Canceled)
}
