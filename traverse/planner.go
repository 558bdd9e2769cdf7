package traverse

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mempa-rover/pathplanner/geotransform"
	"github.com/mempa-rover/pathplanner/pathengine"
)

// Planner drives the iterative, memory-bounded traverse loop over a single
// TerrainWindowProvider.
type Planner struct {
	TWP    TerrainWindowProvider
	Config Config
	Logger *zap.SugaredLogger // nil-safe; no logging if nil
}

// NewPlanner builds a Planner. twp must be non-nil; cfg should come from
// NewConfig so it is already validated.
func NewPlanner(twp TerrainWindowProvider, cfg Config, logger *zap.SugaredLogger) *Planner {
	return &Planner{TWP: twp, Config: cfg, Logger: logger}
}

// Run drives the planning loop from start to goal, both in global pixel
// coordinates. It returns a non-nil error, always a *PlanError, on any
// failure; Result.Route always carries whatever route was produced.
func (p *Planner) Run(ctx context.Context, start, goal geotransform.Pixel) (Result, error) {
	if err := p.validate(start, goal); err != nil {
		return Result{}, &PlanError{Kind: InvalidConfiguration, Err: err}
	}

	if start == goal {
		return Result{Route: []geotransform.Pixel{start}}, nil
	}

	route := make([]geotransform.Pixel, 0, chebyshevDistance(start, goal)+1)
	route = append(route, start)
	current := start

	pathCfg, err := pathengine.NewConfig(
		pathengine.WithMaxSlopeDeg(p.Config.MaxSlopeDeg),
		pathengine.WithPixelSizeM(p.TWP.ResolutionMeters()),
	)
	if err != nil {
		return Result{}, &PlanError{Kind: InvalidConfiguration, Err: err}
	}

	for current != goal {
		if err := ctx.Err(); err != nil {
			return Result{Route: route}, &PlanError{Kind: WindowReadFailure, Route: route, Err: err}
		}

		window, err := p.TWP.ReadSquareWindow(current, p.Config.Buffer)
		if err != nil {
			return Result{Route: route}, &PlanError{Kind: WindowReadFailure, Route: route, Err: err}
		}

		localGoal := clampLocal(geotransform.GlobalToLocal(goal, window.Anchor), window.W, window.H)

		path := pathengine.PlanStep(window, window.Local, localGoal, pathCfg)
		if len(path) == 0 {
			return Result{Route: route}, &PlanError{Kind: Unreachable, Route: route, Err: fmt.Errorf("no feasible path from %v toward %v within window anchored at %v", current, goal, window.Anchor)}
		}

		before := len(route)
		for _, l := range path[1:] { // path[0] duplicates current, already the tail of route
			route = append(route, geotransform.LocalToGlobal(l, window.Anchor))
		}
		if len(route) == before {
			return Result{Route: route}, &PlanError{Kind: NoProgress, Route: route, Err: fmt.Errorf("no progress from %v", current)}
		}

		next := route[len(route)-1]
		if p.Logger != nil {
			p.Logger.Infow("traverse iteration",
				"current_px", current, "next_px", next,
				"window_w", window.W, "window_h", window.H,
				"local_path_len", len(path))
		}
		current = next
	}

	return Result{Route: route}, nil
}

func (p *Planner) validate(start, goal geotransform.Pixel) error {
	if p.Config.Buffer <= 0 {
		return fmt.Errorf("%w: got %d", ErrNonPositiveBuffer, p.Config.Buffer)
	}
	if p.Config.MaxSlopeDeg < 0 || p.Config.MaxSlopeDeg > 90 {
		return fmt.Errorf("%w: got %g", ErrSlopeOutOfRange, p.Config.MaxSlopeDeg)
	}
	if !p.TWP.InBounds(start) {
		return fmt.Errorf("traverse: start pixel %v outside raster bounds", start)
	}
	if !p.TWP.InBounds(goal) {
		return fmt.Errorf("traverse: goal pixel %v outside raster bounds", goal)
	}
	return nil
}

// clampLocal clamps l into [0, w-1] x [0, h-1], the local sub-goal
// projection per §4.3 step 3.
func clampLocal(l geotransform.Local, w, h int) geotransform.Local {
	x, y := l.X, l.Y
	if x < 0 {
		x = 0
	} else if x > w-1 {
		x = w - 1
	}
	if y < 0 {
		y = 0
	} else if y > h-1 {
		y = h - 1
	}
	return geotransform.Local{X: x, Y: y}
}

// chebyshevDistance returns max(|dx|, |dy|), used as the initial route
// capacity hint (§5 resource policy).
func chebyshevDistance(a, b geotransform.Pixel) int {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}
