package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mempa-rover/pathplanner/geotransform"
	"github.com/mempa-rover/pathplanner/logging"
	"github.com/mempa-rover/pathplanner/metrics"
	"github.com/mempa-rover/pathplanner/output"
	"github.com/mempa-rover/pathplanner/pathengine"
	"github.com/mempa-rover/pathplanner/terrain"
	"github.com/mempa-rover/pathplanner/traverse"
)

// runPlan is the Action for the root command: plan one traverse over a
// DEM file on disk and write its route (and metrics) to the chosen sink.
func runPlan(c *cli.Context) error {
	logger, closer := buildLogger(c.String("log-file"))
	defer func() {
		_ = logger.Sync()
		if closer != nil {
			_ = closer.Close()
		}
	}()

	r, err := terrain.Open(c.String("input"))
	if err != nil {
		return err
	}

	start, err := resolvePixel(c.String("start"), c.Bool("start-pixel"), r)
	if err != nil {
		return err
	}
	goal, err := resolvePixel(c.String("goal"), c.Bool("goal-pixel"), r)
	if err != nil {
		return err
	}

	buffer := c.Int("buffer")
	if kb := c.Int("memory-kb"); kb > 0 {
		buffer = pathengine.BufferFromMemoryBudget(kb, 0)
	}

	cfg, err := traverse.NewConfig(
		traverse.WithMaxSlopeDeg(c.Float64("max-slope")),
		traverse.WithBuffer(buffer),
	)
	if err != nil {
		return err
	}

	planner := traverse.NewPlanner(r, cfg, logger)
	result, runErr := planner.Run(context.Background(), start, goal)
	if runErr != nil {
		return runErr
	}

	return writeRoute(c, result.Route, summarize(r, result.Route))
}

// summarize computes a metrics.Summary for route, returning nil if it
// cannot be computed (fewer than two pixels).
func summarize(r *terrain.Raster, route []geotransform.Pixel) *metrics.Summary {
	s, err := metrics.Summarize(r, route, r.ResolutionMeters())
	if err != nil {
		return nil
	}
	return &s
}

// writeRoute renders route (and summary, if non-nil) in the requested
// format to the requested sink.
func writeRoute(c *cli.Context, route []geotransform.Pixel, summary *metrics.Summary) error {
	w, closer, err := sink(c.String("output"))
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	switch c.String("format") {
	case "json":
		return output.WriteJSON(w, route, summary)
	case "text", "":
		return output.WriteText(w, route, summary)
	default:
		return fmt.Errorf("roverplan: unknown --format %q, want text or json", c.String("format"))
	}
}

func sink(path string) (io.Writer, io.Closer, error) {
	if path == "" {
		return os.Stdout, nil, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("roverplan: create output %s: %w", path, err)
	}
	return f, f, nil
}

func buildLogger(path string) (*zap.SugaredLogger, io.Closer) {
	if path == "" {
		return logging.NewSugaredLogger("roverplan", zapcore.InfoLevel, logging.NewStdoutAppender()), nil
	}
	appender, closer := logging.NewFileAppender(path)
	return logging.NewSugaredLogger("roverplan", zapcore.InfoLevel, appender), closer
}
