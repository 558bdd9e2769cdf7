package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap/zapcore"

	"github.com/mempa-rover/pathplanner/geotransform"
	"github.com/mempa-rover/pathplanner/logging"
	"github.com/mempa-rover/pathplanner/terrain"
	"github.com/mempa-rover/pathplanner/traverse"
)

// demoCommand builds a synthetic DEM in memory and runs a full traverse
// over it, without touching the filesystem for input. It exists so a
// fresh checkout can exercise the whole planning pipeline with one command.
func demoCommand() *cli.Command {
	return &cli.Command{
		Name:  "demo",
		Usage: "plan a traverse over a synthetic wall scenario and print the route",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "size", Value: 40, Usage: "synthetic raster width and height in pixels"},
			&cli.Float64Flag{Name: "wall-height", Value: 0.5, Usage: "height in metres of the synthetic wall obstacle"},
			&cli.Float64Flag{Name: "max-slope", Value: 30, Usage: "maximum tolerable slope in degrees"},
			&cli.IntFlag{Name: "buffer", Value: 8, Usage: "search window half-extent in pixels"},
			&cli.StringFlag{Name: "format", Value: "text", Usage: "output format: text or json"},
		},
		Action: runDemo,
	}
}

func runDemo(c *cli.Context) error {
	size := c.Int("size")
	wallCol := size / 2

	r, err := terrain.Wall(size, size, wallCol, 0, c.Float64("wall-height"), terrain.WithSynthPixelSizeM(1.0))
	if err != nil {
		return fmt.Errorf("roverplan: build demo raster: %w", err)
	}

	cfg, err := traverse.NewConfig(
		traverse.WithMaxSlopeDeg(c.Float64("max-slope")),
		traverse.WithBuffer(c.Int("buffer")),
	)
	if err != nil {
		return err
	}

	logger := logging.NewSugaredLogger("roverplan-demo", zapcore.InfoLevel, logging.NewStdoutAppender())
	defer logger.Sync()

	planner := traverse.NewPlanner(r, cfg, logger)
	start := geotransform.Pixel{X: 0, Y: size / 2}
	goal := geotransform.Pixel{X: size - 1, Y: size / 2}

	result, runErr := planner.Run(context.Background(), start, goal)
	if runErr != nil {
		return runErr
	}

	return writeRoute(c, result.Route, summarize(r, result.Route))
}
