// Command roverplan plans a slope-constrained traverse across a DEM and
// prints the resulting route followed by its metrics summary. It does not
// render a route graph.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "roverplan",
		Usage: "plan a slope-constrained rover traverse across a DEM",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "start", Required: true, Usage: "start point, \"x,y\" or \"lon,lat\""},
			&cli.StringFlag{Name: "goal", Required: true, Usage: "goal point, \"x,y\" or \"lon,lat\""},
			&cli.BoolFlag{Name: "start-pixel", Usage: "interpret --start as pixel x,y instead of lon,lat"},
			&cli.BoolFlag{Name: "goal-pixel", Usage: "interpret --goal as pixel x,y instead of lon,lat"},
			&cli.StringFlag{Name: "input", Required: true, Usage: "path to a DEM file in the terrain package's binary format"},
			&cli.StringFlag{Name: "output", Usage: "output file path; stdout if omitted"},
			&cli.Float64Flag{Name: "max-slope", Value: 30, Usage: "maximum tolerable slope in degrees"},
			&cli.IntFlag{Name: "buffer", Value: 16, Usage: "search window half-extent in pixels"},
			&cli.IntFlag{Name: "memory-kb", Usage: "derive --buffer from a memory budget in kilobytes instead"},
			&cli.StringFlag{Name: "format", Value: "text", Usage: "output format: text or json"},
			&cli.StringFlag{Name: "log-file", Usage: "rotating log file path; logs to stdout if omitted"},
		},
		Action: runPlan,
		Commands: []*cli.Command{
			demoCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "roverplan:", err)
		os.Exit(1)
	}
}
