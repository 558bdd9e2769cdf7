// Package pathplanner plans memory-bounded, slope-constrained traverses
// across a digital elevation model (DEM) too large to hold a full-raster
// shortest-path search in memory at once.
//
// The pipeline, front to back:
//
//	terrain/     — opens a DEM (or synthesizes one) and serves bounded
//	               square windows of elevation data around a point
//	pathengine/  — finds a slope-feasible shortest path across one window,
//	               via 8-connected Dijkstra with a per-edge slope filter
//	traverse/    — drives the window-by-window loop: plan a step, advance
//	               toward the goal, re-center the window, repeat
//	metrics/     — summarises a finished route's distance and slope
//	output/      — renders a route and its summary as text or JSON
//	routegraph/  — renders a finished traverse as a Graphviz diagram, for
//	               inspection, never consulted by planning itself
//
// cmd/roverplan is the CLI built on top of this pipeline.
//
// Each shortest-path search covers one window only, so the search's memory
// use is bounded by the window size, independent of the DEM's extent.
// terrain.Raster itself keeps the whole elevation grid resident in memory.
package pathplanner
