// Package traverse implements the Traverse Controller: the iterative,
// memory-bounded planning loop that drives a rover from a start pixel to a
// goal pixel across a raster larger than any single search window.
//
// Each iteration asks its TerrainWindowProvider for a window centred on the
// rover's current pixel, clamps the true goal into that window's local
// coordinates, hands both to pathengine.PlanStep, and advances current_px
// along the returned local path. The loop terminates successfully when
// current_px reaches goal_px, or fails with a typed PlanError carrying
// whatever partial route was produced before the failure.
//
// Package traverse never re-plans around a failure; it has no backtracking
// strategy, only four distinguished failure kinds (see ErrorKind) and the
// partial route up to the point of failure.
package traverse
