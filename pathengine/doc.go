// Package pathengine implements the constrained shortest-path search at the
// heart of the traverse planner: given a rectangular elevation window, a
// local start and goal, a maximum tolerable slope, and the window's pixel
// size, it returns the ordered sequence of 8-connected local cells from
// start to goal, or an empty sequence when goal cannot be reached; no
// partial path toward an unreachable goal is returned.
//
// The search is Dijkstra's algorithm over a dense W×H grid. Vertices are
// cells; edges connect each cell to up to eight neighbours (orthogonal and
// diagonal). An edge exists only if both endpoints have a finite elevation
// and the slope between them does not exceed MaxSlopeDeg; its weight is the
// 3D Euclidean distance between the two cells.
//
// PlanStep is stateless: every call allocates and releases its own search
// arena, in the manner of a single Dijkstra run. It never panics; invalid
// or degenerate inputs (empty window, out-of-bounds endpoints, unreachable
// goal) are reported by returning an empty Path, never an error, matching
// the "never throws" contract that callers rely on to keep planning loops
// free of special-cased recovery.
//
// Complexity: O(N log N) time and O(N) space, where N = W*H.
package pathengine
