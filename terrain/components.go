package terrain

import (
	"errors"
	"math"

	"github.com/mempa-rover/pathplanner/geotransform"
)

// ErrNoGapPath indicates no route exists between two cells regardless of how
// much no-data coverage it is allowed to cross — only possible if one
// endpoint is itself outside the window.
var ErrNoGapPath = errors.New("terrain: no route between requested cells")

// DataComponents partitions a window's cells into 8-connected components of
// data coverage: one group per maximal connected region of non-NaN cells,
// plus one group per maximal connected region of no-data (NaN) cells. This
// is a diagnostic a caller can run on a window to report DEM coverage gaps
// up front; neither pathengine nor traverse calls it.
//
// Complexity: O(W*H) time and memory.
func (w *Window) DataComponents() (data [][]geotransform.Local, gaps [][]geotransform.Local) {
	if w.W == 0 || w.H == 0 {
		return nil, nil
	}
	visited := make([]bool, w.W*w.H)
	idx := func(x, y int) int { return y*w.W + x }

	for y := 0; y < w.H; y++ {
		for x := 0; x < w.W; x++ {
			start := idx(x, y)
			if visited[start] {
				continue
			}
			isData := !math.IsNaN(w.Elevations[y][x])

			queue := []int{start}
			visited[start] = true
			var comp []geotransform.Local
			for qi := 0; qi < len(queue); qi++ {
				i := queue[qi]
				cx, cy := i%w.W, i/w.W
				comp = append(comp, geotransform.Local{X: cx, Y: cy})

				for _, d := range neighborOffsets8 {
					nx, ny := cx+d[0], cy+d[1]
					if !w.InBounds(nx, ny) {
						continue
					}
					nIsData := !math.IsNaN(w.Elevations[ny][nx])
					if nIsData != isData {
						continue
					}
					ni := idx(nx, ny)
					if !visited[ni] {
						visited[ni] = true
						queue = append(queue, ni)
					}
				}
			}

			if isData {
				data = append(data, comp)
			} else {
				gaps = append(gaps, comp)
			}
		}
	}
	return data, gaps
}

// GapPath finds the minimum-cost route between from and to, where crossing
// a data cell costs 0 and crossing a no-data cell costs 1 — the same 0-1
// BFS deque technique used for minimal land/water conversions, retargeted
// from a land/water threshold to a data/no-data one. The returned cost is
// the number of no-data cells the route must cross, a direct estimate of
// how much a real raster's coverage gap would hurt a planned traverse.
//
// Complexity: O(W*H) time, O(W*H) memory.
func (w *Window) GapPath(from, to geotransform.Local) ([]geotransform.Local, int, error) {
	if !w.InBounds(from.X, from.Y) || !w.InBounds(to.X, to.Y) {
		return nil, 0, ErrNoGapPath
	}

	n := w.W * w.H
	idx := func(x, y int) int { return y*w.W + x }
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	capDeque := n + 1
	deque := make([]int, capDeque)
	head, tail := 0, 0

	start := idx(from.X, from.Y)
	dist[start] = 0
	head = (head - 1 + capDeque) % capDeque
	deque[head] = start

	target := idx(to.X, to.Y)
	found := false

	for head != tail {
		u := deque[head]
		head = (head + 1) % capDeque
		if u == target {
			found = true
			break
		}

		ux, uy := u%w.W, u/w.W
		for _, d := range neighborOffsets8 {
			vx, vy := ux+d[0], uy+d[1]
			if !w.InBounds(vx, vy) {
				continue
			}
			v := idx(vx, vy)
			step := 0
			if math.IsNaN(w.Elevations[vy][vx]) {
				step = 1
			}
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					head = (head - 1 + capDeque) % capDeque
					deque[head] = v
				} else {
					deque[tail] = v
					tail = (tail + 1) % capDeque
				}
			}
		}
	}

	if !found {
		return nil, 0, ErrNoGapPath
	}

	var revIdx []int
	for at := target; at >= 0; at = prev[at] {
		revIdx = append(revIdx, at)
	}
	path := make([]geotransform.Local, len(revIdx))
	for i, v := range revIdx {
		path[len(revIdx)-1-i] = geotransform.Local{X: v % w.W, Y: v / w.W}
	}
	return path, dist[target], nil
}

var neighborOffsets8 = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}
