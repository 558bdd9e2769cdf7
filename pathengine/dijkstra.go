package pathengine

import (
	"container/heap"
	"math"

	"github.com/mempa-rover/pathplanner/geotransform"
	"github.com/mempa-rover/pathplanner/terrain"
)

// neighborOffsets enumerates the eight orthogonal and diagonal neighbours of
// a cell. Order only affects which of several equal-distance paths is
// found: the heap orders entries by tentative distance alone, so ties are
// not broken by insertion order.
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// searchNode is one cell's state in the search arena, indexed by row-major
// cell index y*w+x.
type searchNode struct {
	dist    float64
	prev    int // row-major index of the predecessor, or -1
	visited bool
}

// PlanStep runs one constrained shortest-path search over w from start to
// goal and returns the ordered path, or an empty Path if the goal is
// unreachable under the slope constraint. It never returns an error; see
// doc.go for the "never throws" contract.
func PlanStep(w *terrain.Window, start, goal geotransform.Local, cfg Config) Path {
	if w == nil || w.W <= 0 || w.H <= 0 {
		return nil
	}
	if !w.InBounds(start.X, start.Y) || !w.InBounds(goal.X, goal.Y) {
		return nil
	}
	if math.IsNaN(w.Elevations[start.Y][start.X]) {
		return nil
	}

	n := w.W * w.H
	nodes := make([]searchNode, n)
	for i := range nodes {
		nodes[i] = searchNode{dist: math.Inf(1), prev: -1}
	}

	idx := func(x, y int) int { return y*w.W + x }
	startIdx := idx(start.X, start.Y)
	goalIdx := idx(goal.X, goal.Y)
	nodes[startIdx].dist = 0

	pq := make(cellPQ, 0, n)
	heap.Init(&pq)
	heap.Push(&pq, &cellItem{index: startIdx, dist: 0})

	reachedGoal := false

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*cellItem)
		u := item.index
		if nodes[u].visited {
			continue
		}
		nodes[u].visited = true

		if u == goalIdx {
			reachedGoal = true
			break
		}

		ux, uy := u%w.W, u/w.W
		uz := w.Elevations[uy][ux]

		for _, off := range neighborOffsets {
			vx, vy := ux+off[0], uy+off[1]
			if !w.InBounds(vx, vy) {
				continue
			}
			v := idx(vx, vy)
			if nodes[v].visited {
				continue
			}
			vz := w.Elevations[vy][vx]
			if math.IsNaN(vz) {
				continue
			}

			r := cfg.PixelSizeM
			if off[0] != 0 && off[1] != 0 {
				r *= math.Sqrt2
			}
			dz := vz - uz
			slope := math.Atan2(math.Abs(dz), r) * 180 / math.Pi
			if slope > cfg.MaxSlopeDeg {
				continue
			}

			weight := math.Sqrt(r*r + dz*dz)
			newDist := nodes[u].dist + weight
			if newDist >= nodes[v].dist {
				continue
			}

			nodes[v].dist = newDist
			nodes[v].prev = u
			heap.Push(&pq, &cellItem{index: v, dist: newDist})
		}
	}

	if !reachedGoal {
		return nil
	}
	return reconstruct(w, nodes, goalIdx)
}

func reconstruct(w *terrain.Window, nodes []searchNode, goalIdx int) Path {
	var rev Path
	for i := goalIdx; i != -1; i = nodes[i].prev {
		rev = append(rev, geotransform.Local{X: i % w.W, Y: i / w.W})
	}
	path := make(Path, len(rev))
	for i, c := range rev {
		path[len(rev)-1-i] = c
	}
	return path
}

// cellItem is one entry in the search priority queue: a cell index and its
// current best-known distance from start. Stale entries (a cell already
// visited with a better distance) are pushed and later discarded lazily,
// rather than removed in place.
type cellItem struct {
	index int
	dist  float64
}

// cellPQ is a min-heap of *cellItem ordered by ascending distance.
type cellPQ []*cellItem

func (pq cellPQ) Len() int            { return len(pq) }
func (pq cellPQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq cellPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *cellPQ) Push(x interface{}) { *pq = append(*pq, x.(*cellItem)) }
func (pq *cellPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
