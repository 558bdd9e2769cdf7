package routegraph

import (
	"errors"
	"fmt"
	"math"

	"github.com/mempa-rover/pathplanner/geotransform"
	"github.com/mempa-rover/pathplanner/terrain"
)

// ErrNilWindow indicates Build was called without a window to render.
var ErrNilWindow = errors.New("routegraph: window is nil")

// weightScale rounds a CSPE edge weight (metres) into Link's integer
// WeightMM field at millimetre precision. This loses nothing a diagnostic
// rendering needs and is never read back into planning.
const weightScale = 1000.0

var neighborOffsets8 = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Cell is one rendered vertex: a finite-elevation window cell, identified
// by its global pixel ID "x,y".
type Cell struct {
	ID         string
	ElevationM float64
	OnRoute    bool
}

// Link is one rendered edge between two Cells, undirected.
type Link struct {
	From, To string
	WeightMM int64
}

// Graph is the small, render-only adjacency structure Build produces: a
// set of Cells and the Links between 8-connected neighbours. It carries no
// locking or mutation API beyond construction — nothing plans against it,
// nothing mutates it after Build returns.
type Graph struct {
	cells []Cell
	links []Link
	seen  map[[2]string]bool
}

// Cells returns every vertex in the graph, in row-major scan order.
func (g *Graph) Cells() []Cell { return g.cells }

// Links returns every edge in the graph.
func (g *Graph) Links() []Link { return g.links }

// CellCount returns the number of vertices in the graph.
func (g *Graph) CellCount() int { return len(g.cells) }

// LinkCount returns the number of edges in the graph.
func (g *Graph) LinkCount() int { return len(g.links) }

func newGraph() *Graph {
	return &Graph{seen: make(map[[2]string]bool)}
}

func (g *Graph) addCell(id string, elevationM float64, onRoute bool) {
	g.cells = append(g.cells, Cell{ID: id, ElevationM: elevationM, OnRoute: onRoute})
}

func (g *Graph) hasLink(a, b string) bool {
	return g.seen[linkKey(a, b)]
}

func (g *Graph) addLink(a, b string, weightMM int64) {
	g.seen[linkKey(a, b)] = true
	g.links = append(g.links, Link{From: a, To: b, WeightMM: weightMM})
}

func linkKey(a, b string) [2]string {
	if a > b {
		a, b = b, a
	}
	return [2]string{a, b}
}

// Build converts window into a Graph: one Cell per finite-elevation cell
// (ID "x,y" in global pixel coordinates), undirected Links between
// 8-connected finite-elevation neighbours weighted by the same horizontal
// run + elevation delta formula pathengine uses, and a per-Cell flag
// recording whether that cell appears in route.
func Build(window *terrain.Window, route []geotransform.Pixel, pixelSizeM float64) (*Graph, error) {
	if window == nil {
		return nil, ErrNilWindow
	}

	g := newGraph()

	onRoute := make(map[geotransform.Pixel]bool, len(route))
	for _, p := range route {
		onRoute[p] = true
	}

	cellID := func(x, y int) string {
		global := geotransform.LocalToGlobal(geotransform.Local{X: x, Y: y}, window.Anchor)
		return fmt.Sprintf("%d,%d", global.X, global.Y)
	}

	for y := 0; y < window.H; y++ {
		for x := 0; x < window.W; x++ {
			elev := window.Elevations[y][x]
			if math.IsNaN(elev) {
				continue
			}
			global := geotransform.LocalToGlobal(geotransform.Local{X: x, Y: y}, window.Anchor)
			g.addCell(cellID(x, y), elev, onRoute[global])
		}
	}

	for y := 0; y < window.H; y++ {
		for x := 0; x < window.W; x++ {
			elev := window.Elevations[y][x]
			if math.IsNaN(elev) {
				continue
			}
			for _, off := range neighborOffsets8 {
				nx, ny := x+off[0], y+off[1]
				if !window.InBounds(nx, ny) {
					continue
				}
				nElev := window.Elevations[ny][nx]
				if math.IsNaN(nElev) {
					continue
				}
				from, to := cellID(x, y), cellID(nx, ny)
				if g.hasLink(from, to) {
					continue
				}
				r := pixelSizeM
				if off[0] != 0 && off[1] != 0 {
					r *= math.Sqrt2
				}
				dh := nElev - elev
				weight := math.Sqrt(r*r + dh*dh)
				g.addLink(from, to, int64(math.Round(weight*weightScale)))
			}
		}
	}

	return g, nil
}
