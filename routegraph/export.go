package routegraph

import (
	"fmt"
	"io"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"
)

// onRouteColor/offRouteColor style vertices by whether a cell was part of
// the planned route, the only distinction this diagnostic view draws.
const (
	onRouteColor  = "crimson"
	offRouteColor = "gray70"
)

// WriteDOT renders g as Graphviz DOT source to w, styling on-route cells
// in onRouteColor and the rest of the window in offRouteColor.
func WriteDOT(w io.Writer, g *Graph) error {
	gv, gg, err := buildCGraph(g)
	if err != nil {
		return err
	}
	defer gv.Close()
	defer gg.Close()

	return gv.Render(gg, graphviz.Format("dot"), w)
}

// WritePNG renders g as a PNG image at path.
func WritePNG(path string, g *Graph) error {
	gv, gg, err := buildCGraph(g)
	if err != nil {
		return err
	}
	defer gv.Close()
	defer gg.Close()

	return gv.RenderFilename(gg, graphviz.PNG, path)
}

func buildCGraph(g *Graph) (*graphviz.Graphviz, *cgraph.Graph, error) {
	gv := graphviz.New()
	gg, err := gv.Graph()
	if err != nil {
		return nil, nil, fmt.Errorf("routegraph: new graph: %w", err)
	}

	nodes := make(map[string]*cgraph.Node, g.CellCount())
	for _, cell := range g.Cells() {
		n, err := gg.CreateNode(cell.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("routegraph: create node %s: %w", cell.ID, err)
		}
		n.SetLabel(fmt.Sprintf("%s\n%.2fm", cell.ID, cell.ElevationM))
		if cell.OnRoute {
			n.SetColor(onRouteColor)
		} else {
			n.SetColor(offRouteColor)
		}
		nodes[cell.ID] = n
	}

	for i, link := range g.Links() {
		from, to := nodes[link.From], nodes[link.To]
		ge, err := gg.CreateEdge(fmt.Sprintf("e%d", i), from, to)
		if err != nil {
			return nil, nil, fmt.Errorf("routegraph: create edge %s-%s: %w", link.From, link.To, err)
		}
		ge.SetLabel(fmt.Sprintf("%.2f", float64(link.WeightMM)/weightScale))
	}

	return gv, gg, nil
}
