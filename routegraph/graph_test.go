package routegraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mempa-rover/pathplanner/geotransform"
	"github.com/mempa-rover/pathplanner/routegraph"
	"github.com/mempa-rover/pathplanner/terrain"
)

func TestBuildRejectsNilWindow(t *testing.T) {
	_, err := routegraph.Build(nil, nil, 1.0)
	require.ErrorIs(t, err, routegraph.ErrNilWindow)
}

func TestBuildFlatWindowHasFullyConnectedGrid(t *testing.T) {
	r, err := terrain.Flat(3, 3, 5)
	require.NoError(t, err)
	w, err := r.ReadSquareWindow(geotransform.Pixel{X: 1, Y: 1}, 1)
	require.NoError(t, err)

	g, err := routegraph.Build(w, []geotransform.Pixel{{X: 0, Y: 0}, {X: 1, Y: 1}}, 1.0)
	require.NoError(t, err)

	require.Equal(t, 9, g.CellCount())
	// Every interior cell has 8 neighbours; corner cells have 3, edges have 5.
	// Undirected dedup means LinkCount counts each connection once.
	require.True(t, g.LinkCount() > 0)

	byID := make(map[string]routegraph.Cell, g.CellCount())
	for _, cell := range g.Cells() {
		byID[cell.ID] = cell
	}
	require.True(t, byID["1,1"].OnRoute)
	require.False(t, byID["2,2"].OnRoute)
}

func TestBuildSkipsNoDataCells(t *testing.T) {
	r, err := terrain.Flat(3, 3, 5)
	require.NoError(t, err)
	w, err := r.ReadSquareWindow(geotransform.Pixel{X: 1, Y: 1}, 1)
	require.NoError(t, err)
	masked := w.Circular(0.5) // only the centre cell survives

	g, err := routegraph.Build(masked, nil, 1.0)
	require.NoError(t, err)

	require.Equal(t, 1, g.CellCount())
	require.Equal(t, 0, g.LinkCount())
}
