// Package routegraph renders a finished traverse and the terrain window it
// was planned over as a visual graph, for inspection rather than planning.
// It builds a small read-only Cell/Link adjacency structure directly over
// window semantics: one Cell per finite-elevation cell, IDs "x,y" in global
// pixel coordinates, Links weighted by the same 3D Euclidean distance
// pathengine uses for its feasibility search.
//
// Neither pathengine nor traverse import this package; it consumes their
// output after the fact.
package routegraph
