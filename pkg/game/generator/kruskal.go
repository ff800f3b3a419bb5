package generator

import (
	"fmt"

	"lightemall/pkg/game/board"
)

// KruskalGenerator builds a random spanning tree over the grid graph.
// The station starts on (0,0).
type KruskalGenerator struct{}

// Name returns the name of this generator
func (g *KruskalGenerator) Name() string {
	return "kruskal"
}

// Generate creates a solved board wired along a random spanning tree
func (g *KruskalGenerator) Generate(rows, cols int, rng Rand) *board.Board {
	b := board.New(rows, cols)
	Kruskal(b, GenerateEdges(b, rng))
	b.RecordSolution()
	return b
}

// Kruskal wires b along a spanning tree chosen from edges, taken in order.
// An edge is accepted when its ends are in different classes; both tiles then
// get matching stubs. Returns the accepted edges. Panics if edges run out
// before every tile is connected, which means the candidate list was not
// built from the same board.
func Kruskal(b *board.Board, edges []Edge) []Edge {
	want := b.Size() - 1
	tree := make([]Edge, 0, want)
	sets := NewDisjointSet(b.Size())

	for _, e := range edges {
		if len(tree) == want {
			break
		}
		if sets.Connected(e.From, e.To) {
			continue
		}
		sets.Union(e.To, e.From)
		if !b.TileAt(e.From).ConnectTo(b.TileAt(e.To)) {
			panic(fmt.Sprintf("spanning tree edge %v joins tiles that are not neighbors", e))
		}
		tree = append(tree, e)
	}

	if len(tree) != want {
		panic(fmt.Sprintf("spanning tree incomplete: %d of %d edges after %d candidates", len(tree), want, len(edges)))
	}
	return tree
}
