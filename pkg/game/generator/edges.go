package generator

import (
	"fmt"
	"sort"

	"lightemall/pkg/engine/world"
	"lightemall/pkg/game/board"
)

// MaxWeight is the exclusive upper bound of random edge weights
const MaxWeight = 40

// edgeDirections is the order in which neighbors of a cell are considered
var edgeDirections = []world.Direction{world.Left, world.Up, world.Down, world.Right}

// Edge is a candidate connection between two neighboring tiles, by arena index
type Edge struct {
	From   int
	To     int
	Weight int
}

func (e Edge) String() string {
	return fmt.Sprintf("%d->%d (%d)", e.From, e.To, e.Weight)
}

// GenerateEdges returns every candidate edge of the board, sorted by weight.
// Cells are visited column by column and each adjacency is emitted once per
// orientation with its own random weight. Equal weights keep emission order.
func GenerateEdges(b *board.Board, rng Rand) []Edge {
	edges := make([]Edge, 0, 4*b.Size())

	for col := 0; col < b.Cols(); col++ {
		for row := 0; row < b.Rows(); row++ {
			from := world.Pos(row, col)
			for _, dir := range edgeDirections {
				to := from.Step(dir)
				if !b.IsValidPosition(to.Row, to.Col) {
					continue
				}
				edges = append(edges, Edge{
					From:   b.Index(from.Row, from.Col),
					To:     b.Index(to.Row, to.Col),
					Weight: rng.Intn(MaxWeight),
				})
			}
		}
	}

	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})
	return edges
}
