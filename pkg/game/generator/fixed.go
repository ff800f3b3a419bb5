package generator

import (
	"lightemall/pkg/game/board"
)

// FixedGenerator produces the hand-made layout: a vertical wire down every
// column and one horizontal wire across the middle row, with the station in
// the center. It consumes no randomness.
type FixedGenerator struct{}

// Name returns the name of this generator
func (g *FixedGenerator) Name() string {
	return "fixed"
}

// Generate creates the solved fixed layout
func (g *FixedGenerator) Generate(rows, cols int, _ Rand) *board.Board {
	b := board.New(rows, cols)
	midRow, midCol := b.CenterPosition()

	for col := 0; col < cols; col++ {
		for row := 0; row+1 < rows; row++ {
			b.Tile(row, col).ConnectTo(b.Tile(row+1, col))
		}
		if col+1 < cols {
			b.Tile(midRow, col).ConnectTo(b.Tile(midRow, col+1))
		}
	}

	b.SetStationAt(midRow, midCol)
	b.RecordSolution()
	return b
}
