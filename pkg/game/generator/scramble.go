package generator

import (
	"lightemall/pkg/game/board"
)

// Scramble turns every tile by an independent 0-3 clockwise quarter turns.
// One random draw is made per tile, in row-major order.
func Scramble(b *board.Board, rng Rand) {
	b.ForEachTile(func(t *board.Tile) {
		t.Wires = t.Wires.RotateN(rng.Intn(4))
	})
}
