// Package board holds the LightEmAll playing field: tiles with wire stubs,
// the power station and the power propagation pass.
package board

import (
	"lightemall/pkg/engine/world"
)

// Tile is a single cell of the board.
// Tiles are compared by value (position, wires, station flag), never by pointer.
type Tile struct {
	// Grid position
	Row int
	Col int

	// Wire stubs on each side
	Wires world.Wires

	// Station is true on the tile holding the power station
	Station bool

	// Powered is derived state, rewritten by every propagation pass
	Powered bool
}

// Position returns the tile's grid position
func (t *Tile) Position() world.Position {
	return world.Pos(t.Row, t.Col)
}

// HasWire reports whether the tile has a stub on side d
func (t *Tile) HasWire(d world.Direction) bool {
	return t.Wires.Has(d)
}

// Rotate turns the tile a quarter turn clockwise
func (t *Tile) Rotate() {
	t.Wires = t.Wires.Rotate()
}

// Same reports whether two tiles describe the same piece: same position,
// same stubs and same station flag. The powered flag is ignored.
func (t *Tile) Same(that *Tile) bool {
	if t == nil || that == nil {
		return t == that
	}
	return t.Row == that.Row &&
		t.Col == that.Col &&
		t.Wires == that.Wires &&
		t.Station == that.Station
}

// ConnectTo adds matching stubs on the shared side of two orthogonally adjacent tiles.
// Returns false and changes nothing if the tiles are not neighbors.
func (t *Tile) ConnectTo(to *Tile) bool {
	d, ok := sideTowards(t.Position(), to.Position())
	if !ok {
		return false
	}
	t.Wires = t.Wires.With(d)
	to.Wires = to.Wires.With(d.Opposite())
	return true
}

// sideTowards returns the side of from that faces to, if the two are orthogonal neighbors
func sideTowards(from, to world.Position) (world.Direction, bool) {
	for _, d := range world.AllDirections() {
		if from.Step(d) == to {
			return d, true
		}
	}
	return world.Up, false
}
