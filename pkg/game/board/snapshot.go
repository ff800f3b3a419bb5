package board

import "lightemall/pkg/engine/world"

// TileView is a read-only copy of one tile for renderers
type TileView struct {
	Row     int
	Col     int
	Wires   world.Wires
	Station bool
	Powered bool
	// Depth is the BFS distance from the station, -1 when unpowered
	Depth int
}

// Snapshot is a consistent, read-only copy of the board state.
// Renderers work from a snapshot so they never touch live tiles.
type Snapshot struct {
	Rows    int
	Cols    int
	Station world.Position
	Powered int
	Tiles   []TileView // row-major
}

// Snapshot copies the current board state
func (b *Board) Snapshot() Snapshot {
	s := Snapshot{
		Rows:    b.rows,
		Cols:    b.cols,
		Station: b.StationPosition(),
		Tiles:   make([]TileView, len(b.tiles)),
	}
	for i := range b.tiles {
		t := &b.tiles[i]
		s.Tiles[i] = TileView{
			Row:     t.Row,
			Col:     t.Col,
			Wires:   t.Wires,
			Station: t.Station,
			Powered: t.Powered,
			Depth:   b.depth[i],
		}
		if t.Powered {
			s.Powered++
		}
	}
	return s
}

// At returns the view of the tile at row/col. The position must be valid.
func (s Snapshot) At(row, col int) TileView {
	return s.Tiles[row*s.Cols+col]
}

// AllPowered reports whether every tile in the snapshot is powered
func (s Snapshot) AllPowered() bool {
	return s.Powered == len(s.Tiles)
}

// MaxDepth returns the largest BFS distance among powered tiles
func (s Snapshot) MaxDepth() int {
	max := 0
	for _, t := range s.Tiles {
		if t.Depth > max {
			max = t.Depth
		}
	}
	return max
}
