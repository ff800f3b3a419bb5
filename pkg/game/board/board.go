package board

import (
	"fmt"

	"lightemall/pkg/engine/world"
)

// Board is the playing field with encapsulated tile storage.
// Tiles live in a single arena indexed by row*cols+col; everything that
// refers to a tile (edges, union-find parents, BFS bookkeeping) uses that index.
type Board struct {
	tiles []Tile
	rows  int
	cols  int

	station int

	// depth[i] is the BFS distance from the station, or -1 when unpowered
	depth []int

	// solution holds the wiring the board was generated with, before scrambling
	solution []world.Wires
}

// New creates an unwired board with the given dimensions and the station on (0,0)
func New(rows, cols int) *Board {
	b := &Board{}
	b.Build(rows, cols)
	return b
}

// Build initializes the board with the given dimensions
func (b *Board) Build(rows, cols int) {
	if rows <= 0 || cols <= 0 {
		panic("Board dimensions must be positive")
	}

	b.rows = rows
	b.cols = cols
	b.tiles = make([]Tile, rows*cols)
	b.depth = make([]int, rows*cols)
	b.solution = nil

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			b.tiles[b.Index(row, col)] = Tile{Row: row, Col: col}
		}
	}
	for i := range b.depth {
		b.depth[i] = -1
	}

	b.station = 0
	b.tiles[0].Station = true
}

// Rows returns the number of rows on the board
func (b *Board) Rows() int {
	return b.rows
}

// Cols returns the number of columns on the board
func (b *Board) Cols() int {
	return b.cols
}

// Size returns the number of tiles
func (b *Board) Size() int {
	return len(b.tiles)
}

// IsValidPosition checks if a row/col position is within board bounds
func (b *Board) IsValidPosition(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// Index returns the arena index of a position. The position must be valid.
func (b *Board) Index(row, col int) int {
	return row*b.cols + col
}

// PositionOf returns the position stored at arena index i
func (b *Board) PositionOf(i int) world.Position {
	return world.Pos(i/b.cols, i%b.cols)
}

// Tile returns the tile at the given position, or nil if out of bounds
func (b *Board) Tile(row, col int) *Tile {
	if !b.IsValidPosition(row, col) {
		return nil
	}
	return &b.tiles[b.Index(row, col)]
}

// TileAt returns the tile at arena index i, or nil if out of range
func (b *Board) TileAt(i int) *Tile {
	if i < 0 || i >= len(b.tiles) {
		return nil
	}
	return &b.tiles[i]
}

// TileRelative returns the tile adjacent to t in the given direction, or nil
func (b *Board) TileRelative(t *Tile, dir world.Direction) *Tile {
	if t == nil || !dir.IsValid() {
		return nil
	}
	p := t.Position().Step(dir)
	return b.Tile(p.Row, p.Col)
}

// CenterPosition returns the row and column of the board center
func (b *Board) CenterPosition() (int, int) {
	return b.rows / 2, b.cols / 2
}

// ForEachTile iterates over all tiles in row-major order
func (b *Board) ForEachTile(fn func(t *Tile)) {
	for i := range b.tiles {
		fn(&b.tiles[i])
	}
}

// Station returns the tile holding the power station
func (b *Board) Station() *Tile {
	return &b.tiles[b.station]
}

// StationPosition returns where the power station currently is
func (b *Board) StationPosition() world.Position {
	return b.PositionOf(b.station)
}

// SetStationAt moves the station flag to the given tile. Returns false if out of bounds.
// No connectivity check is made here; the controller decides whether a move is legal.
func (b *Board) SetStationAt(row, col int) bool {
	if !b.IsValidPosition(row, col) {
		return false
	}
	b.tiles[b.station].Station = false
	b.station = b.Index(row, col)
	b.tiles[b.station].Station = true
	return true
}

// Conducts reports whether t and its neighbor in direction d are wired to each other:
// both tiles must carry a stub on their shared side.
func (b *Board) Conducts(t *Tile, d world.Direction) bool {
	if t == nil || !t.HasWire(d) {
		return false
	}
	n := b.TileRelative(t, d)
	return n != nil && n.HasWire(d.Opposite())
}

// ConnectionCount returns the number of two-sided wire connections on the board
func (b *Board) ConnectionCount() int {
	count := 0
	b.ForEachTile(func(t *Tile) {
		// Count each connection once, from its upper or left end
		if b.Conducts(t, world.Right) {
			count++
		}
		if b.Conducts(t, world.Down) {
			count++
		}
	})
	return count
}

// RecordSolution remembers the current wiring as the solved layout
func (b *Board) RecordSolution() {
	b.solution = make([]world.Wires, len(b.tiles))
	for i := range b.tiles {
		b.solution[i] = b.tiles[i].Wires
	}
}

// Solution returns the generated wiring of a tile, if one was recorded
func (b *Board) Solution(row, col int) (world.Wires, bool) {
	if b.solution == nil || !b.IsValidPosition(row, col) {
		return world.NoWires, false
	}
	return b.solution[b.Index(row, col)], true
}

// Clone returns a deep copy of the board
func (b *Board) Clone() *Board {
	c := &Board{
		rows:    b.rows,
		cols:    b.cols,
		station: b.station,
		tiles:   make([]Tile, len(b.tiles)),
		depth:   make([]int, len(b.depth)),
	}
	copy(c.tiles, b.tiles)
	copy(c.depth, b.depth)
	if b.solution != nil {
		c.solution = make([]world.Wires, len(b.solution))
		copy(c.solution, b.solution)
	}
	return c
}

// Validate checks the board for broken invariants and returns an error description or empty string if valid
func (b *Board) Validate() string {
	if b.rows <= 0 || b.cols <= 0 {
		return "Board has invalid dimensions"
	}

	stations := 0
	for i := range b.tiles {
		t := &b.tiles[i]
		if p := b.PositionOf(i); t.Row != p.Row || t.Col != p.Col {
			return fmt.Sprintf("Tile %d is stored at %v but claims %d:%d", i, p, t.Row, t.Col)
		}
		if t.Station {
			stations++
		}
	}

	if stations != 1 {
		return fmt.Sprintf("Board has %d stations, want exactly 1", stations)
	}

	if !b.tiles[b.station].Station {
		return "Station index does not point at the station tile"
	}

	return ""
}
