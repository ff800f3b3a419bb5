// Package world provides generic 2D grid primitives: sides, wire stubs and positions.
// These are engine-level constructs usable by any tile-based game.
package world

import "fmt"

// Position is a cell coordinate on a grid
type Position struct {
	Row int
	Col int
}

// Pos is shorthand for Position{Row: row, Col: col}
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Step returns the position one cell away in direction d
func (p Position) Step(d Direction) Position {
	dr, dc := d.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// In reports whether p lies inside a grid of the given size
func (p Position) In(rows, cols int) bool {
	return p.Row >= 0 && p.Row < rows && p.Col >= 0 && p.Col < cols
}

// String returns "row:col", the same form the grid uses for cell names
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Col)
}
