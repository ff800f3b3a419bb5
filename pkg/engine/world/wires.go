package world

import "strings"

// Wires is the set of sides of a tile that carry a wire stub.
// Bit i is set when the tile has a stub on Direction(i).
type Wires uint8

// NoWires is a tile without any stub
const NoWires Wires = 0

// AllWires is a tile with a stub on every side
const AllWires Wires = 1<<Up | 1<<Right | 1<<Down | 1<<Left

// WiresOf builds a wire set from the given directions
func WiresOf(dirs ...Direction) Wires {
	var w Wires
	for _, d := range dirs {
		w = w.With(d)
	}
	return w
}

// Has reports whether there is a stub on side d
func (w Wires) Has(d Direction) bool {
	if !d.IsValid() {
		return false
	}
	return w&(1<<d) != 0
}

// With returns w with a stub added on side d
func (w Wires) With(d Direction) Wires {
	if !d.IsValid() {
		return w
	}
	return w | 1<<d
}

// Without returns w with the stub on side d removed
func (w Wires) Without(d Direction) Wires {
	if !d.IsValid() {
		return w
	}
	return w &^ (1 << d)
}

// Count returns the number of stubs
func (w Wires) Count() int {
	n := 0
	for _, d := range AllDirections() {
		if w.Has(d) {
			n++
		}
	}
	return n
}

// Rotate returns the wires after one clockwise quarter turn:
// the top stub moves right, right moves down, down moves left and left moves up.
func (w Wires) Rotate() Wires {
	w &= AllWires
	return (w<<1 | w>>3) & AllWires
}

// RotateN applies n clockwise quarter turns
func (w Wires) RotateN(n int) Wires {
	n %= 4
	if n < 0 {
		n += 4
	}
	for i := 0; i < n; i++ {
		w = w.Rotate()
	}
	return w
}

// TurnsTo returns how many clockwise quarter turns bring w to target,
// or -1 if no rotation of w equals target.
func (w Wires) TurnsTo(target Wires) int {
	cur := w
	for i := 0; i < 4; i++ {
		if cur == target {
			return i
		}
		cur = cur.Rotate()
	}
	return -1
}

// String renders the wire set as a compact list, e.g. "up+left"
func (w Wires) String() string {
	if w&AllWires == NoWires {
		return "none"
	}
	var parts []string
	for _, d := range AllDirections() {
		if w.Has(d) {
			parts = append(parts, d.String())
		}
	}
	return strings.Join(parts, "+")
}

// glyphs maps each wire set to a box-drawing character
var glyphs = [16]rune{
	'·', '╵', '╶', '└', '╷', '│', '┌', '├',
	'╴', '┘', '─', '┴', '┐', '┤', '┬', '┼',
}

// Glyph returns a single box-drawing character showing the stubs
func (w Wires) Glyph() rune {
	return glyphs[w&AllWires]
}
