// Package level defines level progression: how large each level's board is and
// which level is the last. The player never sees the total; they discover the
// end by reaching the final level.
package level

import (
	"lightemall/pkg/game/locale"
)

// TotalLevels is the fixed number of levels in a run
const TotalLevels = 8

// MaxSide caps how far a board side grows through progression.
// A configured base size above the cap is kept as is.
const MaxSide = 12

// Band groups levels for the status line
type Band int

const (
	Warmup  Band = iota // Levels 1-2
	Grid                // Levels 3-5
	Network             // Levels 6 to the one before last
	Final               // The final level
)

// BandOf returns the band of the given level (1-based)
func BandOf(level int) Band {
	switch {
	case IsFinal(level):
		return Final
	case level <= 2:
		return Warmup
	case level <= 5:
		return Grid
	default:
		return Network
	}
}

// Title returns the translated band title shown next to the level number
func (b Band) Title() string {
	switch b {
	case Grid:
		return locale.Get("BAND_GRID")
	case Network:
		return locale.Get("BAND_NETWORK")
	case Final:
		return locale.Get("BAND_FINAL")
	default:
		return locale.Get("BAND_WARMUP")
	}
}

// IsFinal returns true if the given level (1-based) is the last one
func IsFinal(level int) bool {
	return level >= TotalLevels
}

// Next returns the level after current, or 0 if current is final
func Next(current int) int {
	if current <= 0 || current >= TotalLevels {
		return 0
	}
	return current + 1
}

// Size returns the board dimensions for a level. Level 1 uses the base size;
// each further level adds one row and one column up to MaxSide.
func Size(level, baseRows, baseCols int) (rows, cols int) {
	if level < 1 {
		level = 1
	}
	return grow(baseRows, level-1), grow(baseCols, level-1)
}

func grow(base, by int) int {
	if base >= MaxSide {
		return base
	}
	n := base + by
	if n > MaxSide {
		n = MaxSide
	}
	return n
}
