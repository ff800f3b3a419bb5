// Package generator builds LightEmAll boards: the randomized spanning-tree
// layout, the fixed hand-made layout and the scrambling pass applied before play.
package generator

import (
	"errors"
	"fmt"
	"strings"

	"lightemall/pkg/game/board"
)

// Rand is the random source consumed by generation. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// BoardGenerator is an interface for board layout algorithms.
// A generated board is solved: every tile is connected to the station.
type BoardGenerator interface {
	Generate(rows, cols int, rng Rand) *board.Board
	Name() string
}

// ErrUnknownGenerator is returned by ByName for names that are not registered
var ErrUnknownGenerator = errors.New("unknown generator")

// Available generators
var (
	Random = &KruskalGenerator{}
	Fixed  = &FixedGenerator{}
)

// DefaultGenerator is the default board generator
var DefaultGenerator BoardGenerator = Random

var registry = []BoardGenerator{Random, Fixed}

// ByName looks up a generator by its Name, case-insensitively
func ByName(name string) (BoardGenerator, error) {
	for _, g := range registry {
		if strings.EqualFold(g.Name(), name) {
			return g, nil
		}
	}
	return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownGenerator, name, strings.Join(Names(), ", "))
}

// Names lists the registered generator names
func Names() []string {
	names := make([]string, len(registry))
	for i, g := range registry {
		names[i] = g.Name()
	}
	return names
}
