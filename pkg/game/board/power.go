package board

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"lightemall/pkg/engine/world"
)

// ClearPower marks every tile unpowered
func (b *Board) ClearPower() {
	for i := range b.tiles {
		b.tiles[i].Powered = false
		b.depth[i] = -1
	}
}

// Propagate recomputes which tiles are powered. Every powered flag is cleared,
// then a breadth-first search runs from the station across two-sided wire
// connections. The pass is not incremental. Returns the number of powered tiles.
func (b *Board) Propagate() int {
	b.ClearPower()

	visited := mapset.New[int]()
	work := queue.New[int]()

	visited.Put(b.station)
	b.depth[b.station] = 0
	work.Enqueue(b.station)

	for !work.Empty() {
		current := work.Dequeue()
		tile := &b.tiles[current]
		tile.Powered = true

		for _, dir := range world.AllDirections() {
			if !b.Conducts(tile, dir) {
				continue
			}
			p := tile.Position().Step(dir)
			next := b.Index(p.Row, p.Col)
			if visited.Has(next) {
				continue
			}
			visited.Put(next)
			b.depth[next] = b.depth[current] + 1
			work.Enqueue(next)
		}
	}

	return visited.Size()
}

// Depth returns the BFS distance of a tile from the station, or -1 if it is unpowered
func (b *Board) Depth(row, col int) int {
	if !b.IsValidPosition(row, col) {
		return -1
	}
	return b.depth[b.Index(row, col)]
}

// Distances returns a copy of the BFS depth of every tile in row-major order
func (b *Board) Distances() []int {
	out := make([]int, len(b.depth))
	copy(out, b.depth)
	return out
}

// PoweredCount returns how many tiles are currently powered
func (b *Board) PoweredCount() int {
	n := 0
	for i := range b.tiles {
		if b.tiles[i].Powered {
			n++
		}
	}
	return n
}

// AllPowered reports whether every tile on the board is powered
func (b *Board) AllPowered() bool {
	for i := range b.tiles {
		if !b.tiles[i].Powered {
			return false
		}
	}
	return true
}
