// Package gameplay is the game controller: it applies player actions to the
// board, re-runs power propagation after every change and tracks the win.
package gameplay

import (
	engineinput "lightemall/pkg/engine/input"
	"lightemall/pkg/engine/world"
	"lightemall/pkg/game/board"
	"lightemall/pkg/game/level"
	"lightemall/pkg/game/locale"
	"lightemall/pkg/game/state"
)

// RotateAt turns the tile at row/col a quarter turn clockwise and counts a step.
// Out-of-bounds positions and input after a win are ignored. Returns true if a tile turned.
func RotateAt(g *state.Game, row, col int) bool {
	if g.Won || g.Board == nil {
		return false
	}
	tile := g.Board.Tile(row, col)
	if tile == nil {
		return false
	}

	tile.Rotate()
	g.Steps++
	refresh(g)
	return true
}

// MovePowerStation moves the station one tile in dir. The move is legal only
// across a two-sided wire connection; anything else is a silent no-op.
// Moves do not count as steps. Returns true if the station moved.
func MovePowerStation(g *state.Game, dir world.Direction) bool {
	if g.Won || g.Board == nil || !dir.IsValid() {
		return false
	}
	station := g.Board.Station()
	if !g.Board.Conducts(station, dir) {
		return false
	}

	to := station.Position().Step(dir)
	g.Board.SetStationAt(to.Row, to.Col)
	refresh(g)
	return true
}

// IsWon reports whether every tile is powered
func IsWon(g *state.Game) bool {
	return g.Board != nil && g.Board.AllPowered()
}

// StepCount returns the number of rotations made on the current board
func StepCount(g *state.Game) int {
	return g.Steps
}

// Snapshot returns a read-only copy of the board for rendering
func Snapshot(g *state.Game) board.Snapshot {
	return g.Board.Snapshot()
}

// refresh re-runs propagation and records a win the first time every tile is lit
func refresh(g *state.Game) {
	g.Board.Propagate()
	if g.Won || !g.Board.AllPowered() {
		return
	}

	g.Won = true
	logMessage(g, "WON")
	logMessage(g, "WON_STEPS", g.Steps)
	if level.IsFinal(g.Level) {
		g.GameComplete = true
		logMessage(g, "GAME_COMPLETE")
		return
	}
	logMessage(g, "NEXT_LEVEL_PROMPT",
		engineinput.KeyLabel(engineinput.ActionNextLevel), engineinput.KeyLabel(engineinput.ActionReset))
}

// logMessage adds a translated message to the game's message log
func logMessage(g *state.Game, key string, a ...any) {
	g.AddMessage(locale.Get(key, a...))
}
