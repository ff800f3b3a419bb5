package gameplay

import (
	"log"
	"time"

	"lightemall/pkg/game/config"
	"lightemall/pkg/game/generator"
	"lightemall/pkg/game/level"
	"lightemall/pkg/game/state"
)

// BuildGame creates a new game from the configuration and deals its first board.
// A zero seed is replaced with a time-based one.
func BuildGame(cfg config.Config) *state.Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := state.NewGame(cfg.BoardGenerator(), seed, cfg.Height, cfg.Width)
	if cfg.Level > 1 {
		g.Level = cfg.Level
	}
	logMessage(g, "WELCOME")
	showLevelInfo(g)
	dealBoard(g)
	log.Printf("new game: generator=%s seed=%d level=%d board=%dx%d",
		g.Generator.Name(), g.Seed, g.Level, g.Board.Rows(), g.Board.Cols())
	return g
}

// Reset deals a fresh scrambled board for the current level and zeroes the step counter
func Reset(g *state.Game) {
	g.ResetProgress()
	dealBoard(g)
	logMessage(g, "RESET")
}

// NextLevel moves on to a larger board. Only allowed once the current board is won,
// and not past the final level. Returns true if a new level started.
func NextLevel(g *state.Game) bool {
	if !g.Won {
		logMessage(g, "NOT_WON_YET")
		return false
	}
	if level.Next(g.Level) == 0 {
		g.GameComplete = true
		logMessage(g, "GAME_COMPLETE")
		return false
	}

	g.AdvanceLevel()
	g.ClearMessages()
	showLevelInfo(g)
	dealBoard(g)
	log.Printf("level %d: board=%dx%d", g.Level, g.Board.Rows(), g.Board.Cols())
	return true
}

// dealBoard generates the board for the current level, scrambles it and powers it.
// A board that comes out of the scramble already lit counts as won with zero steps.
func dealBoard(g *state.Game) {
	rows, cols := level.Size(g.Level, g.BaseRows, g.BaseCols)
	b := g.Generator.Generate(rows, cols, g.Rng)
	generator.Scramble(b, g.Rng)

	g.Board = b
	g.ClampCursor()
	refresh(g)
}

// showLevelInfo logs the level number, board size and final-level notice
func showLevelInfo(g *state.Game) {
	rows, cols := level.Size(g.Level, g.BaseRows, g.BaseCols)
	logMessage(g, "LEVEL_START", g.Level, rows, cols)
	if level.IsFinal(g.Level) {
		logMessage(g, "LEVEL_FINAL")
	}
}
