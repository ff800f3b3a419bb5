// Package state holds the mutable state of one LightEmAll session.
package state

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"lightemall/pkg/engine/world"
	"lightemall/pkg/game/board"
	"lightemall/pkg/game/generator"
)

const maxMessages = 5

// Game represents the game state for LightEmAll
type Game struct {
	Board *board.Board

	// Generator builds every new board of this session
	Generator generator.BoardGenerator

	// Rng is the session's random source; Seed is what it was created from
	Rng  *rand.Rand
	Seed int64

	// Base board size for level 1
	BaseRows int
	BaseCols int

	Level int // Current level number (1-based)

	Steps int  // Rotations made on the current board
	Won   bool // Every tile is powered; input is ignored until reset or next level

	GameComplete  bool // The final level was won
	QuitRequested bool

	// Cursor is the selected tile in the terminal front-end
	Cursor world.Position

	// Hinted tracks tiles a hint already pointed at on this board
	Hinted mapset.Set[world.Position]

	Messages []string
}

// NewGame creates a game without a board. gameplay.BuildGame fills it in.
func NewGame(gen generator.BoardGenerator, seed int64, rows, cols int) *Game {
	return &Game{
		Generator: gen,
		Rng:       rand.New(rand.NewSource(seed)),
		Seed:      seed,
		BaseRows:  rows,
		BaseCols:  cols,
		Level:     1,
		Hinted:    mapset.New[world.Position](),
		Messages:  make([]string, 0),
	}
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// ResetProgress clears the per-board counters before a new board is played
func (g *Game) ResetProgress() {
	g.Steps = 0
	g.Won = false
	g.Hinted.Clear()
}

// AdvanceLevel increments the level counter and resets level-specific state
func (g *Game) AdvanceLevel() {
	g.Level++
	g.ResetProgress()
}

// MoveCursor moves the selection one tile in direction d, staying on the board
func (g *Game) MoveCursor(d world.Direction) {
	if g.Board == nil {
		return
	}
	next := g.Cursor.Step(d)
	if next.In(g.Board.Rows(), g.Board.Cols()) {
		g.Cursor = next
	}
}

// ClampCursor pulls the cursor back onto the board after the board changed size
func (g *Game) ClampCursor() {
	if g.Board == nil {
		return
	}
	if g.Cursor.Row >= g.Board.Rows() {
		g.Cursor.Row = g.Board.Rows() - 1
	}
	if g.Cursor.Col >= g.Board.Cols() {
		g.Cursor.Col = g.Board.Cols() - 1
	}
	if g.Cursor.Row < 0 {
		g.Cursor.Row = 0
	}
	if g.Cursor.Col < 0 {
		g.Cursor.Col = 0
	}
}
