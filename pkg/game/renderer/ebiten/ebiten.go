// Package ebiten provides an Ebiten-based window for LightEmAll: tiles are
// drawn as wire segments, a left click rotates the tile under the cursor and
// the keyboard bindings match the terminal front-end.
package ebiten

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	engineinput "lightemall/pkg/engine/input"
	"lightemall/pkg/game/renderer"
	"lightemall/pkg/game/state"
)

// EbitenRenderer is the windowed renderer. It implements renderer.Looper:
// Ebiten owns the main loop and every intent is applied inside Update, so the
// game state is only ever touched from one goroutine.
type EbitenRenderer struct {
	game   *state.Game
	handle func(g *state.Game, intent engineinput.Intent)

	// tileSize for the wire rendering and click mapping
	tileSize int

	// Board dimensions the window was last sized for
	boardRows int
	boardCols int

	windowOpenedLogged bool
}

// New creates a new Ebiten renderer with square tiles of tileSize pixels
func New(tileSize int) *EbitenRenderer {
	if tileSize < minTileSize {
		tileSize = DefaultTileSize
	}
	return &EbitenRenderer{tileSize: tileSize}
}

// Init initializes the Ebiten renderer
func (e *EbitenRenderer) Init() {
	ebiten.SetWindowTitle("LightEmAll")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
}

// Clear is a no-op; Ebiten clears the screen before every Draw
func (e *EbitenRenderer) Clear() {}

// FormatText strips the markup; the debug font has a single color
func (e *EbitenRenderer) FormatText(msg string, args ...any) string {
	return renderer.StripMarkup(msg, args...)
}

// GetViewportSize returns how many tiles fit in the current window
func (e *EbitenRenderer) GetViewportSize() (rows, cols int) {
	w, h := ebiten.WindowSize()
	return (h - panelHeight()) / e.tileSize, w / e.tileSize
}

// RenderFrame records the game to draw; the actual drawing happens in Draw
func (e *EbitenRenderer) RenderFrame(g *state.Game) {
	e.game = g
}

// TileSize returns the pixel size of one tile
func (e *EbitenRenderer) TileSize() int {
	return e.tileSize
}

// Run opens the window and runs the game loop until the player quits or closes the window
func (e *EbitenRenderer) Run(g *state.Game, handle func(g *state.Game, intent engineinput.Intent)) error {
	e.game = g
	e.handle = handle
	e.resizeWindow()

	err := ebiten.RunGame(e)
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("ebiten: %w", err)
	}
	return nil
}

// Layout returns the game's logical screen size (Ebiten interface).
// The logical size follows the board so cursor positions map straight to tiles.
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if e.game == nil || e.game.Board == nil {
		return outsideWidth, outsideHeight
	}
	return screenSize(e.game.Board.Rows(), e.game.Board.Cols(), e.tileSize)
}

// resizeWindow fits the window to the current board
func (e *EbitenRenderer) resizeWindow() {
	if e.game == nil || e.game.Board == nil {
		return
	}
	e.boardRows, e.boardCols = e.game.Board.Rows(), e.game.Board.Cols()
	w, h := screenSize(e.boardRows, e.boardCols, e.tileSize)
	ebiten.SetWindowSize(w, h)
	log.Printf("window sized for %dx%d board (%dx%d px)", e.boardRows, e.boardCols, w, h)
}

// screenSize returns the logical screen size for a board: the tiles on top,
// the text panel below
func screenSize(rows, cols, tileSize int) (width, height int) {
	width = cols * tileSize
	if width < minScreenWidth {
		width = minScreenWidth
	}
	return width, rows*tileSize + panelHeight()
}

// panelHeight is the pixel height of the text panel below the board
func panelHeight() int {
	return panelLines*lineHeight + 2*panelPad
}
