package ebiten

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"lightemall/pkg/engine/world"
	"lightemall/pkg/game/board"
	"lightemall/pkg/game/level"
	"lightemall/pkg/game/locale"
	"lightemall/pkg/game/menu"
	"lightemall/pkg/game/renderer"
	"lightemall/pkg/game/state"
)

// Draw renders the game to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	g := e.game
	if g == nil || g.Board == nil {
		return
	}
	snap := g.Board.Snapshot()

	for row := 0; row < snap.Rows; row++ {
		for col := 0; col < snap.Cols; col++ {
			selected := !g.Won && g.Cursor == world.Pos(row, col)
			e.drawTile(screen, snap.At(row, col), selected, g.Won)
		}
	}

	e.drawPanel(screen, g, snap)
}

// drawTile draws one tile: its background, a bar from the center to every
// edge it has a wire on, and the station marker
func (e *EbitenRenderer) drawTile(screen *ebiten.Image, tile board.TileView, selected, won bool) {
	ts := float32(e.tileSize)
	x0, y0 := float32(tile.Col)*ts, float32(tile.Row)*ts

	bg := colorTile
	switch {
	case selected:
		bg = colorCursor
	case won:
		bg = colorWonTile
	}
	// Leave a one pixel gutter so tile borders stay visible
	vector.DrawFilledRect(screen, x0, y0, ts-1, ts-1, bg, false)

	wire := wireColor(tile)
	for _, d := range world.AllDirections() {
		if !tile.Wires.Has(d) {
			continue
		}
		x, y, w, h := wireRect(d, x0, y0, ts)
		vector.DrawFilledRect(screen, x, y, w, h, wire, false)
	}

	if tile.Station {
		vector.DrawFilledCircle(screen, x0+ts/2, y0+ts/2, ts/4, colorStation, true)
	}
}

// drawPanel prints the level, step count, win banner, controls and messages below the board
func (e *EbitenRenderer) drawPanel(screen *ebiten.Image, g *state.Game, snap board.Snapshot) {
	x := panelPad
	y := snap.Rows*e.tileSize + panelPad

	lines := []string{
		fmt.Sprintf("%s %d - %s", locale.Get("LEVEL_LABEL"), g.Level, level.BandOf(g.Level).Title()),
		fmt.Sprintf("%s: %d   %s: %d/%d", locale.Get("STEPS_LABEL"), g.Steps,
			locale.Get("POWERED_LABEL"), snap.Powered, len(snap.Tiles)),
		"",
		e.FormatText(menu.MouseControlsText()),
		"",
	}
	if g.Won {
		lines[2] = e.FormatText(locale.Get("WON"))
	}
	for _, msg := range lastMessages(g.Messages, maxPanelMessages) {
		lines = append(lines, e.FormatText(msg))
	}

	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, x, y+i*lineHeight)
	}
}

// wireRect returns the rectangle of the wire bar running from the center of
// the tile at x0/y0 to its edge in direction d
func wireRect(d world.Direction, x0, y0, ts float32) (x, y, w, h float32) {
	thick := ts / wireRatio
	half := ts / 2
	cx, cy := x0+half, y0+half

	switch d {
	case world.Up:
		return cx - thick/2, y0, thick, half + thick/2
	case world.Down:
		return cx - thick/2, cy - thick/2, thick, half + thick/2
	case world.Left:
		return x0, cy - thick/2, half + thick/2, thick
	default:
		return cx - thick/2, cy - thick/2, half + thick/2, thick
	}
}

// wireColor is green for powered wires, dimming with distance from the
// station, and gray for dark ones
func wireColor(tile board.TileView) color.RGBA {
	if !tile.Powered {
		return colorWireDark
	}
	return color.RGBA{0, renderer.WireShade(tile.Depth), 0, 255}
}

// lastMessages returns at most n of the newest messages
func lastMessages(msgs []string, n int) []string {
	if len(msgs) > n {
		return msgs[len(msgs)-n:]
	}
	return msgs
}
