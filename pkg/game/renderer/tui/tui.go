// Package tui renders the board in the terminal with ANSI colors and reads
// single key presses in raw mode.
package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"

	"lightemall/pkg/engine/input"
	"lightemall/pkg/engine/terminal"
	"lightemall/pkg/engine/world"
	"lightemall/pkg/game/board"
	"lightemall/pkg/game/level"
	"lightemall/pkg/game/locale"
	"lightemall/pkg/game/menu"
	"lightemall/pkg/game/renderer"
	"lightemall/pkg/game/state"
)

// Lines printed around the board: header, status, controls, messages pane
const chromeRows = 14

// clearScreen is the ANSI sequence for "clear screen, cursor home"
const clearScreen = "\x1b[H\x1b[2J"

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out io.Writer

	colorAction      color.Style
	colorActionShort color.Style
	colorDenied      color.Style
	colorItem        color.Style
	colorCell        color.Style
	colorSubtle      color.Style
	colorWon         color.Style
	colorStation     color.Style
	colorDark        color.Style
	colorCursor      color.Style
}

// New creates a new TUI renderer writing to stdout
func New() *TUIRenderer {
	return NewWithWriter(os.Stdout)
}

// NewWithWriter creates a TUI renderer writing to w
func NewWithWriter(w io.Writer) *TUIRenderer {
	t := &TUIRenderer{out: w}
	t.Init()
	return t
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.colorAction = color.Style{color.FgMagenta}
	t.colorActionShort = color.Style{color.FgMagenta, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorItem = color.Style{color.FgGreen, color.OpBold}
	t.colorCell = color.Style{color.FgBlue}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorWon = color.Style{color.FgGreen, color.OpBold}
	t.colorStation = color.Style{color.FgYellow, color.OpBold}
	t.colorDark = color.Style{color.FgGray}
	t.colorCursor = color.Style{color.OpReverse}
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	fmt.Fprint(t.out, clearScreen)
}

// GetInput reads one key and returns a high-level Intent.
// When stdin is not a terminal, whole lines are read instead, one key code per line.
func (t *TUIRenderer) GetInput() (input.Intent, error) {
	code, err := input.ReadKey()
	if errors.Is(err, input.ErrNotTerminal) {
		code, err = input.ReadLine()
	}
	if err != nil {
		return input.Intent{}, err
	}

	raw := input.RawInput{
		Device: input.DeviceTerminal,
		Code:   code,
		// Timestamp left zero; terminal input is inherently low frequency.
	}
	return input.MapToIntent(input.NewDebouncedInput(raw)), nil
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	return renderer.ApplyMarkup(t.styleTag, msg, args...)
}

func (t *TUIRenderer) styleTag(tag, operand string) string {
	switch tag {
	case "ACTION":
		if operand == "" {
			return ""
		}
		return t.colorActionShort.Sprint(operand[0:1]) + t.colorAction.Sprint(operand[1:])
	case "CELL":
		return t.colorCell.Sprint(operand)
	case "ITEM":
		return t.colorItem.Sprint(operand)
	case "DENIED":
		return t.colorDenied.Sprint(operand)
	case "WON":
		return t.colorWon.Sprint(operand)
	default:
		return operand
	}
}

// GetViewportSize returns how many board rows and columns fit on the terminal
func (t *TUIRenderer) GetViewportSize() (rows, cols int) {
	w, h := terminal.GetSize()
	// Each tile is two characters wide: the glyph plus a connector
	return h - chromeRows, (w + 1) / 2
}

// RenderFrame renders a complete game frame
func (t *TUIRenderer) RenderFrame(g *state.Game) {
	if g.Board == nil {
		return
	}
	snap := g.Board.Snapshot()

	// Level indicator in top left
	fmt.Fprintln(t.out, t.colorAction.Sprintf("%s %d · %s", locale.Get("LEVEL_LABEL"), g.Level, level.BandOf(g.Level).Title()))
	fmt.Fprintln(t.out)

	// Two leading spaces, then one glyph and one connector per column
	if !terminal.Fits(2*snap.Cols+1, snap.Rows, chromeRows) {
		fmt.Fprintln(t.out, t.FormatText("DENIED{%s}", locale.Get("TERMINAL_TOO_SMALL")))
	}
	t.printBoard(g, snap)

	t.printStatusBar(g, snap)
	t.printPossibleActions()
	t.printMessagesPane(g)
}

// printBoard draws one line per board row. Horizontal wires get a connector
// between neighboring glyphs; vertical ones join on their own.
func (t *TUIRenderer) printBoard(g *state.Game, s board.Snapshot) {
	var sb strings.Builder
	for row := 0; row < s.Rows; row++ {
		sb.WriteString("  ")
		for col := 0; col < s.Cols; col++ {
			tile := s.At(row, col)
			glyph := t.tileGlyph(tile)
			if !g.Won && g.Cursor == world.Pos(row, col) {
				glyph = t.colorCursor.Sprint(color.ClearCode(glyph))
			}
			sb.WriteString(glyph)

			if col+1 < s.Cols {
				sb.WriteString(t.connector(tile, s.At(row, col+1)))
			}
		}
		sb.WriteString("\n")
	}
	fmt.Fprint(t.out, sb.String())
}

// tileGlyph returns the colored glyph of a tile: the station in yellow,
// powered wires in a green that dims with distance, dark wires in gray
func (t *TUIRenderer) tileGlyph(tile board.TileView) string {
	glyph := string(tile.Wires.Glyph())
	switch {
	case tile.Station:
		return t.colorStation.Sprint(glyph)
	case tile.Powered:
		return color.RGB(0, renderer.WireShade(tile.Depth), 0).Sprint(glyph)
	default:
		return t.colorDark.Sprint(glyph)
	}
}

// connector returns the character between two horizontally adjacent tiles
func (t *TUIRenderer) connector(left, right board.TileView) string {
	if !left.Wires.Has(world.Right) || !right.Wires.Has(world.Left) {
		return " "
	}
	if left.Powered && right.Powered {
		depth := left.Depth
		if right.Depth > depth {
			depth = right.Depth
		}
		return color.RGB(0, renderer.WireShade(depth), 0).Sprint("─")
	}
	return t.colorDark.Sprint("─")
}

// printStatusBar renders steps, powered count and the win banner
func (t *TUIRenderer) printStatusBar(g *state.Game, s board.Snapshot) {
	fmt.Fprintln(t.out)
	fmt.Fprint(t.out, t.colorSubtle.Sprintf("%s: ", locale.Get("STEPS_LABEL")))
	fmt.Fprint(t.out, t.colorAction.Sprintf("%d", g.Steps))
	fmt.Fprint(t.out, t.colorSubtle.Sprintf("   %s: ", locale.Get("POWERED_LABEL")))
	fmt.Fprintln(t.out, t.colorItem.Sprintf("%d/%d", s.Powered, len(s.Tiles)))

	if g.Won {
		fmt.Fprintln(t.out, t.FormatText(locale.Get("WON")))
	}
}

// printPossibleActions prints the key bindings line
func (t *TUIRenderer) printPossibleActions() {
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(menu.ControlsText()))
}

// printMessagesPane renders the messages log pane
func (t *TUIRenderer) printMessagesPane(g *state.Game) {
	width, _ := terminal.GetSize()

	label := " Messages "
	labelLen := len(label)
	sideLen := (width - labelLen) / 2
	if sideLen < 1 {
		sideLen = 1
	}
	rightLen := width - sideLen - labelLen
	if rightLen < 1 {
		rightLen = 1
	}

	leftDashes := strings.Repeat("─", sideLen)
	rightDashes := strings.Repeat("─", rightLen)

	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(leftDashes+label+rightDashes))

	if len(g.Messages) == 0 {
		fmt.Fprintln(t.out, t.colorSubtle.Sprint("  (no messages)"))
	} else {
		for _, msg := range g.Messages {
			fmt.Fprintf(t.out, "  %s\n", t.FormatText(msg))
		}
	}

	fmt.Fprintln(t.out, t.colorSubtle.Sprint(strings.Repeat("─", width)))
}
