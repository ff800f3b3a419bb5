package ebiten

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "lightemall/pkg/engine/input"
)

// keyCodes maps Ebiten keys to the raw codes the binding layer understands
var keyCodes = []struct {
	key  ebiten.Key
	code string
}{
	{ebiten.KeyArrowUp, "arrow_up"},
	{ebiten.KeyArrowRight, "arrow_right"},
	{ebiten.KeyArrowDown, "arrow_down"},
	{ebiten.KeyArrowLeft, "arrow_left"},
	{ebiten.KeyW, "w"},
	{ebiten.KeyA, "a"},
	{ebiten.KeyS, "s"},
	{ebiten.KeyD, "d"},
	{ebiten.KeyK, "k"},
	{ebiten.KeyH, "h"},
	{ebiten.KeyJ, "j"},
	{ebiten.KeyL, "l"},
	{ebiten.KeySpace, "space"},
	{ebiten.KeyEnter, "enter"},
	{ebiten.KeyKPEnter, "enter"},
	{ebiten.KeyR, "r"},
	{ebiten.KeyN, "n"},
	{ebiten.KeyQ, "q"},
	{ebiten.KeyEscape, "escape"},
	{ebiten.KeyF9, "f9"},
	{ebiten.KeyF12, "f12"},
}

// Update handles input and game logic (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("Main window opened successfully (%dx%d)", w, h)
	}

	g := e.game
	if g == nil || g.QuitRequested {
		return ebiten.Termination
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		e.click(x, y)
	} else if intent := e.checkGamepadInput(); intent.Action != engineinput.ActionNone {
		e.dispatch(intent)
	} else if intent := e.checkInput(); intent.Action != engineinput.ActionNone {
		e.dispatch(intent)
	}

	// A new level changes the board size
	if g.Board != nil && (g.Board.Rows() != e.boardRows || g.Board.Cols() != e.boardCols) {
		e.resizeWindow()
	}

	if g.QuitRequested {
		return ebiten.Termination
	}
	return nil
}

// dispatch applies one intent to the game
func (e *EbitenRenderer) dispatch(intent engineinput.Intent) {
	if e.handle != nil {
		e.handle(e.game, intent)
	}
}

// click turns the tile under the pixel x/y. On the completion screen any
// click counts as a key press.
func (e *EbitenRenderer) click(x, y int) {
	if e.game != nil && e.game.GameComplete {
		e.dispatch(engineinput.Intent{Action: engineinput.ActionRotateAt})
		return
	}
	row, col, ok := engineinput.PixelToCell(x, y, e.tileSize)
	if !ok {
		return
	}
	e.dispatch(engineinput.IntentAt(engineinput.ActionRotateAt, row, col))
}

// checkInput checks for keyboard input and returns the corresponding Intent.
func (e *EbitenRenderer) checkInput() engineinput.Intent {
	// Hint (shift + slash)
	if inpututil.IsKeyJustPressed(ebiten.KeySlash) && ebiten.IsKeyPressed(ebiten.KeyShift) {
		return keyIntent("?")
	}
	// Ctrl+C quits like it does in the terminal
	if inpututil.IsKeyJustPressed(ebiten.KeyC) && ebiten.IsKeyPressed(ebiten.KeyControl) {
		return keyIntent("ctrl_c")
	}

	for _, k := range keyCodes {
		if inpututil.IsKeyJustPressed(k.key) {
			return keyIntent(k.code)
		}
	}
	return engineinput.Intent{Action: engineinput.ActionNone}
}

// checkGamepadInput checks for controller/gamepad input and returns the corresponding Intent.
// Button indices are tuned for common XInput-style controllers; mappings may vary between devices.
func (e *EbitenRenderer) checkGamepadInput() engineinput.Intent {
	var ids []ebiten.GamepadID
	ids = ebiten.AppendGamepadIDs(ids[:0])

	buttons := []struct {
		button ebiten.GamepadButton
		code   string
	}{
		{ebiten.GamepadButton11, "gamepad_dpad_up"},
		{ebiten.GamepadButton12, "gamepad_dpad_right"},
		{ebiten.GamepadButton13, "gamepad_dpad_down"},
		{ebiten.GamepadButton14, "gamepad_dpad_left"},
		{ebiten.GamepadButton0, "gamepad_a"},
		{ebiten.GamepadButton1, "gamepad_b"},
		{ebiten.GamepadButton7, "gamepad_start"},
	}

	for _, id := range ids {
		for _, b := range buttons {
			if inpututil.IsGamepadButtonJustPressed(id, b.button) {
				return engineinput.MapToIntent(engineinput.NewDebouncedInput(engineinput.RawInput{
					Device: engineinput.DeviceGamepad,
					Code:   b.code,
				}))
			}
		}
	}
	return engineinput.Intent{Action: engineinput.ActionNone}
}

// keyIntent maps a keyboard code through the binding layer
func keyIntent(code string) engineinput.Intent {
	return engineinput.MapToIntent(engineinput.NewDebouncedInput(engineinput.RawInput{
		Device: engineinput.DeviceKeyboard,
		Code:   code,
	}))
}
