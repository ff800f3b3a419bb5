package input

import (
	"sort"
	"strings"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceMouse
	DeviceGamepad
	DeviceTerminal
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Power station movement
	ActionMoveStationUp
	ActionMoveStationRight
	ActionMoveStationDown
	ActionMoveStationLeft

	// Selection cursor (terminal front-end)
	ActionCursorUp
	ActionCursorRight
	ActionCursorDown
	ActionCursorLeft

	// Tiles
	ActionRotate   // Rotate the tile under the cursor, or the intent's target
	ActionRotateAt // Rotate the tile at the intent's target (mouse click)

	// Meta / UI
	ActionReset
	ActionHint
	ActionNextLevel
	ActionQuit
	ActionDebugDump  // Dump the board to a text file (F9)
	ActionScreenshot // Save the board as an HTML page (F12)
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
// Pointer-driven intents carry the grid cell they target.
type Intent struct {
	Action    Action
	Row       int
	Col       int
	HasTarget bool
}

// IntentAt returns an intent aimed at a grid cell
func IntentAt(action Action, row, col int) Intent {
	return Intent{Action: action, Row: row, Col: col, HasTarget: true}
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "r", "arrow_up", "gamepad_dpad_up").
// Mouse events carry pixel coordinates in X/Y.
type RawInput struct {
	Device    Device
	Code      string
	X, Y      int
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
// Both front-ends deliver discrete presses (Ebiten's just-pressed queries,
// terminal raw mode), so each RawInput is already debounced; the distinct
// type keeps the layering explicit.
type DebouncedInput struct {
	Device Device
	Code   string
	X, Y   int
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
		X:      raw.X,
		Y:      raw.Y,
	}
}

// MouseLeft is the code for a left mouse button press
const MouseLeft = "mouse_left"

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Station movement (arrows)
	"arrow_up":    ActionMoveStationUp,
	"arrow_right": ActionMoveStationRight,
	"arrow_down":  ActionMoveStationDown,
	"arrow_left":  ActionMoveStationLeft,

	// Cursor (WASD, Vim)
	"w": ActionCursorUp,
	"k": ActionCursorUp,
	"d": ActionCursorRight,
	"l": ActionCursorRight,
	"s": ActionCursorDown,
	"j": ActionCursorDown,
	"a": ActionCursorLeft,
	"h": ActionCursorLeft,

	// Rotate
	"space": ActionRotate,
	"enter": ActionRotate,

	// Reset
	"r": ActionReset,

	// Help / hint
	"?":    ActionHint,
	"hint": ActionHint,

	// Next level
	"n": ActionNextLevel,

	// Quit
	"quit":   ActionQuit,
	"q":      ActionQuit,
	"escape": ActionQuit,
	"ctrl_c": ActionQuit,

	// Debug
	"f9":  ActionDebugDump,
	"f12": ActionScreenshot,

	// Controller/gamepad specific bindings
	"gamepad_dpad_up":    ActionCursorUp,
	"gamepad_dpad_right": ActionCursorRight,
	"gamepad_dpad_down":  ActionCursorDown,
	"gamepad_dpad_left":  ActionCursorLeft,
	"gamepad_a":          ActionRotate,
	"gamepad_b":          ActionQuit,
	"gamepad_start":      ActionReset,
}

// reservedCodes can never be rebound or unbound: the arrows drive the station
// and mouse/enter rotate tiles.
var reservedCodes = map[string]bool{
	"arrow_up":    true,
	"arrow_right": true,
	"arrow_down":  true,
	"arrow_left":  true,
	"enter":       true,
	"ctrl_c":      true,
	MouseLeft:     true,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent. Mouse presses become a
// ActionRotateAt intent without a target; the front-end, which knows the tile
// size, fills it in with PixelToCell.
func MapToIntent(ev DebouncedInput) Intent {
	if ev.Code == MouseLeft {
		return Intent{Action: ActionRotateAt}
	}
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// PixelToCell translates pixel coordinates into a grid cell: row = y / tileSize,
// col = x / tileSize. Negative coordinates and non-positive tile sizes are rejected.
func PixelToCell(x, y, tileSize int) (row, col int, ok bool) {
	if tileSize <= 0 || x < 0 || y < 0 {
		return 0, 0, false
	}
	return y / tileSize, x / tileSize, true
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveStationUp:
		return "Move Station Up"
	case ActionMoveStationRight:
		return "Move Station Right"
	case ActionMoveStationDown:
		return "Move Station Down"
	case ActionMoveStationLeft:
		return "Move Station Left"
	case ActionCursorUp:
		return "Cursor Up"
	case ActionCursorRight:
		return "Cursor Right"
	case ActionCursorDown:
		return "Cursor Down"
	case ActionCursorLeft:
		return "Cursor Left"
	case ActionRotate:
		return "Rotate"
	case ActionRotateAt:
		return "Rotate At"
	case ActionReset:
		return "Reset"
	case ActionHint:
		return "Hint"
	case ActionNextLevel:
		return "Next Level"
	case ActionQuit:
		return "Quit"
	case ActionDebugDump:
		return "Debug Dump"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Ensure stable ordering of codes within each action so UI doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// IsReserved reports whether code is fixed and cannot be rebound.
func IsReserved(code string) bool {
	return reservedCodes[code]
}

func isGamepadCode(code string) bool {
	return strings.HasPrefix(code, "gamepad_")
}

// SetSingleBinding replaces the action's bindings on code's device with code.
// Keyboard codes leave gamepad bindings alone and the other way round.
// Reserved codes keep their bindings and cannot be assigned.
func SetSingleBinding(action Action, code string) {
	for c, a := range bindings {
		if reservedCodes[c] || isGamepadCode(c) != isGamepadCode(code) {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	if code != "" && !reservedCodes[code] {
		bindings[code] = action
	}
}

// KeyLabel names the keyboard keys bound to each action for on-screen help.
// Each action shows at most two codes, shortest first, joined by "/"; actions
// are separated by spaces. Unbound actions show "-".
func KeyLabel(actions ...Action) string {
	byAction := GetBindingsByAction()
	labels := make([]string, 0, len(actions))
	for _, action := range actions {
		var keys []string
		for _, code := range byAction[action] {
			if !isGamepadCode(code) {
				keys = append(keys, code)
			}
		}
		sort.SliceStable(keys, func(i, j int) bool { return len(keys[i]) < len(keys[j]) })
		if len(keys) > 2 {
			keys = keys[:2]
		}
		if len(keys) == 0 {
			keys = []string{"-"}
		}
		labels = append(labels, strings.Join(keys, "/"))
	}
	return strings.Join(labels, " ")
}

// AddBinding binds one more code to an action. Reserved codes are left alone.
func AddBinding(action Action, code string) {
	if code == "" || reservedCodes[code] {
		return
	}
	bindings[code] = action
}
