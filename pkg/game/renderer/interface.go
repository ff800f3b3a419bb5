package renderer

import (
	"lightemall/pkg/engine/input"
	"lightemall/pkg/game/state"
)

// Renderer defines the interface for game rendering backends.
// Implementations are the terminal (tui) and a window (ebiten).
type Renderer interface {
	// Init initializes the renderer (colors, window, etc.)
	Init()

	// Clear clears the display
	Clear()

	// RenderFrame renders a complete game frame:
	// header, board, status bar, controls and messages
	RenderFrame(g *state.Game)

	// FormatText formats a message with the renderer's markup system
	FormatText(msg string, args ...any) string

	// GetViewportSize returns the current viewport dimensions (rows, cols)
	GetViewportSize() (rows, cols int)
}

// Prompter is a renderer that reads input itself, one blocking intent at a time
type Prompter interface {
	Renderer
	GetInput() (input.Intent, error)
}

// Looper is a renderer that owns the main loop (an event-driven window)
type Looper interface {
	Renderer
	Run(g *state.Game, handle func(g *state.Game, intent input.Intent)) error
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// FormatText formats a message with markup
func FormatText(msg string, args ...any) string {
	if Current != nil {
		return Current.FormatText(msg, args...)
	}
	return StripMarkup(msg, args...)
}

// Run drives the game with the current renderer until the player quits.
// Every intent is passed to handle and fully applied before the next frame.
func Run(g *state.Game, handle func(g *state.Game, intent input.Intent)) error {
	switch r := Current.(type) {
	case Looper:
		return r.Run(g, handle)
	case Prompter:
		for !g.QuitRequested {
			r.Clear()
			r.RenderFrame(g)
			intent, err := r.GetInput()
			if err != nil {
				return err
			}
			handle(g, intent)
		}
		r.Clear()
		r.RenderFrame(g)
		return nil
	case nil:
		return ErrNoRenderer
	default:
		return ErrNoInput
	}
}
