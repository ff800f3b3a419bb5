// Package menu lists and edits the key bindings.
package menu

import (
	"errors"
	"fmt"
	"strings"

	engineinput "lightemall/pkg/engine/input"
	"lightemall/pkg/game/locale"
)

// ErrBadBinding is returned by ApplyBindings for malformed or refused overrides
var ErrBadBinding = errors.New("bad binding")

// BindingItem is one line of the bindings list.
type BindingItem struct {
	Action        engineinput.Action
	NonRebindable bool
}

// GetLabel returns the display label for this binding item.
func (b BindingItem) GetLabel() string {
	name := engineinput.ActionName(b.Action)
	codes := engineinput.GetBindingsByAction()[b.Action]
	codeText := strings.Join(codes, ", ")
	if codeText == "" {
		codeText = "(unbound)"
	}

	if b.NonRebindable {
		return fmt.Sprintf("%s: %s (fixed)", name, codeText)
	}
	return fmt.Sprintf("%s: %s", name, codeText)
}

// listed is the order actions appear in the bindings list
var listed = []engineinput.Action{
	engineinput.ActionMoveStationUp,
	engineinput.ActionMoveStationRight,
	engineinput.ActionMoveStationDown,
	engineinput.ActionMoveStationLeft,
	engineinput.ActionCursorUp,
	engineinput.ActionCursorRight,
	engineinput.ActionCursorDown,
	engineinput.ActionCursorLeft,
	engineinput.ActionRotate,
	engineinput.ActionReset,
	engineinput.ActionHint,
	engineinput.ActionNextLevel,
	engineinput.ActionQuit,
	engineinput.ActionDebugDump,
	engineinput.ActionScreenshot,
}

// Items returns the bindings list in display order
func Items() []BindingItem {
	items := make([]BindingItem, len(listed))
	for i, action := range listed {
		items[i] = BindingItem{Action: action, NonRebindable: isNonRebindable(action)}
	}
	return items
}

// Lines returns the label of every binding item
func Lines() []string {
	items := Items()
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = item.GetLabel()
	}
	return lines
}

// ControlsText is the keyboard help line with the keys currently bound
func ControlsText() string {
	return locale.Get("CONTROLS",
		engineinput.KeyLabel(engineinput.ActionCursorUp, engineinput.ActionCursorLeft,
			engineinput.ActionCursorDown, engineinput.ActionCursorRight),
		engineinput.KeyLabel(engineinput.ActionRotate),
		engineinput.KeyLabel(engineinput.ActionReset),
		engineinput.KeyLabel(engineinput.ActionHint),
		engineinput.KeyLabel(engineinput.ActionNextLevel),
		engineinput.KeyLabel(engineinput.ActionQuit))
}

// MouseControlsText is the help line for the windowed front-end
func MouseControlsText() string {
	return locale.Get("CONTROLS_MOUSE",
		engineinput.KeyLabel(engineinput.ActionReset),
		engineinput.KeyLabel(engineinput.ActionHint),
		engineinput.KeyLabel(engineinput.ActionNextLevel))
}

// ApplyBindings parses comma-separated overrides such as "hint=h,reset=x" and
// binds each action to its single new code. Action names match ActionName
// without case or spaces. Nothing is changed if any override is invalid.
func ApplyBindings(overrides string) error {
	type change struct {
		action engineinput.Action
		code   string
	}
	var changes []change

	for _, part := range strings.Split(overrides, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, code, ok := strings.Cut(part, "=")
		code = strings.ToLower(strings.TrimSpace(code))
		if !ok || code == "" {
			return fmt.Errorf("%w: %q, want action=code", ErrBadBinding, part)
		}
		action, ok := actionByName(name)
		if !ok {
			return fmt.Errorf("%w: unknown action %q", ErrBadBinding, strings.TrimSpace(name))
		}
		if isNonRebindable(action) {
			return fmt.Errorf("%w: %s cannot be rebound", ErrBadBinding, engineinput.ActionName(action))
		}
		if engineinput.IsReserved(code) {
			return fmt.Errorf("%w: %q is a fixed key", ErrBadBinding, code)
		}
		changes = append(changes, change{action: action, code: code})
	}

	for _, c := range changes {
		engineinput.SetSingleBinding(c.action, c.code)
	}
	return nil
}

// actionByName finds a listed action by its display name
func actionByName(name string) (engineinput.Action, bool) {
	want := normalize(name)
	for _, action := range listed {
		if normalize(engineinput.ActionName(action)) == want {
			return action, true
		}
	}
	return engineinput.ActionNone, false
}

func normalize(s string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
}

// isNonRebindable checks if an action cannot be rebound.
// Station moves live on the reserved arrow keys.
func isNonRebindable(action engineinput.Action) bool {
	switch action {
	case engineinput.ActionMoveStationUp, engineinput.ActionMoveStationRight,
		engineinput.ActionMoveStationDown, engineinput.ActionMoveStationLeft,
		engineinput.ActionQuit:
		return true
	}
	return false
}
