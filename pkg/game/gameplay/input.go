package gameplay

import (
	engineinput "lightemall/pkg/engine/input"
	"lightemall/pkg/engine/world"
	"lightemall/pkg/game/devtools"
	"lightemall/pkg/game/state"
)

// stationMoves maps station actions to directions
var stationMoves = map[engineinput.Action]world.Direction{
	engineinput.ActionMoveStationUp:    world.Up,
	engineinput.ActionMoveStationRight: world.Right,
	engineinput.ActionMoveStationDown:  world.Down,
	engineinput.ActionMoveStationLeft:  world.Left,
}

// cursorMoves maps cursor actions to directions
var cursorMoves = map[engineinput.Action]world.Direction{
	engineinput.ActionCursorUp:    world.Up,
	engineinput.ActionCursorRight: world.Right,
	engineinput.ActionCursorDown:  world.Down,
	engineinput.ActionCursorLeft:  world.Left,
}

// ProcessIntent handles a high-level input intent from the tiered input system.
func ProcessIntent(g *state.Game, intent engineinput.Intent) {
	// Completion screen: any key ends the session
	if g.GameComplete {
		if intent.Action != engineinput.ActionNone {
			g.QuitRequested = true
		}
		return
	}

	if dir, ok := stationMoves[intent.Action]; ok {
		MovePowerStation(g, dir)
		return
	}
	if dir, ok := cursorMoves[intent.Action]; ok {
		g.MoveCursor(dir)
		return
	}

	switch intent.Action {
	case engineinput.ActionNone:
		return

	case engineinput.ActionRotate:
		if intent.HasTarget {
			RotateAt(g, intent.Row, intent.Col)
			return
		}
		RotateAt(g, g.Cursor.Row, g.Cursor.Col)
		return

	case engineinput.ActionRotateAt:
		if intent.HasTarget && g.Board.IsValidPosition(intent.Row, intent.Col) {
			g.Cursor = world.Pos(intent.Row, intent.Col)
			RotateAt(g, intent.Row, intent.Col)
		}
		return

	case engineinput.ActionReset:
		Reset(g)
		return

	case engineinput.ActionHint:
		ShowHint(g)
		return

	case engineinput.ActionNextLevel:
		NextLevel(g)
		return

	case engineinput.ActionQuit:
		logMessage(g, "GOODBYE")
		g.QuitRequested = true
		return

	case engineinput.ActionDebugDump:
		path, err := devtools.DumpBoardToFile(g)
		if err != nil {
			logMessage(g, "DUMP_FAILED", err)
		} else {
			logMessage(g, "DUMP_OK", path)
		}
		return

	case engineinput.ActionScreenshot:
		path, err := devtools.SaveScreenshotHTML(g)
		if err != nil {
			logMessage(g, "SCREENSHOT_FAILED", err)
		} else {
			logMessage(g, "SCREENSHOT_OK", path)
		}
		return
	}

	logMessage(g, "UNKNOWN_COMMAND")
}
