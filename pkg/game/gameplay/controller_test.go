package gameplay

import (
	"reflect"
	"strings"
	"testing"

	engineinput "lightemall/pkg/engine/input"
	"lightemall/pkg/engine/world"
	"lightemall/pkg/game/board"
	"lightemall/pkg/game/config"
	"lightemall/pkg/game/generator"
	"lightemall/pkg/game/level"
	"lightemall/pkg/game/state"
)

// fixedGame returns a game on the solved 5x5 fixed layout (station at 2:2)
// with the top-left tile turned one quarter away from its solution.
func fixedGame(t *testing.T) *state.Game {
	t.Helper()
	g := state.NewGame(generator.Fixed, 1, 5, 5)
	g.Board = generator.Fixed.Generate(5, 5, nil)
	g.Board.Tile(0, 0).Rotate()
	g.Board.Propagate()
	if g.Board.AllPowered() {
		t.Fatal("fixed board with a turned corner is fully powered")
	}
	return g
}

// hasMessage reports whether any logged message contains substr
func hasMessage(g *state.Game, substr string) bool {
	for _, m := range g.Messages {
		if strings.Contains(m, substr) {
			return true
		}
	}
	return false
}

func TestRotateAt_BackToSolutionWins(t *testing.T) {
	g := fixedGame(t)

	for i := 1; i <= 3; i++ {
		if IsWon(g) || g.Won {
			t.Fatalf("won after %d rotations, want 3", i-1)
		}
		if !RotateAt(g, 0, 0) {
			t.Fatalf("RotateAt(0,0) #%d = false", i)
		}
	}

	if !g.Won || !IsWon(g) {
		t.Fatal("not won after turning the corner back")
	}
	if StepCount(g) != 3 {
		t.Errorf("StepCount() = %d, want 3", StepCount(g))
	}
	if !hasMessage(g, "CONGRATS! YOU WON") {
		t.Errorf("win message missing: %v", g.Messages)
	}
	if !hasMessage(g, "Press ACTION{n} for the next level or ACTION{r}") {
		t.Errorf("next level prompt missing: %v", g.Messages)
	}
}

func TestRotateAt_FourWayTileUnchanged(t *testing.T) {
	g := fixedGame(t)
	before := g.Board.Tile(2, 2).Wires
	powered := g.Board.PoweredCount()

	if !RotateAt(g, 2, 2) {
		t.Fatal("RotateAt(2,2) = false")
	}
	if g.Board.Tile(2, 2).Wires != before {
		t.Errorf("four-way tile changed: %v -> %v", before, g.Board.Tile(2, 2).Wires)
	}
	if g.Steps != 1 {
		t.Errorf("Steps = %d, want 1", g.Steps)
	}
	if g.Board.PoweredCount() != powered {
		t.Errorf("PoweredCount changed from %d to %d", powered, g.Board.PoweredCount())
	}
}

func TestRotateAt_OutOfBoundsIgnored(t *testing.T) {
	g := fixedGame(t)
	for _, p := range []world.Position{{Row: -1, Col: 0}, {Row: 0, Col: 5}, {Row: 5, Col: 5}} {
		if RotateAt(g, p.Row, p.Col) {
			t.Errorf("RotateAt(%v) = true", p)
		}
	}
	if g.Steps != 0 {
		t.Errorf("Steps = %d, want 0", g.Steps)
	}
}

func TestRotateAt_IgnoredAfterWin(t *testing.T) {
	g := fixedGame(t)
	RotateAt(g, 0, 0)
	RotateAt(g, 0, 0)
	RotateAt(g, 0, 0)
	if !g.Won {
		t.Fatal("setup: not won")
	}

	if RotateAt(g, 1, 1) {
		t.Error("RotateAt after win = true")
	}
	if MovePowerStation(g, world.Up) {
		t.Error("MovePowerStation after win = true")
	}
	if g.Steps != 3 || !g.Board.AllPowered() {
		t.Errorf("board changed after win: steps=%d", g.Steps)
	}
}

func TestMovePowerStation(t *testing.T) {
	g := fixedGame(t)

	if !MovePowerStation(g, world.Up) {
		t.Fatal("MovePowerStation(Up) from the center = false")
	}
	if got := g.Board.StationPosition(); got != world.Pos(1, 2) {
		t.Errorf("station at %v, want 1:2", got)
	}

	// 1:2 is a vertical wire: no stub to the left
	if MovePowerStation(g, world.Left) {
		t.Error("MovePowerStation(Left) across a missing stub = true")
	}
	if got := g.Board.StationPosition(); got != world.Pos(1, 2) {
		t.Errorf("station moved to %v on an illegal move", got)
	}
	if g.Steps != 0 {
		t.Errorf("station moves counted %d steps", g.Steps)
	}
	if !g.Board.Tile(1, 2).Powered || g.Board.Tile(0, 0).Powered {
		t.Error("power not recomputed from the new station")
	}
}

func TestMovePowerStation_NeedsBothStubs(t *testing.T) {
	g := fixedGame(t)
	// Turn the tile above the station sideways; the station still points up
	g.Board.Tile(1, 2).Rotate()
	g.Board.Propagate()

	if MovePowerStation(g, world.Up) {
		t.Error("MovePowerStation across a one-sided stub = true")
	}
	if MovePowerStation(g, world.Direction(9)) {
		t.Error("MovePowerStation with an invalid direction = true")
	}
}

func TestBuildGame_Deterministic(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 42

	a := BuildGame(cfg)
	b := BuildGame(cfg)

	if a.Board.Rows() != 5 || a.Board.Cols() != 5 {
		t.Fatalf("board %dx%d, want 5x5", a.Board.Rows(), a.Board.Cols())
	}
	if !reflect.DeepEqual(Snapshot(a), Snapshot(b)) {
		t.Error("same seed produced different boards")
	}
	if a.Level != 1 || a.Steps != 0 {
		t.Errorf("level=%d steps=%d", a.Level, a.Steps)
	}
	if !hasMessage(a, "Light 'em all!") {
		t.Errorf("welcome message missing: %v", a.Messages)
	}
	if msg := a.Board.Validate(); msg != "" {
		t.Errorf("Validate() = %q", msg)
	}
}

func TestBuildGame_StartLevel(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 7
	cfg.Level = 3

	g := BuildGame(cfg)
	wantRows, wantCols := level.Size(3, 5, 5)
	if g.Level != 3 || g.Board.Rows() != wantRows || g.Board.Cols() != wantCols {
		t.Errorf("level %d board %dx%d, want level 3 board %dx%d",
			g.Level, g.Board.Rows(), g.Board.Cols(), wantRows, wantCols)
	}
}

func TestBuildGame_LitOnDealKeepsWinMessage(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 5
	cfg.Width, cfg.Height = 1, 1
	cfg.Generator = "kruskal"

	g := BuildGame(cfg)
	if !g.Won {
		t.Fatal("1x1 board not won on deal")
	}
	if !hasMessage(g, "CONGRATS! YOU WON") {
		t.Errorf("win message missing: %v", g.Messages)
	}
	if !hasMessage(g, "Light 'em all!") {
		t.Errorf("welcome message missing: %v", g.Messages)
	}
}

func TestBuildGame_RestoringEveryTileWins(t *testing.T) {
	for _, name := range []string{"fixed", "kruskal"} {
		for seed := int64(1); seed <= 20; seed++ {
			cfg := config.Default()
			cfg.Seed = seed
			cfg.Generator = name
			g := BuildGame(cfg)

			if name == "fixed" && g.Board.StationPosition() != world.Pos(2, 2) {
				t.Errorf("fixed seed %d: station at %v, want 2:2", seed, g.Board.StationPosition())
			}
			for row := 0; row < g.Board.Rows(); row++ {
				for col := 0; col < g.Board.Cols(); col++ {
					want, ok := g.Board.Solution(row, col)
					if !ok {
						t.Fatalf("%s seed %d: no solution recorded for %d:%d", name, seed, row, col)
					}
					for turns := 0; !g.Won && g.Board.Tile(row, col).Wires != want; turns++ {
						if turns == 4 {
							t.Fatalf("%s seed %d: %d:%d never reaches its solution", name, seed, row, col)
						}
						RotateAt(g, row, col)
					}
				}
			}
			if !IsWon(g) {
				t.Errorf("%s seed %d: not won after restoring every tile", name, seed)
			}
		}
	}
}

func TestReset(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 3
	g := BuildGame(cfg)
	RotateAt(g, 0, 0)
	RotateAt(g, 1, 1)

	Reset(g)
	if g.Steps != 0 {
		t.Errorf("Steps after reset = %d, want 0", g.Steps)
	}
	if g.Level != 1 {
		t.Errorf("Level after reset = %d, want 1", g.Level)
	}
	if !hasMessage(g, "New board.") {
		t.Errorf("reset message missing: %v", g.Messages)
	}
}

func TestNextLevel_RequiresWin(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 11
	g := BuildGame(cfg)
	g.Won = false

	if NextLevel(g) {
		t.Fatal("NextLevel before winning = true")
	}
	if g.Level != 1 {
		t.Errorf("Level = %d, want 1", g.Level)
	}

	g.Won = true
	g.Steps = 9
	if !NextLevel(g) {
		t.Fatal("NextLevel after winning = false")
	}
	if g.Level != 2 || g.Board.Rows() != 6 || g.Board.Cols() != 6 {
		t.Errorf("level %d board %dx%d, want level 2 board 6x6", g.Level, g.Board.Rows(), g.Board.Cols())
	}
	if g.Steps != 0 {
		t.Errorf("Steps = %d, want 0 on a new level", g.Steps)
	}
}

func TestNextLevel_FinalLevelCompletesGame(t *testing.T) {
	g := fixedGame(t)
	g.Level = level.TotalLevels
	g.Won = true

	if NextLevel(g) {
		t.Error("NextLevel past the final level = true")
	}
	if !g.GameComplete {
		t.Error("GameComplete not set")
	}
}

func TestRefresh_FinalLevelWinCompletesGame(t *testing.T) {
	g := fixedGame(t)
	g.Level = level.TotalLevels
	RotateAt(g, 0, 0)
	RotateAt(g, 0, 0)
	RotateAt(g, 0, 0)
	if !g.Won || !g.GameComplete {
		t.Errorf("won=%v complete=%v after winning the final level", g.Won, g.GameComplete)
	}
}

func TestShowHint(t *testing.T) {
	g := fixedGame(t)
	g.Cursor = world.Pos(4, 4)

	if !ShowHint(g) {
		t.Fatal("ShowHint() = false")
	}
	if g.Cursor != world.Pos(0, 0) {
		t.Errorf("cursor at %v, want 0:0", g.Cursor)
	}
	if !hasMessage(g, "CELL{0:0} ACTION{3}") {
		t.Errorf("hint message wrong: %v", g.Messages)
	}
	if g.Steps != 0 {
		t.Errorf("hint counted %d steps", g.Steps)
	}

	// The only candidate was already named; hints start over
	if !ShowHint(g) {
		t.Error("second ShowHint() = false")
	}
}

func TestShowHint_PoweredTilesFirst(t *testing.T) {
	g := fixedGame(t)
	// 2:4 stays lit after a turn since it still points back at 2:3
	g.Board.Tile(2, 4).Rotate()
	g.Board.Propagate()

	ShowHint(g)
	if !g.Board.Tile(2, 4).Powered {
		t.Fatal("setup: 2:4 not powered")
	}
	if g.Cursor != world.Pos(2, 4) {
		t.Errorf("first hint at %v, want the powered tile 2:4", g.Cursor)
	}
	ShowHint(g)
	if g.Cursor != world.Pos(0, 0) {
		t.Errorf("second hint at %v, want 0:0", g.Cursor)
	}
}

func TestShowHint_NothingToFix(t *testing.T) {
	g := state.NewGame(generator.Fixed, 1, 3, 3)
	g.Board = generator.Fixed.Generate(3, 3, nil)
	g.Board.Propagate()

	if ShowHint(g) {
		t.Error("ShowHint() on a solved board = true")
	}
	if !hasMessage(g, "already in place") {
		t.Errorf("messages = %v", g.Messages)
	}

	g.Board = board.New(2, 2)
	if ShowHint(g) {
		t.Error("ShowHint() without a recorded solution = true")
	}
	if !hasMessage(g, "No hint available") {
		t.Errorf("messages = %v", g.Messages)
	}
}

// clickAt sends the intent a click at pixel x/y on 50px tiles produces
func clickAt(g *state.Game, x, y int) bool {
	row, col, ok := engineinput.PixelToCell(x, y, 50)
	if !ok {
		return false
	}
	before := g.Steps
	ProcessIntent(g, engineinput.IntentAt(engineinput.ActionRotateAt, row, col))
	return g.Steps != before
}

func TestProcessIntent_RotateAtClick(t *testing.T) {
	g := fixedGame(t)

	if !clickAt(g, 10, 10) {
		t.Fatal("click on 0:0 did not rotate")
	}
	if g.Steps != 1 || g.Cursor != world.Pos(0, 0) {
		t.Errorf("steps=%d cursor=%v", g.Steps, g.Cursor)
	}

	// 3:1 sits at x 50-99, y 150-199
	before := g.Board.Tile(3, 1).Wires
	if !clickAt(g, 75, 199) {
		t.Fatal("click on 3:1 did not rotate")
	}
	if g.Board.Tile(3, 1).Wires == before {
		t.Error("clicked tile did not turn")
	}

	for _, xy := range [][2]int{{-1, 10}, {10, -1}, {250, 10}, {10, 250}} {
		if clickAt(g, xy[0], xy[1]) {
			t.Errorf("click at %v rotated a tile", xy)
		}
	}
	if g.Steps != 2 {
		t.Errorf("Steps = %d, want 2", g.Steps)
	}
}

func TestProcessIntent_CursorAndRotate(t *testing.T) {
	g := fixedGame(t)
	g.Cursor = world.Pos(1, 1)

	ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionCursorUp})
	ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionCursorLeft})
	ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionCursorLeft})
	if g.Cursor != world.Pos(0, 0) {
		t.Fatalf("cursor at %v, want 0:0 (clamped at the edge)", g.Cursor)
	}

	for i := 0; i < 3; i++ {
		ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionRotate})
	}
	if !g.Won || g.Steps != 3 {
		t.Errorf("won=%v steps=%d after rotating at the cursor", g.Won, g.Steps)
	}
}

func TestProcessIntent_RotateWithTarget(t *testing.T) {
	g := fixedGame(t)
	ProcessIntent(g, engineinput.IntentAt(engineinput.ActionRotate, 4, 4))
	if g.Steps != 1 {
		t.Errorf("Steps = %d, want 1", g.Steps)
	}
	if g.Cursor != world.Pos(0, 0) {
		t.Errorf("keyboard rotate with a target moved the cursor to %v", g.Cursor)
	}

	// A mouse press without a target does nothing
	ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionRotateAt})
	if g.Steps != 1 {
		t.Errorf("untargeted RotateAt counted a step")
	}
}

func TestProcessIntent_StationAndQuit(t *testing.T) {
	g := fixedGame(t)

	ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionMoveStationDown})
	if got := g.Board.StationPosition(); got != world.Pos(3, 2) {
		t.Errorf("station at %v, want 3:2", got)
	}

	ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionNextLevel})
	if !hasMessage(g, "Light every tile") {
		t.Errorf("next level before winning not denied: %v", g.Messages)
	}

	ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionQuit})
	if !g.QuitRequested || !hasMessage(g, "Goodbye!") {
		t.Errorf("quit=%v messages=%v", g.QuitRequested, g.Messages)
	}
}

func TestProcessIntent_AnyKeyQuitsWhenComplete(t *testing.T) {
	g := fixedGame(t)
	g.GameComplete = true

	ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionNone})
	if g.QuitRequested {
		t.Fatal("ActionNone quit the game")
	}
	ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionRotate})
	if !g.QuitRequested {
		t.Error("key press on the completion screen did not quit")
	}
	if g.Steps != 0 {
		t.Errorf("rotation applied on the completion screen")
	}
}

func TestProcessIntent_DebugDump(t *testing.T) {
	t.Chdir(t.TempDir())
	g := fixedGame(t)

	ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionDebugDump})
	if !hasMessage(g, "board.txt") {
		t.Errorf("dump message missing: %v", g.Messages)
	}
}

func TestProcessIntent_Screenshot(t *testing.T) {
	t.Chdir(t.TempDir())
	g := fixedGame(t)

	ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionScreenshot})
	if !hasMessage(g, "Screenshot saved to") {
		t.Errorf("screenshot message missing: %v", g.Messages)
	}
}
