package devtools

import (
	"bytes"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"lightemall/pkg/game/generator"
	"lightemall/pkg/game/state"
)

func TestDumpBoard_FixedBoard(t *testing.T) {
	g := state.NewGame(generator.Fixed, 3, 3, 3)
	g.Board = generator.Fixed.Generate(3, 3, rand.New(rand.NewSource(3)))
	g.Board.Propagate()

	var buf bytes.Buffer
	if err := DumpBoard(&buf, g); err != nil {
		t.Fatalf("DumpBoard() error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"generator: fixed",
		"station: 1,1",
		"powered: 9/9",
		"connections: 8",
		"--- Wiring ---\n╷╷╷\n├┼┤\n╵╵╵\n",
		"--- Power ---\n***\n*S*\n***\n",
		"misoriented_count: 0",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q\n%s", want, out)
		}
	}
}

func TestDumpBoard_ListsMisorientedTiles(t *testing.T) {
	g := state.NewGame(generator.Fixed, 3, 1, 3)
	g.Board = generator.Fixed.Generate(1, 3, nil)
	g.Board.Tile(0, 2).Rotate()
	g.Board.Propagate()

	var buf bytes.Buffer
	if err := DumpBoard(&buf, g); err != nil {
		t.Fatalf("DumpBoard() error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "tile 0,2: wires=up solution=left turns=3") {
		t.Errorf("dump does not list the rotated tile\n%s", out)
	}
	if !strings.Contains(out, "misoriented_count: 1") {
		t.Errorf("dump has wrong misoriented count\n%s", out)
	}
}

func TestDumpBoard_NoBoard(t *testing.T) {
	g := state.NewGame(generator.Fixed, 1, 1, 1)
	if err := DumpBoard(&bytes.Buffer{}, g); !errors.Is(err, ErrNoBoard) {
		t.Errorf("DumpBoard() = %v, want ErrNoBoard", err)
	}
	if _, err := DumpBoardToFile(g); !errors.Is(err, ErrNoBoard) {
		t.Errorf("DumpBoardToFile() = %v, want ErrNoBoard", err)
	}
}

func TestDumpBoardToFile(t *testing.T) {
	t.Chdir(t.TempDir())
	g := state.NewGame(generator.Fixed, 1, 2, 2)
	g.Board = generator.Fixed.Generate(2, 2, nil)

	path, err := DumpBoardToFile(g)
	if err != nil {
		t.Fatalf("DumpBoardToFile() error: %v", err)
	}
	if !strings.HasSuffix(path, boardDumpFilename) {
		t.Errorf("path = %q, want it to end in %s", path, boardDumpFilename)
	}
}
