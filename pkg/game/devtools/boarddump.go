// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"lightemall/pkg/game/board"
	"lightemall/pkg/game/state"
)

const boardDumpFilename = "board.txt"

// ErrNoBoard is returned when there is no board to dump
var ErrNoBoard = errors.New("no board")

// DumpBoardToFile writes a full debug dump of the current board to board.txt
// in the working directory and returns its absolute path.
func DumpBoardToFile(g *state.Game) (string, error) {
	if g.Board == nil {
		return "", ErrNoBoard
	}

	absPath, err := filepath.Abs(boardDumpFilename)
	if err != nil {
		return "", fmt.Errorf("resolve dump path: %w", err)
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("create board dump: %w", err)
	}
	defer f.Close()

	if err := DumpBoard(f, g); err != nil {
		return "", fmt.Errorf("write board dump: %w", err)
	}
	return absPath, nil
}

// DumpBoard writes metadata, the current wiring, the power map, BFS depths,
// the generated wiring and a list of misoriented tiles.
// Format is human- and LLM-readable (sections, key: value, consistent structure).
func DumpBoard(w io.Writer, g *state.Game) error {
	if g.Board == nil {
		return ErrNoBoard
	}
	b := g.Board
	out := bufio.NewWriter(w)

	// --- Metadata ---
	fmt.Fprintln(out, "=== BOARD DUMP DEBUG (wiring, power, solution) ===")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "--- Metadata ---")
	fmt.Fprintf(out, "level: %d\n", g.Level)
	fmt.Fprintf(out, "seed: %d\n", g.Seed)
	if g.Generator != nil {
		fmt.Fprintf(out, "generator: %s\n", g.Generator.Name())
	}
	fmt.Fprintf(out, "rows: %d\n", b.Rows())
	fmt.Fprintf(out, "cols: %d\n", b.Cols())
	fmt.Fprintf(out, "coordinate_system: row,col (0-based, row=vertical, col=horizontal)\n")
	fmt.Fprintf(out, "station: %d,%d\n", b.StationPosition().Row, b.StationPosition().Col)
	fmt.Fprintf(out, "cursor: %d,%d\n", g.Cursor.Row, g.Cursor.Col)
	fmt.Fprintf(out, "steps: %d\n", g.Steps)
	fmt.Fprintf(out, "won: %v\n", g.Won)
	fmt.Fprintf(out, "powered: %d/%d\n", b.PoweredCount(), b.Size())
	fmt.Fprintf(out, "connections: %d\n", b.ConnectionCount())
	fmt.Fprintln(out, "")

	// --- Legend ---
	fmt.Fprintln(out, "--- Legend ---")
	fmt.Fprintln(out, "wiring: box-drawing glyph per tile, · = no stubs")
	fmt.Fprintln(out, "power: S = station, * = powered, . = dark")
	fmt.Fprintln(out, "depth: BFS distance from the station, - = dark")
	fmt.Fprintln(out, "")

	snap := b.Snapshot()

	fmt.Fprintln(out, "--- Wiring ---")
	writeGrid(out, snap, func(t board.TileView) string {
		return string(t.Wires.Glyph())
	})

	fmt.Fprintln(out, "--- Power ---")
	writeGrid(out, snap, func(t board.TileView) string {
		switch {
		case t.Station:
			return "S"
		case t.Powered:
			return "*"
		default:
			return "."
		}
	})

	fmt.Fprintln(out, "--- Depth ---")
	writeGrid(out, snap, func(t board.TileView) string {
		if t.Depth < 0 {
			return "  -"
		}
		return fmt.Sprintf("%3d", t.Depth)
	})

	if _, ok := b.Solution(0, 0); ok {
		fmt.Fprintln(out, "--- Solution ---")
		writeGrid(out, snap, func(t board.TileView) string {
			sol, _ := b.Solution(t.Row, t.Col)
			return string(sol.Glyph())
		})

		fmt.Fprintln(out, "--- Misoriented ---")
		count := 0
		for _, t := range snap.Tiles {
			sol, _ := b.Solution(t.Row, t.Col)
			if t.Wires == sol {
				continue
			}
			count++
			fmt.Fprintf(out, "tile %d,%d: wires=%s solution=%s turns=%d\n", t.Row, t.Col, t.Wires, sol, t.Wires.TurnsTo(sol))
		}
		fmt.Fprintf(out, "misoriented_count: %d\n", count)
	}

	return out.Flush()
}

// writeGrid writes one line per board row, each tile rendered by cell
func writeGrid(w io.Writer, s board.Snapshot, cell func(t board.TileView) string) {
	for row := 0; row < s.Rows; row++ {
		for col := 0; col < s.Cols; col++ {
			fmt.Fprint(w, cell(s.At(row, col)))
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
}
