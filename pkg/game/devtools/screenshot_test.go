package devtools

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lightemall/pkg/game/generator"
	"lightemall/pkg/game/state"
)

func TestWriteScreenshotHTML(t *testing.T) {
	g := state.NewGame(generator.Fixed, 1, 3, 3)
	g.Board = generator.Fixed.Generate(3, 3, nil)
	g.Board.Tile(0, 0).Rotate()
	g.Board.Propagate()
	g.AddMessage("Rotate the tile at CELL{0:0} ACTION{3} more time(s).")
	g.AddMessage("<b>")

	var sb strings.Builder
	if err := WriteScreenshotHTML(&sb, g); err != nil {
		t.Fatalf("WriteScreenshotHTML() error: %v", err)
	}
	out := sb.String()

	for _, want := range []string{
		"<title>LightEmAll - Screenshot</title>",
		"Steps: 0 &middot; Powered: 8/9",
		`<span class="station">┼</span>`,
		`<span class="dark">╴</span>`,
		`<span style="color:#00e600">`, // one step from the station
		"Rotate the tile at 0:0 3 more time(s).",
		"&lt;b&gt;",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("screenshot missing %q\n%s", want, out)
		}
	}
	if strings.Contains(out, "CELL{") {
		t.Error("markup left in screenshot")
	}
	if strings.Contains(out, `class="won"`) {
		t.Error("won banner on an unsolved board")
	}
}

func TestSaveScreenshotHTML(t *testing.T) {
	t.Chdir(t.TempDir())
	g := state.NewGame(generator.Fixed, 1, 2, 2)
	if _, err := SaveScreenshotHTML(g); !errors.Is(err, ErrNoBoard) {
		t.Errorf("SaveScreenshotHTML without a board: err = %v, want ErrNoBoard", err)
	}

	g.Board = generator.Fixed.Generate(2, 2, nil)
	g.Board.Propagate()
	g.Won = true

	path, err := SaveScreenshotHTML(g)
	if err != nil {
		t.Fatalf("SaveScreenshotHTML() error: %v", err)
	}
	if !strings.HasPrefix(filepath.Base(path), "screenshot-") || filepath.Ext(path) != ".html" {
		t.Errorf("unexpected file name %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read screenshot: %v", err)
	}
	if !strings.Contains(string(data), "CONGRATS! YOU WON") {
		t.Error("won banner missing")
	}
}
