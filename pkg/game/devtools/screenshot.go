package devtools

import (
	"fmt"
	"html"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"lightemall/pkg/game/board"
	"lightemall/pkg/game/locale"
	"lightemall/pkg/game/renderer"
	"lightemall/pkg/game/state"
)

// SaveScreenshotHTML saves the current board as a standalone HTML file named
// after the current time and returns its absolute path
func SaveScreenshotHTML(g *state.Game) (string, error) {
	if g.Board == nil {
		return "", ErrNoBoard
	}

	timestamp := time.Now().Format("20060102-150405")
	absPath, err := filepath.Abs(fmt.Sprintf("screenshot-%s.html", timestamp))
	if err != nil {
		return "", fmt.Errorf("resolve screenshot path: %w", err)
	}

	var sb strings.Builder
	if err := WriteScreenshotHTML(&sb, g); err != nil {
		return "", err
	}
	if err := os.WriteFile(absPath, []byte(sb.String()), 0644); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return absPath, nil
}

// WriteScreenshotHTML renders the board, step count and messages as HTML.
// Powered wires are shaded by distance from the station like the terminal view.
func WriteScreenshotHTML(w io.Writer, g *state.Game) error {
	if g.Board == nil {
		return ErrNoBoard
	}
	snap := g.Board.Snapshot()

	var sb strings.Builder
	sb.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>LightEmAll - Screenshot</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header { color: #bb86fc; font-size: 18px; margin-bottom: 10px; }
        .status { color: #888; margin-bottom: 20px; }
        .won { color: #00ff00; font-weight: bold; }
        .board-container {
            background-color: #0f0f1a;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            margin: 20px 0;
        }
        .board-row { white-space: pre; line-height: 1.0; font-size: 24px; }
        .dark { color: #666; }
        .station { color: #ffdc00; font-weight: bold; }
        .messages { margin-top: 20px; border-top: 1px solid #333; padding-top: 10px; }
        .message { color: #ccc; margin: 5px 0; }
    </style>
</head>
<body>
`)

	fmt.Fprintf(&sb, `    <div class="header">Level %d</div>`+"\n", g.Level)
	fmt.Fprintf(&sb, `    <div class="status">Steps: %d &middot; Powered: %d/%d</div>`+"\n",
		g.Steps, snap.Powered, len(snap.Tiles))
	if g.Won {
		fmt.Fprintf(&sb, `    <div class="won">%s</div>`+"\n", html.EscapeString(renderer.StripMarkup(locale.Get("WON"))))
	}

	sb.WriteString(`    <div class="board-container">` + "\n")
	for row := 0; row < snap.Rows; row++ {
		sb.WriteString(`        <div class="board-row">`)
		for col := 0; col < snap.Cols; col++ {
			sb.WriteString(tileHTML(snap.At(row, col)))
		}
		sb.WriteString("</div>\n")
	}
	sb.WriteString(`    </div>` + "\n")

	if len(g.Messages) > 0 {
		sb.WriteString(`    <div class="messages">` + "\n")
		for _, msg := range g.Messages {
			fmt.Fprintf(&sb, `        <div class="message">%s</div>`+"\n", html.EscapeString(renderer.StripMarkup(msg)))
		}
		sb.WriteString(`    </div>` + "\n")
	}

	sb.WriteString(`</body>
</html>
`)

	_, err := io.WriteString(w, sb.String())
	return err
}

// tileHTML returns the glyph of one tile wrapped in a span carrying its color
func tileHTML(t board.TileView) string {
	glyph := string(t.Wires.Glyph())
	switch {
	case t.Station:
		return fmt.Sprintf(`<span class="station">%s</span>`, glyph)
	case t.Powered:
		return fmt.Sprintf(`<span style="color:#00%02x00">%s</span>`, renderer.WireShade(t.Depth), glyph)
	default:
		return fmt.Sprintf(`<span class="dark">%s</span>`, glyph)
	}
}
