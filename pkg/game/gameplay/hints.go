package gameplay

import (
	"lightemall/pkg/engine/world"
	"lightemall/pkg/game/board"
	"lightemall/pkg/game/state"
)

// ShowHint names one tile that is not in its generated orientation and how
// many quarter turns fix it. Powered tiles come first since turning them
// extends the lit region. Tiles already hinted on this board are skipped
// until every candidate has been named once. Hints are free: no step is counted.
func ShowHint(g *state.Game) bool {
	if g.Board == nil || g.Won {
		return false
	}

	candidates := hintCandidates(g.Board)
	if candidates == nil {
		logMessage(g, "HINT_UNAVAILABLE")
		return false
	}
	if len(candidates) == 0 {
		logMessage(g, "HINT_NONE")
		return false
	}

	pick := -1
	for i, c := range candidates {
		if !g.Hinted.Has(c.pos) {
			pick = i
			break
		}
	}
	if pick < 0 {
		g.Hinted.Clear()
		pick = 0
	}

	c := candidates[pick]
	g.Hinted.Put(c.pos)
	g.Cursor = c.pos
	logMessage(g, "HINT_TURN", c.pos.Row, c.pos.Col, c.turns)
	return true
}

type hintCandidate struct {
	pos   world.Position
	turns int
}

// hintCandidates lists misoriented tiles, powered ones first, each group in
// row-major order. Returns nil if the board has no recorded solution.
func hintCandidates(b *board.Board) []hintCandidate {
	if _, ok := b.Solution(0, 0); !ok {
		return nil
	}

	powered := make([]hintCandidate, 0)
	dark := make([]hintCandidate, 0)
	b.ForEachTile(func(t *board.Tile) {
		sol, _ := b.Solution(t.Row, t.Col)
		if t.Wires == sol {
			return
		}
		turns := t.Wires.TurnsTo(sol)
		if turns < 0 {
			return
		}
		c := hintCandidate{pos: t.Position(), turns: turns}
		if t.Powered {
			powered = append(powered, c)
		} else {
			dark = append(dark, c)
		}
	})
	return append(powered, dark...)
}
