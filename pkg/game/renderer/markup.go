// Package renderer defines the rendering backends' interface and the pieces
// they share: message markup and the wire brightness gradient.
package renderer

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	// ErrNoRenderer is returned by Run when no renderer was set
	ErrNoRenderer = errors.New("no renderer set")
	// ErrNoInput is returned by Run for a renderer that can neither prompt nor loop
	ErrNoInput = errors.New("renderer has no input source")
)

// markupPattern matches TAG{operand} spans in messages, e.g. ACTION{N} or CELL{2:3}
var markupPattern = regexp.MustCompile(`([A-Z_]+)\{([^{}]*)\}`)

// ApplyMarkup formats msg with args, then replaces every TAG{operand} span with
// style(tag, operand).
func ApplyMarkup(style func(tag, operand string) string, msg string, args ...any) string {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return markupPattern.ReplaceAllStringFunc(msg, func(span string) string {
		m := markupPattern.FindStringSubmatch(span)
		return style(m[1], m[2])
	})
}

// StripMarkup formats msg and drops the markup tags, keeping their operands
func StripMarkup(msg string, args ...any) string {
	return ApplyMarkup(func(_, operand string) string { return operand }, msg, args...)
}

// WireShade returns the brightness of a powered wire at the given BFS depth
// from the station: 255 at the station, 25 less per step, never below MinShade.
func WireShade(depth int) uint8 {
	v := 255 - 25*depth
	if v < MinShade {
		v = MinShade
	}
	if v > 255 {
		v = 255
	}
	return uint8(v)
}

// MinShade is the dimmest a powered wire gets
const MinShade = 80
