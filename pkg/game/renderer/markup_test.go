package renderer

import (
	"strings"
	"testing"
)

func TestApplyMarkup(t *testing.T) {
	style := func(tag, operand string) string {
		return "<" + strings.ToLower(tag) + ">" + operand + "</>"
	}
	got := ApplyMarkup(style, "Rotate CELL{%d:%d} ACTION{%d} times", 2, 3, 1)
	want := "Rotate <cell>2:3</> <action>1</> times"
	if got != want {
		t.Errorf("ApplyMarkup() = %q, want %q", got, want)
	}
}

func TestStripMarkup(t *testing.T) {
	tests := []struct {
		msg  string
		args []any
		want string
	}{
		{"WON{CONGRATS! YOU WON}", nil, "CONGRATS! YOU WON"},
		{"plain text", nil, "plain text"},
		{"Board dumped to ITEM{%s}", []any{"/tmp/board.txt"}, "Board dumped to /tmp/board.txt"},
		{"100% literal without args", nil, "100% literal without args"},
	}
	for _, tt := range tests {
		if got := StripMarkup(tt.msg, tt.args...); got != tt.want {
			t.Errorf("StripMarkup(%q) = %q, want %q", tt.msg, got, tt.want)
		}
	}
}

func TestWireShade(t *testing.T) {
	tests := []struct {
		depth int
		want  uint8
	}{
		{0, 255},
		{1, 230},
		{4, 155},
		{7, 80},
		{30, MinShade},
		{-1, 255},
	}
	for _, tt := range tests {
		if got := WireShade(tt.depth); got != tt.want {
			t.Errorf("WireShade(%d) = %d, want %d", tt.depth, got, tt.want)
		}
	}
}
