// Package terminal reports the dimensions of the controlling terminal.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// Fits reports whether a block of the given size, plus reserved rows for
// chrome around it, fits on the terminal.
func Fits(width, height, reservedRows int) bool {
	w, h := GetSize()
	return width <= w && height+reservedRows <= h
}

// IsInteractive reports whether both stdin and stdout are terminals
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
