package ebiten

import "image/color"

// Color palette
var (
	colorBackground = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorTile       = color.RGBA{15, 15, 26, 255}    // Darker for the board
	colorCursor     = color.RGBA{60, 80, 100, 255}   // Selected tile background
	colorWireDark   = color.RGBA{100, 100, 120, 255} // Unpowered wire
	colorStation    = color.RGBA{255, 220, 0, 255}   // Bright yellow
	colorWonTile    = color.RGBA{40, 80, 40, 255}    // Board background once won
)

// Layout constants
const (
	// DefaultTileSize is the pixel width and height of one tile
	DefaultTileSize = 50

	minTileSize = 8

	// Debug font metrics
	lineHeight = 16
	panelPad   = 8

	// panelLines is the number of text lines below the board:
	// header, status, banner, controls, a blank line and the messages
	panelLines = 5 + maxPanelMessages

	maxPanelMessages = 5

	// minScreenWidth keeps the text panel readable on narrow boards
	minScreenWidth = 480

	// wireRatio is the wire thickness as a fraction of the tile size
	wireRatio = 6
)
