package world

// Direction represents one side of a tile, in clockwise order starting at the top
type Direction int

// Direction constants
const (
	Up Direction = iota
	Right
	Down
	Left
)

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{Up, Right, Down, Left}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// ParseDirection returns the direction named by s ("up", "down", "left", "right")
func ParseDirection(s string) (Direction, bool) {
	for _, d := range AllDirections() {
		if d.String() == s {
			return d, true
		}
	}
	return Up, false
}

// IsValid returns true if the direction is one of the four sides
func (d Direction) IsValid() bool {
	return d >= Up && d <= Left
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Right:
		return Left
	case Left:
		return Right
	default:
		return d
	}
}

// Clockwise returns the direction a quarter turn clockwise from d
func (d Direction) Clockwise() Direction {
	if !d.IsValid() {
		return d
	}
	return (d + 1) % 4
}

// Delta returns the row and column offsets for this direction
func (d Direction) Delta() (rowDelta, colDelta int) {
	switch d {
	case Up:
		return -1, 0
	case Right:
		return 0, 1
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	default:
		return 0, 0
	}
}
