package tower

// Position identifies one of the three fixed pegs.
type Position int

const (
	// Left is the conventional starting peg.
	Left Position = iota
	// Center is the auxiliary peg.
	Center
	// Right is the conventional destination peg.
	Right
)

// Positions returns all peg positions in display order.
func Positions() [3]Position {
	return [3]Position{Left, Center, Right}
}

// Valid returns true for the three known positions.
func (p Position) Valid() bool {
	return p == Left || p == Center || p == Right
}

// String returns a human-readable position name.
func (p Position) String() string {
	switch p {
	case Left:
		return "left"
	case Center:
		return "center"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// ParsePosition maps a key rune to a position. Both digit keys (1-3)
// and mnemonic keys (l/c/r) are accepted.
func ParsePosition(r rune) (Position, bool) {
	switch r {
	case '1', 'l', 'L':
		return Left, true
	case '2', 'c', 'C':
		return Center, true
	case '3', 'r', 'R':
		return Right, true
	default:
		return 0, false
	}
}
