// Package game provides the interactive driver and session management.
package game

// Mode represents what the session is currently waiting for.
type Mode int

const (
	// ModeSelectSource is the default mode: waiting for a source peg.
	ModeSelectSource Mode = iota
	// ModeSelectTarget has a source peg picked and waits for a destination.
	ModeSelectTarget
	// ModeSolved is reached when every disk sits on the target peg.
	ModeSolved
	// ModeAuto is active while the solver is driving the puzzle.
	ModeAuto
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeSelectSource:
		return "select_source"
	case ModeSelectTarget:
		return "select_target"
	case ModeSolved:
		return "solved"
	case ModeAuto:
		return "auto"
	default:
		return "unknown"
	}
}
