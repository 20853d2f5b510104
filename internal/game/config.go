package game

import "time"

// Config holds game configuration options.
type Config struct {
	// Level selects a named difficulty preset from levels.json.
	// Ignored when Disks is set.
	Level string

	// Disks overrides the preset disk count when positive.
	Disks int

	// Auto starts the session in auto-solve mode.
	Auto bool

	// MoveDelay paces auto-solve rendering, one move per interval.
	MoveDelay time.Duration
}
