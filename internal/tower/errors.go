package tower

import "errors"

var (
	// ErrInvalidDisk is returned when a zero-value or non-positive-width
	// disk is pushed. Indicates a caller bug, not a player mistake.
	ErrInvalidDisk = errors.New("invalid disk")

	// ErrEmptyPeg is returned by Peek, Pop, and Move when the operation
	// needs a disk and the peg has none. Recoverable by re-prompting.
	ErrEmptyPeg = errors.New("peg is empty")

	// ErrRuleViolation is returned when a placement would put a wider
	// disk on a narrower one. Recoverable by re-prompting.
	ErrRuleViolation = errors.New("cannot place a wider disk on a narrower disk")
)
