package tower

import "fmt"

// MoveEvent describes one successful disk transfer. It is the only
// output the core exposes to rendering and driving code.
type MoveEvent struct {
	Disk      Disk
	From      Position
	To        Position
	MoveCount int // move counter after this move
}

// String returns a display form like "move disk(2) from left to center".
func (e MoveEvent) String() string {
	return fmt.Sprintf("move %v from %s to %s", e.Disk, e.From, e.To)
}

// State holds the full puzzle: three pegs, the configured disk count,
// and the move counter. All mutation goes through Move (and Reset), so
// the disk set is conserved and every peg stays legally ordered.
type State struct {
	diskCount int
	pegs      [3]*Peg // indexed by Position
	moveCount int
}

// NewState creates a puzzle with all disks stacked on the left peg,
// widest at the bottom.
func NewState(diskCount int) (*State, error) {
	if diskCount < 1 {
		return nil, fmt.Errorf("disk count must be at least 1, got %d", diskCount)
	}
	s := &State{diskCount: diskCount}
	s.setup()
	return s, nil
}

// setup rebuilds the pegs in the starting configuration.
func (s *State) setup() {
	for _, pos := range Positions() {
		s.pegs[pos] = NewPeg(pos)
	}
	for width := s.diskCount; width >= 1; width-- {
		// Cannot fail: widths arrive in decreasing order onto an empty peg.
		if err := s.pegs[Left].Push(Disk{Width: width}); err != nil {
			panic(err)
		}
	}
	s.moveCount = 0
}

// DiskCount returns the configured number of disks.
func (s *State) DiskCount() int {
	return s.diskCount
}

// MoveCount returns the number of successful moves since creation or
// the last reset.
func (s *State) MoveCount() int {
	return s.moveCount
}

// PegWidths returns the disk widths on the given peg, bottom to top.
func (s *State) PegWidths(pos Position) []int {
	return s.pegs[pos].Widths()
}

// TopDisk returns the top disk of the given peg, if any.
func (s *State) TopDisk(pos Position) (Disk, bool) {
	d, err := s.pegs[pos].Peek()
	return d, err == nil
}

// Move transfers the top disk from src to dst. Both pegs are validated
// before anything moves, so a rejected move never mutates state and a
// disk is never left off-peg.
func (s *State) Move(src, dst Position) (MoveEvent, error) {
	if src == dst {
		return MoveEvent{}, fmt.Errorf("source and destination are both the %s peg: %w", src, ErrRuleViolation)
	}

	disk, err := s.pegs[src].Peek()
	if err != nil {
		return MoveEvent{}, err
	}
	if top, err := s.pegs[dst].Peek(); err == nil && top.Smaller(disk) {
		return MoveEvent{}, fmt.Errorf("move %v onto %v at %s peg: %w", disk, top, dst, ErrRuleViolation)
	}

	if _, err := s.pegs[src].Pop(); err != nil {
		return MoveEvent{}, err
	}
	if err := s.pegs[dst].Push(disk); err != nil {
		// Unreachable after validation above; restore the disk so the
		// invariants hold even if it ever happens.
		s.pegs[src].disks = append(s.pegs[src].disks, disk)
		return MoveEvent{}, err
	}

	s.moveCount++
	return MoveEvent{Disk: disk, From: src, To: dst, MoveCount: s.moveCount}, nil
}

// IsSolved returns true if every disk sits on the target peg.
func (s *State) IsSolved(target Position) bool {
	return s.pegs[target].Count() == s.diskCount
}

// Reset restores the starting configuration and zeroes the move counter.
func (s *State) Reset() {
	s.setup()
}
