package tower

import "fmt"

// Peg is a stack of disks with the placement rule enforced at the Push
// boundary: widths are strictly decreasing from bottom to top, and only
// the top disk is reachable.
type Peg struct {
	position Position
	disks    []Disk // index 0 is the bottom, last is the top
}

// NewPeg creates an empty peg at the given position.
func NewPeg(position Position) *Peg {
	return &Peg{position: position}
}

// Position returns the peg's fixed position.
func (p *Peg) Position() Position {
	return p.position
}

// IsEmpty returns true if the peg holds no disks.
func (p *Peg) IsEmpty() bool {
	return len(p.disks) == 0
}

// Count returns the number of disks on the peg.
func (p *Peg) Count() int {
	return len(p.disks)
}

// Peek returns the top disk without removing it.
func (p *Peg) Peek() (Disk, error) {
	if p.IsEmpty() {
		return Disk{}, fmt.Errorf("peek %s peg: %w", p.position, ErrEmptyPeg)
	}
	return p.disks[len(p.disks)-1], nil
}

// Pop removes and returns the top disk.
func (p *Peg) Pop() (Disk, error) {
	if p.IsEmpty() {
		return Disk{}, fmt.Errorf("pop %s peg: %w", p.position, ErrEmptyPeg)
	}
	top := p.disks[len(p.disks)-1]
	p.disks = p.disks[:len(p.disks)-1]
	return top, nil
}

// Push places a disk on top of the peg. The placement rule is checked
// before anything changes, so a failed push leaves the peg untouched.
func (p *Peg) Push(d Disk) error {
	if d.Width <= 0 {
		return fmt.Errorf("push onto %s peg: %w", p.position, ErrInvalidDisk)
	}
	if !p.IsEmpty() {
		top := p.disks[len(p.disks)-1]
		if top.Smaller(d) {
			return fmt.Errorf("push %v onto %v at %s peg: %w", d, top, p.position, ErrRuleViolation)
		}
	}
	p.disks = append(p.disks, d)
	return nil
}

// Widths returns the disk widths from bottom to top. The slice is a
// copy; callers cannot alias the peg's internal stack.
func (p *Peg) Widths() []int {
	widths := make([]int, len(p.disks))
	for i, d := range p.disks {
		widths[i] = d.Width
	}
	return widths
}
