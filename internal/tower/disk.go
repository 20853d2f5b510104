// Package tower provides the rule-enforcing puzzle state: disks, pegs,
// and the single move operation all drivers go through.
package tower

import "fmt"

// Disk is a single puzzle disk. Width is positive and unique within a
// puzzle; disks never change after creation.
type Disk struct {
	Width int
}

// Smaller returns true if d is narrower than other.
func (d Disk) Smaller(other Disk) bool {
	return d.Width < other.Width
}

// String returns a short display form, e.g. "disk(3)".
func (d Disk) String() string {
	return fmt.Sprintf("disk(%d)", d.Width)
}
