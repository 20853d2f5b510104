package game

import (
	"errors"
	"fmt"

	"github.com/samdwyer/hanoiband/internal/solver"
	"github.com/samdwyer/hanoiband/internal/tower"
)

// Target is the peg the puzzle is won on.
const Target = tower.Right

// Controller turns peg selections into moves against the puzzle state.
// It holds no screen handle, so driver logic is testable headless; Game
// feeds it key presses and renders whatever it reports.
type Controller struct {
	state    *tower.State
	mode     Mode
	selected tower.Position
	status   string
}

// NewController creates a controller for the given state.
func NewController(state *tower.State) *Controller {
	return &Controller{
		state:  state,
		mode:   ModeSelectSource,
		status: "Pick a source peg.",
	}
}

// Mode returns the current input mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Status returns the message describing the last action or prompt.
func (c *Controller) Status() string {
	return c.status
}

// Selection returns the pending source peg, if one is picked.
func (c *Controller) Selection() (tower.Position, bool) {
	return c.selected, c.mode == ModeSelectTarget
}

// SelectPeg advances the two-step move: the first peg picked is the
// source, the second the destination. Illegal moves only change the
// status line; the puzzle state is untouched.
func (c *Controller) SelectPeg(pos tower.Position) {
	switch c.mode {
	case ModeSelectSource:
		if _, ok := c.state.TopDisk(pos); !ok {
			c.status = fmt.Sprintf("The %s peg is empty.", pos)
			return
		}
		c.selected = pos
		c.mode = ModeSelectTarget
		c.status = fmt.Sprintf("Moving from %s. Pick a destination.", pos)

	case ModeSelectTarget:
		if pos == c.selected {
			c.CancelSelection()
			return
		}
		c.applyMove(c.selected, pos)

	case ModeSolved:
		c.status = "Solved! Press r to replay or q to quit."
	}
}

// CancelSelection drops a pending source peg.
func (c *Controller) CancelSelection() {
	if c.mode == ModeSelectTarget {
		c.mode = ModeSelectSource
		c.status = "Selection cleared."
	}
}

// Replay restores the starting position after a win.
func (c *Controller) Replay() {
	if c.mode != ModeSolved {
		return
	}
	c.state.Reset()
	c.mode = ModeSelectSource
	c.status = "Back to the start. Pick a source peg."
}

// FinishAuto records the outcome of an auto-solve run.
func (c *Controller) FinishAuto(err error) {
	if err != nil {
		c.mode = ModeSelectSource
		c.status = fmt.Sprintf("Auto-solve stopped: %v", err)
		return
	}
	c.markSolvedIfDone()
}

// applyMove runs one move and translates the result into mode/status.
func (c *Controller) applyMove(src, dst tower.Position) {
	ev, err := c.state.Move(src, dst)
	c.mode = ModeSelectSource

	switch {
	case errors.Is(err, tower.ErrRuleViolation):
		c.status = fmt.Sprintf("Illegal: a wider disk cannot sit on a narrower one (%s to %s).", src, dst)
	case errors.Is(err, tower.ErrEmptyPeg):
		c.status = fmt.Sprintf("The %s peg is empty.", src)
	case err != nil:
		c.status = fmt.Sprintf("Move failed: %v", err)
	default:
		c.status = fmt.Sprintf("Moved disk %d from %s to %s.", ev.Disk.Width, ev.From, ev.To)
		c.markSolvedIfDone()
	}
}

// markSolvedIfDone flips to the solved mode with a score summary.
func (c *Controller) markSolvedIfDone() {
	if !c.state.IsSolved(Target) {
		return
	}
	c.mode = ModeSolved
	minimum := solver.MinimumMoves(c.state.DiskCount())
	if c.state.MoveCount() == minimum {
		c.status = fmt.Sprintf("Solved in the minimum %d moves! Press r to replay.", minimum)
	} else {
		c.status = fmt.Sprintf("Solved in %d moves (minimum is %d). Press r to replay.",
			c.state.MoveCount(), minimum)
	}
}
