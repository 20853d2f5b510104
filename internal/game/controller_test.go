package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/samdwyer/hanoiband/internal/tower"
)

func TestModeString(t *testing.T) {
	tests := []struct {
		mode     Mode
		expected string
	}{
		{ModeSelectSource, "select_source"},
		{ModeSelectTarget, "select_target"},
		{ModeSolved, "solved"},
		{ModeAuto, "auto"},
		{Mode(99), "unknown"},
	}

	for _, tt := range tests {
		got := tt.mode.String()
		if got != tt.expected {
			t.Errorf("Mode(%d).String() = %q, want %q", tt.mode, got, tt.expected)
		}
	}
}

func newTestController(t *testing.T, disks int) (*Controller, *tower.State) {
	t.Helper()
	state, err := tower.NewState(disks)
	if err != nil {
		t.Fatalf("NewState(%d) failed: %v", disks, err)
	}
	return NewController(state), state
}

func TestControllerSelectAndMove(t *testing.T) {
	c, state := newTestController(t, 3)

	if c.Mode() != ModeSelectSource {
		t.Fatalf("Initial mode = %v, want ModeSelectSource", c.Mode())
	}

	c.SelectPeg(tower.Left)
	if c.Mode() != ModeSelectTarget {
		t.Fatalf("Mode after source pick = %v, want ModeSelectTarget", c.Mode())
	}
	if sel, ok := c.Selection(); !ok || sel != tower.Left {
		t.Fatalf("Selection = %v, %v; want Left, true", sel, ok)
	}

	c.SelectPeg(tower.Right)
	if c.Mode() != ModeSelectSource {
		t.Fatalf("Mode after move = %v, want ModeSelectSource", c.Mode())
	}
	if state.MoveCount() != 1 {
		t.Errorf("MoveCount = %d, want 1", state.MoveCount())
	}
	if widths := state.PegWidths(tower.Right); len(widths) != 1 || widths[0] != 1 {
		t.Errorf("Right peg = %v, want [1]", widths)
	}
}

func TestControllerEmptySourceRejected(t *testing.T) {
	c, state := newTestController(t, 3)

	c.SelectPeg(tower.Center)
	if c.Mode() != ModeSelectSource {
		t.Errorf("Picking an empty source changed mode to %v", c.Mode())
	}
	if !strings.Contains(c.Status(), "empty") {
		t.Errorf("Status = %q, want an empty-peg message", c.Status())
	}
	if state.MoveCount() != 0 {
		t.Errorf("MoveCount = %d, want 0", state.MoveCount())
	}
}

func TestControllerIllegalMoveKeepsState(t *testing.T) {
	c, state := newTestController(t, 3)

	// Disk 1 to Right, then try disk 2 onto it.
	c.SelectPeg(tower.Left)
	c.SelectPeg(tower.Right)
	c.SelectPeg(tower.Left)
	c.SelectPeg(tower.Right)

	if !strings.Contains(c.Status(), "Illegal") {
		t.Errorf("Status = %q, want an illegal-move message", c.Status())
	}
	if c.Mode() != ModeSelectSource {
		t.Errorf("Mode after illegal move = %v, want ModeSelectSource", c.Mode())
	}
	if state.MoveCount() != 1 {
		t.Errorf("MoveCount = %d, want 1 (the rejected move must not count)", state.MoveCount())
	}
	if widths := state.PegWidths(tower.Left); len(widths) != 2 || widths[1] != 2 {
		t.Errorf("Left peg = %v, want [3 2]", widths)
	}
}

func TestControllerSamePegCancels(t *testing.T) {
	c, state := newTestController(t, 3)

	c.SelectPeg(tower.Left)
	c.SelectPeg(tower.Left)

	if c.Mode() != ModeSelectSource {
		t.Errorf("Mode = %v, want ModeSelectSource after cancel", c.Mode())
	}
	if state.MoveCount() != 0 {
		t.Errorf("Same-peg pick caused a move: MoveCount = %d", state.MoveCount())
	}
}

func TestControllerCancelSelection(t *testing.T) {
	c, _ := newTestController(t, 3)

	c.SelectPeg(tower.Left)
	c.CancelSelection()

	if c.Mode() != ModeSelectSource {
		t.Errorf("Mode after cancel = %v, want ModeSelectSource", c.Mode())
	}
	if _, ok := c.Selection(); ok {
		t.Error("Selection should be cleared after cancel")
	}
}

// playOptimal drives the controller through the 7-move solution for 3 disks.
func playOptimal(c *Controller) {
	moves := [][2]tower.Position{
		{tower.Left, tower.Right},
		{tower.Left, tower.Center},
		{tower.Right, tower.Center},
		{tower.Left, tower.Right},
		{tower.Center, tower.Left},
		{tower.Center, tower.Right},
		{tower.Left, tower.Right},
	}
	for _, m := range moves {
		c.SelectPeg(m[0])
		c.SelectPeg(m[1])
	}
}

func TestControllerSolvedAndReplay(t *testing.T) {
	c, state := newTestController(t, 3)

	playOptimal(c)

	if c.Mode() != ModeSolved {
		t.Fatalf("Mode after winning = %v, want ModeSolved", c.Mode())
	}
	if !strings.Contains(c.Status(), "minimum") {
		t.Errorf("Status = %q, want the minimum-moves summary", c.Status())
	}
	if !state.IsSolved(Target) {
		t.Error("State should report solved on the target peg")
	}

	// Peg picks are ignored once solved.
	c.SelectPeg(tower.Left)
	if state.MoveCount() != 7 {
		t.Errorf("Peg pick after solve moved a disk: MoveCount = %d", state.MoveCount())
	}

	c.Replay()
	if c.Mode() != ModeSelectSource {
		t.Errorf("Mode after replay = %v, want ModeSelectSource", c.Mode())
	}
	if state.MoveCount() != 0 {
		t.Errorf("MoveCount after replay = %d, want 0", state.MoveCount())
	}
	if widths := state.PegWidths(tower.Left); len(widths) != 3 {
		t.Errorf("Left peg after replay = %v, want all 3 disks", widths)
	}
}

func TestControllerReplayOnlyWhenSolved(t *testing.T) {
	c, state := newTestController(t, 3)

	c.SelectPeg(tower.Left)
	c.SelectPeg(tower.Right)
	c.Replay()

	if state.MoveCount() != 1 {
		t.Errorf("Replay mid-game reset the state: MoveCount = %d, want 1", state.MoveCount())
	}
}

func TestControllerFinishAuto(t *testing.T) {
	c, state := newTestController(t, 1)

	if _, err := state.Move(tower.Left, Target); err != nil {
		t.Fatalf("setup move failed: %v", err)
	}
	c.FinishAuto(nil)
	if c.Mode() != ModeSolved {
		t.Errorf("Mode after clean auto-solve = %v, want ModeSolved", c.Mode())
	}

	c2, _ := newTestController(t, 3)
	c2.FinishAuto(errors.New("context canceled"))
	if c2.Mode() != ModeSelectSource {
		t.Errorf("Mode after interrupted auto-solve = %v, want ModeSelectSource", c2.Mode())
	}
	if !strings.Contains(c2.Status(), "stopped") {
		t.Errorf("Status = %q, want a stopped message", c2.Status())
	}
}
