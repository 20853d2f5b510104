package tower

import (
	"errors"
	"testing"
)

func TestPositionString(t *testing.T) {
	tests := []struct {
		pos      Position
		expected string
	}{
		{Left, "left"},
		{Center, "center"},
		{Right, "right"},
		{Position(99), "unknown"},
	}

	for _, tt := range tests {
		got := tt.pos.String()
		if got != tt.expected {
			t.Errorf("Position(%d).String() = %q, want %q", tt.pos, got, tt.expected)
		}
	}
}

func TestParsePosition(t *testing.T) {
	tests := []struct {
		input rune
		pos   Position
		ok    bool
	}{
		{'1', Left, true},
		{'2', Center, true},
		{'3', Right, true},
		{'l', Left, true},
		{'C', Center, true},
		{'r', Right, true},
		{'4', 0, false},
		{'x', 0, false},
	}

	for _, tt := range tests {
		pos, ok := ParsePosition(tt.input)
		if ok != tt.ok {
			t.Errorf("ParsePosition(%q) ok = %v, want %v", tt.input, ok, tt.ok)
		}
		if ok && pos != tt.pos {
			t.Errorf("ParsePosition(%q) = %v, want %v", tt.input, pos, tt.pos)
		}
	}
}

func TestPegPushPopPeek(t *testing.T) {
	p := NewPeg(Left)

	if !p.IsEmpty() {
		t.Error("New peg should be empty")
	}
	if p.Count() != 0 {
		t.Errorf("New peg count = %d, want 0", p.Count())
	}

	if err := p.Push(Disk{Width: 3}); err != nil {
		t.Fatalf("Push(3) on empty peg failed: %v", err)
	}
	if err := p.Push(Disk{Width: 2}); err != nil {
		t.Fatalf("Push(2) on disk 3 failed: %v", err)
	}

	top, err := p.Peek()
	if err != nil {
		t.Fatalf("Peek failed: %v", err)
	}
	if top.Width != 2 {
		t.Errorf("Peek = %v, want width 2", top)
	}
	if p.Count() != 2 {
		t.Errorf("Peek changed count to %d, want 2", p.Count())
	}

	popped, err := p.Pop()
	if err != nil {
		t.Fatalf("Pop failed: %v", err)
	}
	if popped.Width != 2 {
		t.Errorf("Pop = %v, want width 2", popped)
	}
	if p.Count() != 1 {
		t.Errorf("Count after pop = %d, want 1", p.Count())
	}
}

func TestPegEmptyErrors(t *testing.T) {
	p := NewPeg(Center)

	if _, err := p.Peek(); !errors.Is(err, ErrEmptyPeg) {
		t.Errorf("Peek on empty peg = %v, want ErrEmptyPeg", err)
	}
	if _, err := p.Pop(); !errors.Is(err, ErrEmptyPeg) {
		t.Errorf("Pop on empty peg = %v, want ErrEmptyPeg", err)
	}
}

func TestPegPushRuleViolation(t *testing.T) {
	p := NewPeg(Right)
	if err := p.Push(Disk{Width: 1}); err != nil {
		t.Fatalf("Push(1) failed: %v", err)
	}

	before := p.Widths()
	err := p.Push(Disk{Width: 2})
	if !errors.Is(err, ErrRuleViolation) {
		t.Errorf("Push(2) onto 1 = %v, want ErrRuleViolation", err)
	}

	// Snapshot comparison: a rejected push must not change the peg.
	after := p.Widths()
	if len(before) != len(after) {
		t.Fatalf("Rejected push changed count: %v -> %v", before, after)
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("Rejected push changed contents: %v -> %v", before, after)
		}
	}
}

func TestPegPushInvalidDisk(t *testing.T) {
	p := NewPeg(Left)

	if err := p.Push(Disk{}); !errors.Is(err, ErrInvalidDisk) {
		t.Errorf("Push(zero disk) = %v, want ErrInvalidDisk", err)
	}
	if err := p.Push(Disk{Width: -4}); !errors.Is(err, ErrInvalidDisk) {
		t.Errorf("Push(negative width) = %v, want ErrInvalidDisk", err)
	}
	if !p.IsEmpty() {
		t.Error("Rejected pushes should leave the peg empty")
	}
}

func TestPegWidthsIsACopy(t *testing.T) {
	p := NewPeg(Left)
	p.Push(Disk{Width: 2})
	p.Push(Disk{Width: 1})

	widths := p.Widths()
	widths[0] = 99

	fresh := p.Widths()
	if fresh[0] != 2 {
		t.Errorf("Mutating the returned slice leaked into the peg: %v", fresh)
	}
}

func TestPegEqualWidthAllowed(t *testing.T) {
	p := NewPeg(Left)
	p.Push(Disk{Width: 2})

	// Equal widths never occur in a real puzzle, but the rule only
	// forbids wider-on-narrower, so equal placement is allowed through.
	if err := p.Push(Disk{Width: 2}); err != nil {
		t.Errorf("Push(equal width) = %v, want nil", err)
	}
}
