package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/hanoiband/internal/gamedata"
	"github.com/samdwyer/hanoiband/internal/tower"
)

// View carries everything beyond raw puzzle state that a frame needs:
// the status line, the pending source selection, and level styling.
type View struct {
	LevelName string
	Accent    tcell.Color
	MinMoves  int
	Status    string
	Help      string

	// Source peg picked but not yet paired with a destination.
	Selected    tower.Position
	HasSelected bool
}

// Renderer handles drawing the puzzle to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the pegs, disks, counters, and status text.
func (r *Renderer) Render(state *tower.State, view View) {
	r.screen.Clear()

	width, height := r.screen.Size()
	colWidth := width / 3
	diskCount := state.DiskCount()

	// Rod occupies rows [rodTop, baseY); the base sits on baseY.
	rodTop := 3
	baseY := rodTop + diskCount + 1
	if baseY >= height-3 {
		baseY = height - 4
		rodTop = baseY - diskCount - 1
	}

	r.drawText(1, 1, fmt.Sprintf("HANOIBAND - %s (%d disks)", view.LevelName, diskCount),
		tcell.StyleDefault.Foreground(view.Accent).Bold(true))
	r.drawText(1, 2, fmt.Sprintf("Moves: %d  (minimum %d)", state.MoveCount(), view.MinMoves),
		tcell.StyleDefault.Foreground(tcell.ColorWhite))

	for i, pos := range tower.Positions() {
		centerX := colWidth*i + colWidth/2
		r.drawPeg(state, pos, centerX, rodTop, baseY, view)
	}

	if view.Status != "" {
		r.drawText(1, baseY+3, view.Status, tcell.StyleDefault.Foreground(tcell.ColorYellow))
	}
	if view.Help != "" {
		r.drawText(1, height-1, view.Help, tcell.StyleDefault.Foreground(tcell.ColorGray))
	}

	r.screen.Show()
}

// drawPeg draws one rod, its disks, its base, and its label.
func (r *Renderer) drawPeg(state *tower.State, pos tower.Position, centerX, rodTop, baseY int, view View) {
	diskCount := state.DiskCount()
	widths := state.PegWidths(pos)

	rodStyle := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	for y := rodTop; y < baseY; y++ {
		r.screen.SetContent(centerX, y, '│', rodStyle)
	}

	// Disks from the bottom up; row baseY-1 is the bottom slot.
	for i, w := range widths {
		y := baseY - 1 - i
		if y < rodTop {
			break
		}
		style := tcell.StyleDefault.Foreground(gamedata.DiskColor(w, diskCount))
		for dx := -w; dx <= w; dx++ {
			r.screen.SetContent(centerX+dx, y, '█', style)
		}
	}

	baseHalf := diskCount + 1
	for dx := -baseHalf; dx <= baseHalf; dx++ {
		r.screen.SetContent(centerX+dx, baseY, '─', rodStyle)
	}

	label := fmt.Sprintf("%d:%s", int(pos)+1, pos)
	labelStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	if view.HasSelected && view.Selected == pos {
		labelStyle = tcell.StyleDefault.Foreground(view.Accent).Bold(true).Underline(true)
	}
	r.drawText(centerX-len(label)/2, baseY+1, label, labelStyle)
}

// drawText writes a string starting at the given position.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range text {
		r.screen.SetContent(x+i, y, ch, style)
	}
}
