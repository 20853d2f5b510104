// Package solver computes the optimal move sequence for the puzzle.
package solver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/hanoiband/internal/telemetry"
	"github.com/samdwyer/hanoiband/internal/tower"
)

// ErrInconsistent is returned when a generated move is rejected by the
// puzzle state. The move sequence is provably legal from a fresh start,
// so a rejection means the solver or the state it was handed is broken.
// Not recoverable; the solve aborts on the spot.
var ErrInconsistent = errors.New("solver produced an illegal move")

// Solver executes the minimal move sequence against a puzzle state.
type Solver struct {
	state *tower.State

	// OnMove, if set, is called after every applied move. Drivers use
	// it to render progress and pace the solve.
	OnMove func(tower.MoveEvent)
}

// New creates a solver bound to the given state.
func New(state *tower.State) *Solver {
	return &Solver{state: state}
}

// MinimumMoves returns the optimal move total for n disks, 2^n - 1.
func MinimumMoves(n int) int {
	return (1 << n) - 1
}

// Solve transfers n disks from src to dst using aux as the spare peg,
// applying each move to the state as it is generated. It returns the
// applied moves in order. The context is checked before every move, so
// a large solve can be cancelled promptly.
func (s *Solver) Solve(ctx context.Context, n int, src, aux, dst tower.Position) ([]tower.MoveEvent, error) {
	tracer := telemetry.Tracer("solver")
	ctx, span := tracer.Start(ctx, "solver.solve")
	defer span.End()

	startTime := time.Now()

	moves := make([]tower.MoveEvent, 0, MinimumMoves(n))
	err := s.solve(ctx, n, src, aux, dst, &moves)

	span.SetAttributes(
		attribute.Int("solver.disks", n),
		attribute.Int("solver.moves", len(moves)),
		attribute.Int64("solver.duration_ms", time.Since(startTime).Milliseconds()),
	)

	return moves, err
}

// solve is the classic recursion: park n-1 disks on the spare peg,
// move the widest disk, then restack the n-1 disks on top of it.
func (s *Solver) solve(ctx context.Context, n int, src, aux, dst tower.Position, moves *[]tower.MoveEvent) error {
	if n == 1 {
		return s.apply(ctx, src, dst, moves)
	}
	if err := s.solve(ctx, n-1, src, dst, aux, moves); err != nil {
		return err
	}
	if err := s.apply(ctx, src, dst, moves); err != nil {
		return err
	}
	return s.solve(ctx, n-1, aux, src, dst, moves)
}

// apply performs one move after checking for cancellation.
func (s *Solver) apply(ctx context.Context, src, dst tower.Position, moves *[]tower.MoveEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	ev, err := s.state.Move(src, dst)
	if err != nil {
		return fmt.Errorf("%w: %s to %s after %d moves: %v", ErrInconsistent, src, dst, s.state.MoveCount(), err)
	}

	*moves = append(*moves, ev)
	if s.OnMove != nil {
		s.OnMove(ev)
	}
	return nil
}
