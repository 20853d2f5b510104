package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/hanoiband/internal/gamedata"
	"github.com/samdwyer/hanoiband/internal/solver"
	"github.com/samdwyer/hanoiband/internal/telemetry"
	"github.com/samdwyer/hanoiband/internal/tower"
	"github.com/samdwyer/hanoiband/internal/ui"
)

const defaultMoveDelay = 150 * time.Millisecond

// Game owns one puzzle session: the screen, the puzzle state, and the
// driver loop connecting them.
type Game struct {
	screen     *ui.Screen
	renderer   *ui.Renderer
	state      *tower.State
	controller *Controller
	level      gamedata.LevelDef
	cfg        Config
	sessionID  string
	running    bool
}

// New creates a new game instance from the given configuration.
func New(cfg Config) (*Game, error) {
	level, err := resolveLevel(cfg)
	if err != nil {
		return nil, err
	}

	state, err := tower.NewState(level.Disks)
	if err != nil {
		return nil, err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	if cfg.MoveDelay <= 0 {
		cfg.MoveDelay = defaultMoveDelay
	}

	return &Game{
		screen:     screen,
		renderer:   ui.NewRenderer(screen),
		state:      state,
		controller: NewController(state),
		level:      level,
		cfg:        cfg,
		sessionID:  uuid.NewString(),
		running:    true,
	}, nil
}

// resolveLevel picks the difficulty preset for the session. An explicit
// disk count wins over the named level and falls back to a custom
// preset when no level uses that count.
func resolveLevel(cfg Config) (gamedata.LevelDef, error) {
	registry, err := gamedata.LoadLevelRegistry()
	if err != nil {
		return gamedata.LevelDef{}, err
	}

	if cfg.Disks > 0 {
		if level := registry.GetByDisks(cfg.Disks); level != nil {
			return *level, nil
		}
		custom := *registry.Default()
		custom.ID = "custom"
		custom.Name = "Custom"
		custom.Disks = cfg.Disks
		return custom, nil
	}

	if cfg.Level != "" {
		level := registry.GetByID(cfg.Level)
		if level == nil {
			return gamedata.LevelDef{}, fmt.Errorf("unknown level %q", cfg.Level)
		}
		return *level, nil
	}

	return *registry.Default(), nil
}

// Run executes the main session loop.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.session")
	span.SetAttributes(
		attribute.String("session.id", g.sessionID),
		attribute.String("session.level", g.level.ID),
		attribute.Int("session.disks", g.level.Disks),
		attribute.Bool("session.auto", g.cfg.Auto),
	)
	defer span.End()

	if g.cfg.Auto {
		g.runAuto(ctx)
	}

	for g.running {
		g.render()
		g.handleInput(ctx)
	}

	span.SetAttributes(
		attribute.Int("session.moves", g.state.MoveCount()),
		attribute.Bool("session.solved", g.state.IsSolved(Target)),
	)

	g.screen.Close()
	return nil
}

// render draws the current frame.
func (g *Game) render() {
	selected, hasSelected := g.controller.Selection()
	view := ui.View{
		LevelName:   g.level.Name,
		Accent:      g.level.AccentColor(),
		MinMoves:    solver.MinimumMoves(g.state.DiskCount()),
		Status:      g.controller.Status(),
		Help:        g.helpLine(),
		Selected:    selected,
		HasSelected: hasSelected,
	}
	g.renderer.Render(g.state, view)
}

// helpLine returns the key hints for the current mode.
func (g *Game) helpLine() string {
	if g.controller.Mode() == ModeSolved {
		return "r replay   q quit"
	}
	return "1/l left   2/c center   3/r right   esc cancel   a auto-solve   q quit"
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyEscape:
		// Esc clears a pending selection first; a second Esc quits.
		if _, hasSelected := g.controller.Selection(); hasSelected {
			g.controller.CancelSelection()
		} else {
			g.running = false
		}

	case tcell.KeyRune:
		g.handleRune(ctx, ev.Rune())
	}
}

// handleRune dispatches character keys.
func (g *Game) handleRune(ctx context.Context, r rune) {
	switch r {
	case 'q', 'Q':
		g.running = false
	case 'a', 'A':
		if g.controller.Mode() != ModeSolved {
			g.runAuto(ctx)
		}
	case 'r', 'R':
		if g.controller.Mode() == ModeSolved {
			g.controller.Replay()
			return
		}
		// Fall through to peg selection: r doubles as the right peg.
		g.selectRune(r)
	default:
		g.selectRune(r)
	}
}

// selectRune maps a key to a peg and feeds it to the controller.
func (g *Game) selectRune(r rune) {
	pos, ok := tower.ParsePosition(r)
	if !ok {
		return
	}
	g.controller.SelectPeg(pos)
}

// runAuto restarts the puzzle and lets the solver drive it, rendering
// one move per delay tick. Cancelling the context stops it between
// moves.
func (g *Game) runAuto(ctx context.Context) {
	g.state.Reset()
	g.controller.mode = ModeAuto
	g.controller.status = "Auto-solving..."

	sv := solver.New(g.state)
	sv.OnMove = func(ev tower.MoveEvent) {
		g.controller.status = fmt.Sprintf("Auto: %v", ev)
		g.render()
		time.Sleep(g.cfg.MoveDelay)
	}

	_, err := sv.Solve(ctx, g.state.DiskCount(), tower.Left, tower.Center, Target)
	if err != nil && !errors.Is(err, context.Canceled) {
		// A rule violation here means the solver itself is broken.
		g.screen.Close()
		panic(err)
	}
	g.controller.FinishAuto(err)
}
