// Package snake implements the snake device's game core: the packed tail
// history, the snake state machine, food placement, pixel-buffer collision
// detection and the round controller that drives them through the device
// capability interfaces.
package snake

import (
	"context"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pixel-snake/internal/config"
	"github.com/vovakirdan/pixel-snake/internal/core"
	"github.com/vovakirdan/pixel-snake/internal/device"
)

// Phase is the round controller's current screen.
type Phase string

const (
	PhaseBoot     Phase = "boot"
	PhaseIntro    Phase = "intro"
	PhasePlaying  Phase = "playing"
	PhaseGameOver Phase = "game_over"
	PhaseOutro    Phase = "outro"
	PhaseHalted   Phase = "halted"
)

// Event is the outcome of one simulation tick.
type Event int

const (
	EventNone Event = iota // the snake moved
	EventAte               // the snake ate the item and grew
	EventDied              // the head hit a wall or the body
	EventWon               // the snake reached its maximum length
)

func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventAte:
		return "ate"
	case EventDied:
		return "died"
	case EventWon:
		return "won"
	default:
		return "unknown"
	}
}

// Devices bundles the collaborators the game drives.
type Devices struct {
	Display device.Display
	Input   device.Input
	Store   device.Store
	Clock   device.Clock
}

// Game is the round controller. It owns the one snake and the one item for
// the life of the process and reuses them across rounds.
type Game struct {
	cfg    config.SnakeConfig
	dev    Devices
	logger *log.Logger
	rng    *rand.Rand

	grid  *Grid
	snake *Snake
	item  Item

	phase  Phase
	tick   uint64
	round  int
	last   Result
	ignore int // commands dropped because they were not steering commands
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for round lifecycle messages.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithSeed seeds the item spawner for reproducible rounds.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// New creates a game over the given devices. cfg must already be validated.
func New(cfg config.SnakeConfig, dev Devices, opts ...Option) *Game {
	if dev.Clock == nil {
		dev.Clock = device.SleepClock{}
	}
	if dev.Store == nil {
		dev.Store = device.NewMemoryStore()
	}
	if dev.Input == nil {
		dev.Input = device.NewQueue(device.DefaultQueueSize)
	}

	g := &Game{
		cfg:    cfg,
		dev:    dev,
		logger: log.New(io.Discard),
		rng:    rand.New(rand.NewSource(1)),
		grid:   NewGrid(dev.Display, cfg.Display.CellSize),
		snake: NewSnake(Params{
			Start:        cfg.Start(),
			StartHeading: cfg.Snake.StartHeading,
			StartLength:  cfg.Snake.StartLength,
			MaxLength:    cfg.Snake.MaxLength,
		}),
		phase: PhaseBoot,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Run drives the device until ctx is cancelled: intro screen, then rounds
// forever. A display that fails to come up halts the game in an idle state
// until ctx ends; nothing can be shown, so nothing is retried.
func (g *Game) Run(ctx context.Context) error {
	if err := g.dev.Display.Begin(); err != nil {
		g.phase = PhaseHalted
		g.logger.Error("display allocation failed, halting", "err", err)
		<-ctx.Done()
		return fmt.Errorf("%w: %w", device.ErrDisplayInit, err)
	}

	g.logger.Debug("device ready",
		"max_length", g.cfg.Snake.MaxLength,
		"tail_bytes", g.cfg.TailBytes(),
		"tick_ms", g.cfg.Timing.TickMs)

	if err := g.Intro(ctx); err != nil {
		return err
	}
	g.ResetRound()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		switch g.Tick() {
		case EventDied:
			if _, err := g.GameOver(ctx); err != nil {
				return err
			}
			g.ResetRound()
		case EventWon:
			if _, err := g.Outro(ctx); err != nil {
				return err
			}
			g.ResetRound()
		}

		g.dev.Clock.Delay(g.cfg.Timing.TickMs)
	}
}

// ResetRound clears the panel, draws the walls and puts the snake and the
// item back to their start state.
func (g *Game) ResetRound() {
	g.dev.Display.Clear()
	g.grid.DrawWalls(g.cfg.Bounds())
	g.snake.Reset()
	g.item.Spawn(g.rng, g.cfg.Interior())
	g.phase = PhasePlaying
	g.round++

	g.logger.Debug("round started", "round", g.round, "item", g.item.Pos)
}

// Tick runs one simulation step: apply at most one pending command, move,
// resolve food and collisions, then draw and flush.
//
// The collision test runs against the buffer as the previous tick left it,
// before the new head is drawn, and only when the head did not land on the
// item. On EventDied nothing is drawn.
func (g *Game) Tick() Event {
	g.tick++

	if g.dev.Input.Available() {
		cmd := g.dev.Input.Read()
		if !g.snake.Apply(cmd) {
			g.ignore++
			g.logger.Debug("ignored command", "cmd", cmd)
		}
	}

	g.snake.Step()
	head := g.snake.Head()

	ev := EventNone
	switch {
	case head == g.item.Pos:
		if !g.snake.Grow() {
			g.logger.Debug("snake at capacity", "length", g.snake.Length())
		}
		g.item.Spawn(g.rng, g.cfg.Interior())
		ev = EventAte
		if g.cfg.Rules.WinAtMaxLength && g.snake.Full() {
			ev = EventWon
		}
	case g.grid.Occupied(head):
		g.phase = PhaseGameOver
		g.logger.Info("snake crashed", "round", g.round, "head", head, "score", g.Score())
		return EventDied
	}

	g.render()
	return ev
}

func (g *Game) render() {
	g.snake.Render(g.grid)
	g.item.Render(g.grid)
	g.dev.Display.Flush()
}

// Score is the number of items eaten this round.
func (g *Game) Score() int {
	return g.snake.Length() - g.cfg.Snake.StartLength
}

// Phase returns the current screen.
func (g *Game) Phase() Phase {
	return g.phase
}

// Snake exposes the player for inspection.
func (g *Game) Snake() *Snake {
	return g.snake
}

// Item returns the current food position.
func (g *Game) Item() core.Position {
	return g.item.Pos
}

// PlaceItem moves the food to p. Intended for scripted scenarios.
func (g *Game) PlaceItem(p core.Position) {
	g.item.Pos = p
}

// LastResult returns the result of the most recent game-over screen.
func (g *Game) LastResult() Result {
	return g.last
}
