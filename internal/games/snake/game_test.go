package snake

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/pixel-snake/internal/config"
	"github.com/vovakirdan/pixel-snake/internal/core"
	"github.com/vovakirdan/pixel-snake/internal/device"
)

// fakeClock records delays instead of sleeping.
type fakeClock struct {
	calls   int
	total   int
	onDelay func(calls int)
}

func (c *fakeClock) Delay(ms int) {
	c.calls++
	c.total += ms
	if c.onDelay != nil {
		c.onDelay(c.calls)
	}
}

var errStore = errors.New("eeprom unavailable")

type failingStore struct{}

func (failingStore) ReadInt(int) (int, error) { return 0, errStore }
func (failingStore) WriteInt(int, int) error  { return errStore }

type testRig struct {
	game  *Game
	panel *device.Panel
	input *device.Queue
	store *device.MemoryStore
	clock *fakeClock
}

func newTestPanel() *device.Panel {
	return device.NewPanel(128, 64)
}

func newTestGame(t *testing.T, mutate func(*config.SnakeConfig)) *testRig {
	t.Helper()

	cfg := config.DefaultSnakeConfig()
	if mutate != nil {
		mutate(&cfg)
	}

	r := &testRig{
		panel: newTestPanel(),
		input: device.NewQueue(device.DefaultQueueSize),
		store: device.NewMemoryStore(),
		clock: &fakeClock{},
	}
	r.game = New(cfg, Devices{
		Display: r.panel,
		Input:   r.input,
		Store:   r.store,
		Clock:   r.clock,
	}, WithSeed(42))
	return r
}

// startRound begins a round with the food parked in a corner, away from
// the snake's path.
func (r *testRig) startRound() {
	r.game.ResetRound()
	r.game.PlaceItem(core.P(2, 2))
}

// parkItem wipes the stale food pixel and moves the food to a corner.
func (r *testRig) parkItem() {
	r.game.grid.DrawCell(r.game.item.Pos, core.ColorBlack)
	r.game.PlaceItem(core.P(2, 2))
}

// feedAhead moves the food to the cell in front of the head, wiping the
// stale food pixel left by the last spawn.
func (r *testRig) feedAhead() {
	g := r.game
	g.grid.DrawCell(g.item.Pos, core.ColorBlack)
	g.PlaceItem(g.snake.Head().Step(g.snake.Heading()))
}

func TestEatThreeItems(t *testing.T) {
	r := newTestGame(t, nil)
	r.startRound()

	for i := 0; i < 3; i++ {
		r.feedAhead()
		if ev := r.game.Tick(); ev != EventAte {
			t.Fatalf("tick %d: event = %v, expected ate", i, ev)
		}
	}

	if got := r.game.Snake().Length(); got != 9 {
		t.Errorf("length = %d, expected 9", got)
	}
	if got := r.game.Score(); got != 3 {
		t.Errorf("score = %d, expected 3", got)
	}
}

func TestWallCrashEndsRound(t *testing.T) {
	r := newTestGame(t, nil)
	r.startRound()

	r.feedAhead()
	if ev := r.game.Tick(); ev != EventAte {
		t.Fatalf("expected to eat, got %v", ev)
	}
	r.parkItem()

	// Head starts at x=32 and the right wall is at x=63.
	var ev Event
	ticks := 1
	for ev != EventDied && ticks < 100 {
		ev = r.game.Tick()
		ticks++
	}
	if ev != EventDied {
		t.Fatal("snake never hit the wall")
	}
	if head := r.game.Snake().Head(); head.X != 63 {
		t.Errorf("died at %v, expected the right wall", head)
	}
	if r.game.Phase() != PhaseGameOver {
		t.Errorf("phase = %s, expected game_over", r.game.Phase())
	}

	r.input.Push(core.CommandAny)
	res, err := r.game.GameOver(context.Background())
	if err != nil {
		t.Fatalf("GameOver: %v", err)
	}
	if res.Score != 1 || res.HighScore != 1 || !res.NewHigh {
		t.Errorf("result = %+v, expected score 1 as a new high", res)
	}
	if hi, _ := r.store.ReadInt(0); hi != 1 {
		t.Errorf("stored high score = %d, expected 1", hi)
	}
	if r.input.Available() {
		t.Error("acknowledgement command was not consumed")
	}

	r.game.ResetRound()
	s := r.game.Snake()
	if s.Length() != 6 || s.Moved() != 0 || s.Head() != core.P(32, 16) || s.Heading() != core.DirRight {
		t.Errorf("new round did not start from the canonical state: %s", r.game.DebugState())
	}
	if r.game.Phase() != PhasePlaying {
		t.Errorf("phase = %s, expected playing", r.game.Phase())
	}
}

func TestSelfCollision(t *testing.T) {
	r := newTestGame(t, nil)
	r.startRound()

	for range 8 {
		if ev := r.game.Tick(); ev != EventNone {
			t.Fatalf("unexpected event %v while moving right", ev)
		}
	}

	// Down, then a clockwise turn from down heads left along the body.
	for _, cmd := range []core.Command{core.CommandDown, core.CommandRight} {
		r.input.Push(cmd)
		if ev := r.game.Tick(); ev != EventNone {
			t.Fatalf("unexpected event %v after %v", ev, cmd)
		}
	}

	r.input.Push(core.CommandUp)
	if ev := r.game.Tick(); ev != EventDied {
		t.Fatalf("turning up into the body gave %v, expected died", ev)
	}
}

func TestReverseIntoNeck(t *testing.T) {
	r := newTestGame(t, nil)
	r.startRound()

	r.input.Push(core.CommandUp)
	r.game.Tick()
	r.game.Tick()
	if r.game.Snake().Heading() != core.DirUp {
		t.Fatalf("heading = %v, expected up", r.game.Snake().Heading())
	}

	r.input.Push(core.CommandDown)
	if ev := r.game.Tick(); ev != EventDied {
		t.Errorf("reversing into the neck gave %v, expected died", ev)
	}
}

func TestFoodIsNotAnObstacle(t *testing.T) {
	r := newTestGame(t, nil)
	r.startRound()
	r.game.PlaceItem(core.P(35, 16))

	// Draw the food, then walk onto its lit cell.
	r.game.Tick()
	if !r.game.grid.Occupied(core.P(35, 16)) {
		t.Fatal("food cell should be lit after a render")
	}
	r.game.Tick()
	if ev := r.game.Tick(); ev != EventAte {
		t.Errorf("event on food cell = %v, expected ate", ev)
	}
}

func TestIgnoredCommandsDoNotSteer(t *testing.T) {
	r := newTestGame(t, nil)
	r.startRound()

	r.input.Push(core.CommandAny)
	r.input.Push('x')
	r.game.Tick()
	r.game.Tick()

	snap := r.game.Snapshot()
	if snap.Ignored != 2 {
		t.Errorf("ignored = %d, expected 2", snap.Ignored)
	}
	if snap.Heading != core.DirRight || snap.Head != core.P(34, 16) {
		t.Errorf("snake steered by non-steering input: %+v", snap)
	}
}

func TestOneCommandPerTick(t *testing.T) {
	r := newTestGame(t, nil)
	r.startRound()

	r.input.Push(core.CommandLeft)
	r.input.Push(core.CommandLeft)
	r.game.Tick()

	if r.game.Snake().Heading() != core.DirUp {
		t.Errorf("heading = %v, expected up after one left turn", r.game.Snake().Heading())
	}
	if !r.input.Available() {
		t.Error("second command should wait for the next tick")
	}
}

func TestGrowthSaturatesAtMaxLength(t *testing.T) {
	r := newTestGame(t, func(c *config.SnakeConfig) {
		c.Snake.MaxLength = 7
		c.Rules.WinAtMaxLength = false
	})
	r.startRound()

	for i := 0; i < 2; i++ {
		r.feedAhead()
		if ev := r.game.Tick(); ev != EventAte {
			t.Fatalf("tick %d: event = %v, expected ate", i, ev)
		}
	}
	if got := r.game.Snake().Length(); got != 7 {
		t.Errorf("length = %d, expected to stay at 7", got)
	}
}

func TestWinAtMaxLength(t *testing.T) {
	r := newTestGame(t, func(c *config.SnakeConfig) {
		c.Snake.MaxLength = 7
	})
	r.startRound()

	r.feedAhead()
	if ev := r.game.Tick(); ev != EventWon {
		t.Fatalf("event = %v, expected won", ev)
	}

	r.input.Push(core.CommandAny)
	res, err := r.game.Outro(context.Background())
	if err != nil {
		t.Fatalf("Outro: %v", err)
	}
	if res.Score != 1 || res.Length != 7 {
		t.Errorf("result = %+v", res)
	}
	if r.game.Phase() != PhaseOutro {
		t.Errorf("phase = %s, expected outro", r.game.Phase())
	}
	if got := r.store.Rounds(); len(got) != 1 || got[0] != 1 {
		t.Errorf("recorded rounds = %v", got)
	}
}

func TestHighScoreOnlyOnStrictImprovement(t *testing.T) {
	tests := []struct {
		name     string
		stored   int
		score    int
		wantHigh int
		wantNew  bool
	}{
		{"lower", 5, 3, 5, false},
		{"equal", 5, 5, 5, false},
		{"higher", 5, 6, 6, true},
		{"first", 0, 2, 2, true},
		{"zero score", 0, 0, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestGame(t, nil)
			_ = r.store.WriteInt(0, tc.stored)
			r.startRound()
			for range tc.score {
				r.game.Snake().Grow()
			}

			r.input.Push(core.CommandAny)
			res, err := r.game.GameOver(context.Background())
			if err != nil {
				t.Fatalf("GameOver: %v", err)
			}
			if res.HighScore != tc.wantHigh || res.NewHigh != tc.wantNew {
				t.Errorf("result = %+v, expected high %d new %v", res, tc.wantHigh, tc.wantNew)
			}
			if hi, _ := r.store.ReadInt(0); hi != tc.wantHigh {
				t.Errorf("stored = %d, expected %d", hi, tc.wantHigh)
			}
		})
	}
}

func TestGameOverSurvivesStoreFailure(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	input := device.NewQueue(4)
	g := New(cfg, Devices{
		Display: newTestPanel(),
		Input:   input,
		Store:   failingStore{},
		Clock:   &fakeClock{},
	})
	g.ResetRound()
	g.Snake().Grow()

	input.Push(core.CommandAny)
	res, err := g.GameOver(context.Background())
	if err != nil {
		t.Fatalf("GameOver: %v", err)
	}
	if res.Score != 1 || res.HighScore != 1 {
		t.Errorf("result = %+v, expected unreadable high score to count as zero", res)
	}
}

func TestGameOverDrawsResultScreen(t *testing.T) {
	r := newTestGame(t, nil)
	r.startRound()
	before := r.panel.Flushes()

	r.input.Push(core.CommandAny)
	if _, err := r.game.GameOver(context.Background()); err != nil {
		t.Fatalf("GameOver: %v", err)
	}

	if r.panel.Flushes() <= before {
		t.Error("game over screen was never flushed")
	}
	if r.panel.Snapshot().Lit() == 0 {
		t.Error("game over screen is blank")
	}
	if r.panel.Inverted() {
		t.Error("panel left inverted after the flash")
	}
}

func TestBufferedPressCarriesIntoNextRound(t *testing.T) {
	r := newTestGame(t, nil)
	r.startRound()

	r.input.Push(core.CommandAny)
	r.input.Push(core.CommandUp)
	if _, err := r.game.GameOver(context.Background()); err != nil {
		t.Fatalf("GameOver() = %v", err)
	}
	if !r.input.Available() {
		t.Fatal("the result screen should consume only one press")
	}

	r.game.ResetRound()
	if got := r.game.Snake().Heading(); got != core.DirRight {
		t.Fatalf("heading after reset = %v, expected right", got)
	}
	r.game.Tick()
	if got := r.game.Snake().Heading(); got != core.DirUp {
		t.Errorf("heading after first tick = %v, expected up from the buffered press", got)
	}
	if r.input.Available() {
		t.Error("the buffered press should have been consumed by the tick")
	}
}

func TestIntroFlashTiming(t *testing.T) {
	r := newTestGame(t, nil)
	r.input.Push(core.CommandAny)

	if err := r.game.Intro(context.Background()); err != nil {
		t.Fatalf("Intro: %v", err)
	}
	if r.clock.total != 300 {
		t.Errorf("intro delayed %dms, expected the 100+200ms flash", r.clock.total)
	}
	if r.game.Phase() != PhaseIntro {
		t.Errorf("phase = %s", r.game.Phase())
	}
}

func TestIntroWaitsUntilCancelled(t *testing.T) {
	r := newTestGame(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	r.clock.onDelay = func(calls int) {
		if calls == 5 {
			cancel()
		}
	}

	err := r.game.Intro(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Intro returned %v, expected context.Canceled", err)
	}
	if r.clock.calls != 5 {
		t.Errorf("polled %d times, expected 5", r.clock.calls)
	}
}

func TestRunPlaysUntilCancelled(t *testing.T) {
	r := newTestGame(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r.input.Push(core.CommandAny)
	r.clock.onDelay = func(calls int) {
		if calls == 60 {
			cancel()
		}
	}

	err := r.game.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run returned %v, expected context.Canceled", err)
	}
	snap := r.game.Snapshot()
	if snap.Round != 1 || snap.Tick == 0 {
		t.Errorf("snapshot after run = %+v", snap)
	}
	if r.panel.Flushes() == 0 {
		t.Error("nothing was flushed")
	}
}

func TestRunHaltsOnDisplayFailure(t *testing.T) {
	dead := errors.New("out of memory")
	g := New(config.DefaultSnakeConfig(), Devices{
		Display: device.NewPanel(128, 64, device.WithBeginError(dead)),
		Clock:   &fakeClock{},
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := g.Run(ctx)
	if !errors.Is(err, device.ErrDisplayInit) || !errors.Is(err, dead) {
		t.Fatalf("Run returned %v, expected a display init error", err)
	}
	if g.Phase() != PhaseHalted {
		t.Errorf("phase = %s, expected halted", g.Phase())
	}
}

func TestItemSpawnsInsideInterior(t *testing.T) {
	interior := config.DefaultSnakeConfig().Interior()
	rng := rand.New(rand.NewSource(7))

	var it Item
	for range 5000 {
		it.Spawn(rng, interior)
		if !interior.Contains(it.Pos) {
			t.Fatalf("item spawned at %v outside %v", it.Pos, interior)
		}
	}
}

func TestGridOracle(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	g := NewGrid(newTestPanel(), cfg.Display.CellSize)
	g.DrawWalls(cfg.Bounds())

	for _, p := range []core.Position{{X: 0, Y: 0}, {X: 63, Y: 10}, {X: 20, Y: 31}, {X: 0, Y: 31}} {
		if !g.Occupied(p) {
			t.Errorf("wall cell %v not occupied", p)
		}
	}
	if g.Occupied(core.P(1, 1)) {
		t.Error("interior corner should be free")
	}

	g.DrawCell(core.P(10, 10), core.ColorWhite)
	if !g.Occupied(core.P(10, 10)) {
		t.Error("drawn cell not occupied")
	}
	g.DrawCell(core.P(10, 10), core.ColorBlack)
	if g.Occupied(core.P(10, 10)) {
		t.Error("cleared cell still occupied")
	}
}

func TestDeterminism(t *testing.T) {
	script := map[int]core.Command{
		3:  core.CommandLeft,
		9:  core.CommandRight,
		14: core.CommandDown,
		30: core.CommandLeft,
		45: core.CommandUp,
		52: core.CommandRight,
	}

	play := func() Snapshot {
		r := newTestGame(t, nil)
		r.game.ResetRound()
		for i := 0; i < 200; i++ {
			if cmd, ok := script[i%60]; ok {
				r.input.Push(cmd)
			}
			if r.game.Tick() == EventDied {
				r.game.ResetRound()
			}
		}
		return r.game.Snapshot()
	}

	a, b := play(), play()
	if a != b {
		t.Errorf("snapshots differ:\n%+v\n%+v", a, b)
	}
}
