package snake

import (
	"testing"

	"github.com/vovakirdan/pixel-snake/internal/core"
)

func testParams() Params {
	return Params{
		Start:        core.P(32, 16),
		StartHeading: core.DirRight,
		StartLength:  6,
		MaxLength:    10,
	}
}

func TestSnakeReset(t *testing.T) {
	s := NewSnake(testParams())
	s.TurnRight()
	s.Step()
	s.Grow()
	s.Reset()

	if s.Head() != core.P(32, 16) {
		t.Errorf("head after reset = %v", s.Head())
	}
	if s.Heading() != core.DirRight {
		t.Errorf("heading after reset = %v", s.Heading())
	}
	if s.Length() != 6 || s.Moved() != 0 {
		t.Errorf("length/moved after reset = %d/%d, expected 6/0", s.Length(), s.Moved())
	}
	if got := s.Trail(nil); len(got) != 0 {
		t.Errorf("trail after reset = %v, expected empty", got)
	}
}

func TestSnakeTurns(t *testing.T) {
	tests := []struct {
		name  string
		start core.Direction
		cmd   core.Command
		want  core.Direction
	}{
		{"left from right", core.DirRight, core.CommandLeft, core.DirUp},
		{"right from right", core.DirRight, core.CommandRight, core.DirDown},
		{"left from up", core.DirUp, core.CommandLeft, core.DirLeft},
		{"right from left", core.DirLeft, core.CommandRight, core.DirUp},
		{"up from down reverses", core.DirDown, core.CommandUp, core.DirUp},
		{"down from up reverses", core.DirUp, core.CommandDown, core.DirDown},
		{"up from left", core.DirLeft, core.CommandUp, core.DirUp},
		{"down from right", core.DirRight, core.CommandDown, core.DirDown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := testParams()
			p.StartHeading = tc.start
			s := NewSnake(p)

			if !s.Apply(tc.cmd) {
				t.Fatalf("Apply(%v) rejected a steering command", tc.cmd)
			}
			if s.Heading() != tc.want {
				t.Errorf("heading = %v, expected %v", s.Heading(), tc.want)
			}
		})
	}
}

func TestSnakeIgnoresUnknownCommands(t *testing.T) {
	s := NewSnake(testParams())
	for _, c := range []core.Command{core.CommandNone, core.CommandAny, 'x', 'a', 'Q'} {
		if s.Apply(c) {
			t.Errorf("Apply(%q) accepted a non-steering command", byte(c))
		}
	}
	if s.Heading() != core.DirRight {
		t.Errorf("heading changed to %v", s.Heading())
	}
}

func TestSnakeFourTurnsIsIdentity(t *testing.T) {
	for d := core.Direction(0); d < core.NumDirections; d++ {
		p := testParams()
		p.StartHeading = d

		s := NewSnake(p)
		for range 4 {
			s.TurnLeft()
		}
		if s.Heading() != d {
			t.Errorf("four left turns from %v gave %v", d, s.Heading())
		}

		s.Reset()
		for range 4 {
			s.TurnRight()
		}
		if s.Heading() != d {
			t.Errorf("four right turns from %v gave %v", d, s.Heading())
		}
	}
}

func TestSnakeStepMovesOneCell(t *testing.T) {
	s := NewSnake(testParams())
	s.Step()
	if s.Head() != core.P(33, 16) {
		t.Errorf("head after step right = %v", s.Head())
	}

	s.TurnLeft()
	s.Step()
	if s.Head() != core.P(33, 15) {
		t.Errorf("head after step up = %v", s.Head())
	}
}

func TestSnakeMovedIsCappedByLength(t *testing.T) {
	s := NewSnake(testParams())
	prev := 0
	for i := 1; i <= 20; i++ {
		s.Step()
		if s.Moved() < prev {
			t.Fatalf("moved decreased from %d to %d", prev, s.Moved())
		}
		if s.Moved() > s.Length() {
			t.Fatalf("moved %d exceeds length %d", s.Moved(), s.Length())
		}
		if i <= 6 && s.Moved() != i {
			t.Fatalf("step %d: moved = %d", i, s.Moved())
		}
		prev = s.Moved()
	}

	// Growth lets the counter catch up one step at a time.
	s.Grow()
	s.Step()
	if s.Moved() != 7 {
		t.Errorf("moved after growing = %d, expected 7", s.Moved())
	}
}

func TestSnakeGrowSaturates(t *testing.T) {
	s := NewSnake(testParams())
	for i := 0; i < 4; i++ {
		if !s.Grow() {
			t.Fatalf("grow %d refused below max length", i)
		}
	}
	if !s.Full() {
		t.Fatal("snake should be full at max length")
	}
	if s.Grow() {
		t.Error("grow at max length should report false")
	}
	if s.Length() != 10 {
		t.Errorf("length = %d, expected 10", s.Length())
	}
}

func TestSnakeRenderClearsVacatedCell(t *testing.T) {
	p := newTestPanel()
	g := NewGrid(p, 2)
	s := NewSnake(Params{
		Start:        core.P(5, 5),
		StartHeading: core.DirRight,
		StartLength:  3,
		MaxLength:    8,
	})

	g.DrawCell(s.Head(), core.ColorWhite)
	for range 5 {
		s.Step()
		s.Render(g)
	}

	// Head at x=10, body at 9 and 8, 7 vacated on the last step.
	for x, want := range map[int]bool{10: true, 9: true, 8: true, 7: false} {
		if got := g.Occupied(core.P(x, 5)); got != want {
			t.Errorf("cell (%d,5) occupied = %v, expected %v", x, got, want)
		}
	}
}
