package snake

import "github.com/vovakirdan/pixel-snake/internal/core"

// Params fixes the canonical start state and capacity of a Snake.
type Params struct {
	Start        core.Position
	StartHeading core.Direction
	StartLength  int
	MaxLength    int
}

// Snake is the player. Its body is not stored as cells: only the head, the
// heading and a packed history of moves are kept, and the body is traced
// from the history whenever it is drawn.
type Snake struct {
	params  Params
	head    core.Position
	heading core.Direction
	length  int
	moved   int // steps taken, capped at length; the body is drawn once it catches up
	tail    *Tail
}

// NewSnake allocates a snake and its history once; Reset reuses them.
func NewSnake(p Params) *Snake {
	s := &Snake{
		params: p,
		tail:   NewTail(p.MaxLength),
	}
	s.Reset()
	return s
}

// Reset returns the snake to its canonical start state.
func (s *Snake) Reset() {
	s.head = s.params.Start
	s.heading = s.params.StartHeading
	s.length = s.params.StartLength
	s.moved = 0
	s.tail.Reset()
}

// TurnLeft rotates the heading counter-clockwise.
func (s *Snake) TurnLeft() {
	s.heading = s.heading.Left()
}

// TurnRight rotates the heading clockwise.
func (s *Snake) TurnRight() {
	s.heading = s.heading.Right()
}

// TurnUp sets the heading to up regardless of the current heading. Coming
// from down this reverses the snake into its own body, which the collision
// check then reports.
func (s *Snake) TurnUp() {
	s.heading = core.DirUp
}

// TurnDown sets the heading to down regardless of the current heading.
func (s *Snake) TurnDown() {
	s.heading = core.DirDown
}

// Apply steers according to c. It reports false, changing nothing, for
// commands outside the steering alphabet.
func (s *Snake) Apply(c core.Command) bool {
	if !c.IsSteering() {
		return false
	}
	switch c {
	case core.CommandLeft:
		s.TurnLeft()
	case core.CommandRight:
		s.TurnRight()
	case core.CommandUp:
		s.TurnUp()
	case core.CommandDown:
		s.TurnDown()
	}
	return true
}

// Step records the move in the history, then moves the head one cell.
func (s *Snake) Step() {
	s.tail.Advance(s.heading)
	s.head = s.head.Step(s.heading)
	if s.moved < s.length {
		s.moved++
	}
}

// Grow lengthens the snake by one segment. At MaxLength it does nothing
// and reports false.
func (s *Snake) Grow() bool {
	if s.length >= s.params.MaxLength {
		return false
	}
	s.length++
	return true
}

// Full reports whether the snake has reached its capacity.
func (s *Snake) Full() bool {
	return s.length >= s.params.MaxLength
}

// Render draws the snake incrementally on top of the previous frame.
//
// The head is always drawn. Until the snake has moved as many steps as it is
// long, the cells it left behind are still lit from earlier frames, so nothing
// else is touched. Afterwards the body is redrawn from the history and the
// last traced cell, the one the tail just vacated, is cleared.
func (s *Snake) Render(g *Grid) {
	g.DrawCell(s.head, core.ColorWhite)
	if s.moved < s.length {
		return
	}
	last := s.length - 1
	s.tail.Walk(s.head, s.length, func(i int, p core.Position) {
		if i == last {
			g.DrawCell(p, core.ColorBlack)
			return
		}
		g.DrawCell(p, core.ColorWhite)
	})
}

// Head returns the head cell.
func (s *Snake) Head() core.Position {
	return s.head
}

// Heading returns the direction of the next step.
func (s *Snake) Heading() core.Direction {
	return s.heading
}

// Length returns the logical length.
func (s *Snake) Length() int {
	return s.length
}

// Moved returns the capped step counter.
func (s *Snake) Moved() int {
	return s.moved
}

// Params returns the construction parameters.
func (s *Snake) Params() Params {
	return s.params
}

// Trail appends the positions the head occupied over the last
// min(moved, length) steps to dst, most recent first.
func (s *Snake) Trail(dst []core.Position) []core.Position {
	return s.tail.Reconstruct(s.head, min(s.moved, s.length), dst)
}
