package snake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/pixel-snake/internal/core"
)

// Snapshot captures the controller state for determinism testing and debugging.
type Snapshot struct {
	Tick     uint64
	Round    int
	Phase    Phase
	Score    int
	Length   int
	Moved    int
	Head     core.Position
	Heading  core.Direction
	Item     core.Position
	Ignored  int // non-steering commands seen during play
	LastHigh int // high score shown on the last result screen
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tick,
		Round:    g.round,
		Phase:    g.phase,
		Score:    g.Score(),
		Length:   g.snake.Length(),
		Moved:    g.snake.Moved(),
		Head:     g.snake.Head(),
		Heading:  g.snake.Heading(),
		Item:     g.item.Pos,
		Ignored:  g.ignore,
		LastHigh: g.last.HighScore,
	}
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	s := g.Snapshot()
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Round: %d, Phase: %s\n", s.Tick, s.Round, s.Phase)
	fmt.Fprintf(&b, "Length: %d, Moved: %d, Score: %d\n", s.Length, s.Moved, s.Score)
	fmt.Fprintf(&b, "Head: %v, Heading: %s, Item: %v\n", s.Head, s.Heading, s.Item)
	return b.String()
}
