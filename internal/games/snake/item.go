package snake

import (
	"math/rand"

	"github.com/vovakirdan/pixel-snake/internal/core"
)

// Item is the single piece of food. It is relocated, never recreated.
type Item struct {
	Pos core.Position
}

// Spawn moves the item to a uniformly random interior cell.
//
// There is no check against the snake: food may land under the body and
// becomes visible again once the body moves off it.
func (it *Item) Spawn(rng *rand.Rand, interior core.Rect) {
	it.Pos = core.P(
		interior.X+rng.Intn(interior.W),
		interior.Y+rng.Intn(interior.H),
	)
}

// Render draws the item.
func (it *Item) Render(g *Grid) {
	g.DrawCell(it.Pos, core.ColorWhite)
}
