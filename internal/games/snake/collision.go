package snake

import (
	"github.com/vovakirdan/pixel-snake/internal/core"
	"github.com/vovakirdan/pixel-snake/internal/device"
)

// Grid maps playfield cells onto display pixels, each cell a cellSize×cellSize
// block. It is also the collision oracle: the display buffer is the only
// record of which cells hold a wall or a body segment.
type Grid struct {
	disp     device.Display
	cellSize int
}

// NewGrid binds a grid to a display.
func NewGrid(disp device.Display, cellSize int) *Grid {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &Grid{disp: disp, cellSize: cellSize}
}

// DrawCell fills the pixel block of cell p.
func (g *Grid) DrawCell(p core.Position, c core.Color) {
	x0, y0 := p.X*g.cellSize, p.Y*g.cellSize
	for dy := range g.cellSize {
		for dx := range g.cellSize {
			g.disp.SetPixel(x0+dx, y0+dy, c)
		}
	}
}

// Occupied reports whether cell p is drawn. Only the block's top-left pixel
// is sampled; cells are always drawn whole.
//
// The answer reflects whatever is in the buffer right now, so it must be
// asked after the previous frame was drawn and before the new head is.
// Food is never asked about here: the controller matches it by position first.
func (g *Grid) Occupied(p core.Position) bool {
	return g.disp.GetPixel(p.X*g.cellSize, p.Y*g.cellSize)
}

// DrawWalls draws the one-cell border ring of bounds.
func (g *Grid) DrawWalls(bounds core.Rect) {
	for x := bounds.X; x < bounds.Right(); x++ {
		g.DrawCell(core.P(x, bounds.Y), core.ColorWhite)
		g.DrawCell(core.P(x, bounds.Bottom()-1), core.ColorWhite)
	}
	for y := bounds.Y; y < bounds.Bottom(); y++ {
		g.DrawCell(core.P(bounds.X, y), core.ColorWhite)
		g.DrawCell(core.P(bounds.Right()-1, y), core.ColorWhite)
	}
}
