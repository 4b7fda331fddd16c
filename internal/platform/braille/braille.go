// Package braille packs a 1-bit frame into Unicode braille characters,
// 2×4 pixels per terminal cell, so a 128×64 panel fits in 64×16 cells.
package braille

import (
	"strings"

	"github.com/vovakirdan/pixel-snake/internal/core"
)

const (
	CellW = 2
	CellH = 4

	blank = 0x2800
)

// dots[y][x] is the braille dot bit for pixel (x, y) within a cell.
var dots = [CellH][CellW]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Size returns the number of terminal columns and rows needed for a frame.
func Size(width, height int) (cols, rows int) {
	return (width + CellW - 1) / CellW, (height + CellH - 1) / CellH
}

// Cell returns the braille rune for terminal cell (cx, cy). With inverted
// set, lit pixels become dark and the other way round; pixels past the
// frame edge are always dark.
func Cell(f *core.Frame, cx, cy int, inverted bool) rune {
	r := rune(blank)
	x0, y0 := cx*CellW, cy*CellH
	for dy := range CellH {
		y := y0 + dy
		if y >= f.Height() {
			break
		}
		for dx := range CellW {
			x := x0 + dx
			if x >= f.Width() {
				break
			}
			if f.Get(x, y) != inverted {
				r |= dots[dy][dx]
			}
		}
	}
	return r
}

// Lines renders the whole frame, one string per terminal row.
func Lines(f *core.Frame, inverted bool) []string {
	cols, rows := Size(f.Width(), f.Height())
	out := make([]string, rows)

	var b strings.Builder
	for cy := range rows {
		b.Reset()
		b.Grow(cols * 3)
		for cx := range cols {
			b.WriteRune(Cell(f, cx, cy, inverted))
		}
		out[cy] = b.String()
	}
	return out
}

// String renders the frame as newline-joined braille rows.
func String(f *core.Frame, inverted bool) string {
	return strings.Join(Lines(f, inverted), "\n")
}
