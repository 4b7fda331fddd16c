// Package bitmap holds the static artwork of the device: a tiny pixel font
// for status text and the full-screen title, game-over and win images.
package bitmap

import (
	"strings"

	"github.com/vovakirdan/pixel-snake/internal/core"
)

// Glyph metrics of the built-in font, in unscaled pixels.
const (
	GlyphW  = 3
	GlyphH  = 5
	Advance = GlyphW + 1 // glyph width plus one column of spacing
)

// glyphs is a 3x5 font covering upper-case letters, digits and the few
// punctuation marks the screens print. Lower-case input is upper-cased.
var glyphs = map[rune][GlyphH]string{
	'A': {".#.", "#.#", "###", "#.#", "#.#"},
	'B': {"##.", "#.#", "##.", "#.#", "##."},
	'C': {".##", "#..", "#..", "#..", ".##"},
	'D': {"##.", "#.#", "#.#", "#.#", "##."},
	'E': {"###", "#..", "##.", "#..", "###"},
	'F': {"###", "#..", "##.", "#..", "#.."},
	'G': {".##", "#..", "#.#", "#.#", ".##"},
	'H': {"#.#", "#.#", "###", "#.#", "#.#"},
	'I': {"###", ".#.", ".#.", ".#.", "###"},
	'J': {"..#", "..#", "..#", "#.#", ".#."},
	'K': {"#.#", "#.#", "##.", "#.#", "#.#"},
	'L': {"#..", "#..", "#..", "#..", "###"},
	'M': {"#.#", "###", "###", "#.#", "#.#"},
	'N': {"##.", "#.#", "#.#", "#.#", "#.#"},
	'O': {".#.", "#.#", "#.#", "#.#", ".#."},
	'P': {"##.", "#.#", "##.", "#..", "#.."},
	'Q': {".#.", "#.#", "#.#", "##.", ".##"},
	'R': {"##.", "#.#", "##.", "#.#", "#.#"},
	'S': {".##", "#..", ".#.", "..#", "##."},
	'T': {"###", ".#.", ".#.", ".#.", ".#."},
	'U': {"#.#", "#.#", "#.#", "#.#", "###"},
	'V': {"#.#", "#.#", "#.#", "#.#", ".#."},
	'W': {"#.#", "#.#", "###", "###", "#.#"},
	'X': {"#.#", "#.#", ".#.", "#.#", "#.#"},
	'Y': {"#.#", "#.#", ".#.", ".#.", ".#."},
	'Z': {"###", "..#", ".#.", "#..", "###"},
	'0': {"###", "#.#", "#.#", "#.#", "###"},
	'1': {".#.", "##.", ".#.", ".#.", "###"},
	'2': {"##.", "..#", ".#.", "#..", "###"},
	'3': {"##.", "..#", ".#.", "..#", "##."},
	'4': {"#.#", "#.#", "###", "..#", "..#"},
	'5': {"###", "#..", "##.", "..#", "##."},
	'6': {".##", "#..", "###", "#.#", "###"},
	'7': {"###", "..#", ".#.", ".#.", ".#."},
	'8': {"###", "#.#", "###", "#.#", "###"},
	'9': {"###", "#.#", "###", "..#", "##."},
	'!': {".#.", ".#.", ".#.", "...", ".#."},
	':': {"...", ".#.", "...", ".#.", "..."},
	'-': {"...", "...", "###", "...", "..."},
	'.': {"...", "...", "...", "...", ".#."},
	'?': {"##.", "..#", ".#.", "...", ".#."},
	' ': {"...", "...", "...", "...", "..."},
}

// TextWidth returns the pixel width of s rendered at the given scale.
func TextWidth(s string, scale int) int {
	n := len([]rune(s))
	if n == 0 || scale <= 0 {
		return 0
	}
	return (n*Advance - 1) * scale
}

// Text renders s into a bitmap, each font pixel becoming a scale×scale block.
// Characters missing from the font render as blanks.
func Text(s string, scale int) core.Bitmap {
	if scale <= 0 {
		scale = 1
	}
	s = strings.ToUpper(s)
	b := core.NewBitmap(TextWidth(s, scale), GlyphH*scale)

	for i, r := range []rune(s) {
		g, ok := glyphs[r]
		if !ok {
			continue
		}
		ox := i * Advance * scale
		for gy, row := range g {
			for gx := 0; gx < GlyphW; gx++ {
				if row[gx] != '#' {
					continue
				}
				for dy := range scale {
					for dx := range scale {
						b.SetPixel(ox+gx*scale+dx, gy*scale+dy, true)
					}
				}
			}
		}
	}
	return b
}

// Supported reports whether every rune of s has a glyph.
func Supported(s string) bool {
	for _, r := range strings.ToUpper(s) {
		if _, ok := glyphs[r]; !ok {
			return false
		}
	}
	return true
}
