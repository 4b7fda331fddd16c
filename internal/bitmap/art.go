package bitmap

import "github.com/vovakirdan/pixel-snake/internal/core"

// Prompt is printed under every static screen.
const Prompt = "PRESS ANY BUTTON TO START"

// snakeArt decorates the title screen.
var snakeArt = []string{
	"..####..........................",
	".#....#.........................",
	".#..............######..........",
	"..####.........#......#.........",
	"......#.......#........#.....##.",
	".#....#......#..........#...#..#",
	"..##########.............###..##",
}

// Intro returns the full-screen title image sized w×h.
func Intro(w, h int) core.Bitmap {
	b := frame(w, h)
	title := Text("SNAKE", 4)
	b.Draw((w-title.W)/2, 6, title)

	art := core.BitmapFromRows(snakeArt)
	b.Draw((w-art.W)/2, 6+title.H+6, art)
	return b
}

// GameOver returns the full-screen game-over image sized w×h.
func GameOver(w, h int) core.Bitmap {
	b := frame(w, h)
	title := Text("GAME OVER", 2)
	b.Draw((w-title.W)/2, 6, title)
	return b
}

// Win returns the full-screen victory image sized w×h.
func Win(w, h int) core.Bitmap {
	b := frame(w, h)
	title := Text("YOU WIN!", 3)
	b.Draw((w-title.W)/2, 8, title)

	art := core.BitmapFromRows(snakeArt)
	b.Draw((w-art.W)/2, 8+title.H+8, art)
	return b
}

// frame returns a blank bitmap with a one-pixel border.
func frame(w, h int) core.Bitmap {
	b := core.NewBitmap(w, h)
	for x := 0; x < w; x++ {
		b.SetPixel(x, 0, true)
		b.SetPixel(x, h-1, true)
	}
	for y := 0; y < h; y++ {
		b.SetPixel(0, y, true)
		b.SetPixel(w-1, y, true)
	}
	return b
}
