package core

// Color is the state of a single pixel on the monochrome panel.
type Color uint8

const (
	ColorBlack Color = iota // pixel off
	ColorWhite              // pixel on
)

// On reports whether the color lights the pixel.
func (c Color) On() bool {
	return c == ColorWhite
}

// ColorOf converts a pixel state into a Color.
func ColorOf(on bool) Color {
	if on {
		return ColorWhite
	}
	return ColorBlack
}
