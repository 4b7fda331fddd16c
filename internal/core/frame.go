package core

import "strings"

// Frame is a fixed-size monochrome pixel buffer, one bit per pixel, stored
// row-major. It stands in for the display controller's RAM: the game draws
// into it and reads it back for collision tests.
type Frame struct {
	width  int
	height int
	stride int // bytes per row
	bits   []byte
}

// NewFrame creates a cleared frame with the given dimensions.
func NewFrame(width, height int) *Frame {
	stride := (width + 7) / 8
	return &Frame{
		width:  width,
		height: height,
		stride: stride,
		bits:   make([]byte, stride*height),
	}
}

// Width returns the frame width in pixels.
func (f *Frame) Width() int {
	return f.width
}

// Height returns the frame height in pixels.
func (f *Frame) Height() int {
	return f.height
}

func (f *Frame) inBounds(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}

// Set writes a pixel. Out-of-bounds coordinates are silently ignored.
func (f *Frame) Set(x, y int, c Color) {
	if !f.inBounds(x, y) {
		return
	}
	i := y*f.stride + x/8
	mask := byte(0x80) >> (x % 8)
	if c.On() {
		f.bits[i] |= mask
	} else {
		f.bits[i] &^= mask
	}
}

// Get reports whether a pixel is lit. Out-of-bounds reads return false.
func (f *Frame) Get(x, y int) bool {
	if !f.inBounds(x, y) {
		return false
	}
	return f.bits[y*f.stride+x/8]&(byte(0x80)>>(x%8)) != 0
}

// Clear turns every pixel off.
func (f *Frame) Clear() {
	clear(f.bits)
}

// Fill sets every pixel to c.
func (f *Frame) Fill(c Color) {
	v := byte(0)
	if c.On() {
		v = 0xFF
	}
	for i := range f.bits {
		f.bits[i] = v
	}
}

// Invert flips every pixel.
func (f *Frame) Invert() {
	for i := range f.bits {
		f.bits[i] = ^f.bits[i]
	}
}

// Blit draws the lit pixels of b with their top-left corner at (x, y).
// Unlit bitmap pixels leave the frame untouched, like drawBitmap on the panel.
func (f *Frame) Blit(x, y int, b Bitmap) {
	for by := 0; by < b.H; by++ {
		for bx := 0; bx < b.W; bx++ {
			if b.Pixel(bx, by) {
				f.Set(x+bx, y+by, ColorWhite)
			}
		}
	}
}

// CopyFrom overwrites f with the contents of src. Both frames must share
// dimensions; otherwise the call is a no-op.
func (f *Frame) CopyFrom(src *Frame) {
	if src.width != f.width || src.height != f.height {
		return
	}
	copy(f.bits, src.bits)
}

// Clone returns an independent copy of the frame.
func (f *Frame) Clone() *Frame {
	c := NewFrame(f.width, f.height)
	copy(c.bits, f.bits)
	return c
}

// Lit returns the number of lit pixels.
func (f *Frame) Lit() int {
	n := 0
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			if f.Get(x, y) {
				n++
			}
		}
	}
	return n
}

// String renders the frame as text, '#' for lit pixels and '.' otherwise.
// Used for debugging dumps and golden comparisons in tests.
func (f *Frame) String() string {
	var sb strings.Builder
	sb.Grow((f.width + 1) * f.height)

	for y := 0; y < f.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < f.width; x++ {
			if f.Get(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
