package core

// Bitmap is a packed monochrome image: rows of ceil(W/8) bytes, most
// significant bit first, the same layout the panel driver's drawBitmap uses.
type Bitmap struct {
	W, H int
	Bits []byte
}

// NewBitmap allocates a blank bitmap.
func NewBitmap(w, h int) Bitmap {
	return Bitmap{W: w, H: h, Bits: make([]byte, ((w+7)/8)*h)}
}

func (b Bitmap) stride() int {
	return (b.W + 7) / 8
}

// Pixel reports whether (x, y) is lit. Out-of-range reads return false.
func (b Bitmap) Pixel(x, y int) bool {
	if x < 0 || x >= b.W || y < 0 || y >= b.H {
		return false
	}
	i := y*b.stride() + x/8
	if i >= len(b.Bits) {
		return false
	}
	return b.Bits[i]&(byte(0x80)>>(x%8)) != 0
}

// SetPixel lights or clears (x, y). Out-of-range writes are ignored.
func (b Bitmap) SetPixel(x, y int, on bool) {
	if x < 0 || x >= b.W || y < 0 || y >= b.H {
		return
	}
	i := y*b.stride() + x/8
	mask := byte(0x80) >> (x % 8)
	if on {
		b.Bits[i] |= mask
	} else {
		b.Bits[i] &^= mask
	}
}

// Draw copies the lit pixels of src into b at (x, y).
func (b Bitmap) Draw(x, y int, src Bitmap) {
	for sy := 0; sy < src.H; sy++ {
		for sx := 0; sx < src.W; sx++ {
			if src.Pixel(sx, sy) {
				b.SetPixel(x+sx, y+sy, true)
			}
		}
	}
}

// BitmapFromRows builds a bitmap from text rows; any character other than
// ' ' or '.' lights the pixel. Rows shorter than the widest are padded.
func BitmapFromRows(rows []string) Bitmap {
	w := 0
	for _, r := range rows {
		w = max(w, len(r))
	}
	b := NewBitmap(w, len(rows))
	for y, r := range rows {
		for x := 0; x < len(r); x++ {
			if r[x] != ' ' && r[x] != '.' {
				b.SetPixel(x, y, true)
			}
		}
	}
	return b
}
