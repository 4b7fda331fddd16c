package core

import (
	"strings"
	"testing"
)

func TestNewFrame(t *testing.T) {
	f := NewFrame(128, 64)

	if f.Width() != 128 || f.Height() != 64 {
		t.Errorf("size = %dx%d, expected 128x64", f.Width(), f.Height())
	}
	if f.Lit() != 0 {
		t.Errorf("new frame should be blank, %d pixels lit", f.Lit())
	}
}

func TestFrameSetGet(t *testing.T) {
	f := NewFrame(10, 10)

	f.Set(5, 5, ColorWhite)
	if !f.Get(5, 5) {
		t.Error("Get(5, 5) should be lit after Set")
	}
	if f.Get(4, 5) || f.Get(6, 5) {
		t.Error("Set should only touch a single pixel")
	}

	f.Set(5, 5, ColorBlack)
	if f.Get(5, 5) {
		t.Error("Get(5, 5) should be off after clearing")
	}

	// Out of bounds should be silent
	f.Set(-1, 0, ColorWhite)
	f.Set(100, 0, ColorWhite)
	f.Set(0, -1, ColorWhite)
	f.Set(0, 100, ColorWhite)

	if f.Get(-1, 0) || f.Get(100, 0) {
		t.Error("Out of bounds Get should return false")
	}
	if f.Lit() != 0 {
		t.Errorf("out-of-bounds writes leaked into the frame: %d lit", f.Lit())
	}
}

func TestFrameNonByteAlignedWidth(t *testing.T) {
	f := NewFrame(13, 3)
	f.Set(12, 2, ColorWhite)
	f.Set(8, 0, ColorWhite)

	if !f.Get(12, 2) || !f.Get(8, 0) {
		t.Error("pixels past the first byte of a row should round-trip")
	}
	if f.Lit() != 2 {
		t.Errorf("Lit() = %d, expected 2", f.Lit())
	}
}

func TestFrameClearFillInvert(t *testing.T) {
	f := NewFrame(8, 4)

	f.Fill(ColorWhite)
	if f.Lit() != 32 {
		t.Errorf("after Fill, Lit() = %d, expected 32", f.Lit())
	}

	f.Clear()
	if f.Lit() != 0 {
		t.Errorf("after Clear, Lit() = %d, expected 0", f.Lit())
	}

	f.Set(1, 1, ColorWhite)
	f.Invert()
	if f.Get(1, 1) || !f.Get(0, 0) {
		t.Error("Invert should flip every pixel")
	}
	if f.Lit() != 31 {
		t.Errorf("after Invert, Lit() = %d, expected 31", f.Lit())
	}
}

func TestFrameBlit(t *testing.T) {
	f := NewFrame(8, 8)
	f.Set(0, 0, ColorWhite)

	b := BitmapFromRows([]string{
		"#.#",
		".#.",
	})
	f.Blit(4, 4, b)

	if !f.Get(4, 4) || f.Get(5, 4) || !f.Get(6, 4) || !f.Get(5, 5) {
		t.Errorf("Blit placed pixels incorrectly:\n%s", f)
	}
	if !f.Get(0, 0) {
		t.Error("Blit must not clear pixels outside lit bitmap pixels")
	}
}

func TestFrameCloneAndCopy(t *testing.T) {
	f := NewFrame(4, 4)
	f.Set(1, 2, ColorWhite)

	c := f.Clone()
	f.Set(1, 2, ColorBlack)
	if !c.Get(1, 2) {
		t.Error("Clone should not share storage")
	}

	f.CopyFrom(c)
	if !f.Get(1, 2) {
		t.Error("CopyFrom should restore pixels")
	}

	other := NewFrame(5, 5)
	other.CopyFrom(c)
	if other.Lit() != 0 {
		t.Error("CopyFrom with mismatched size should be a no-op")
	}
}

func TestFrameString(t *testing.T) {
	f := NewFrame(3, 2)
	f.Set(0, 0, ColorWhite)
	f.Set(2, 1, ColorWhite)

	expected := "#..\n..#"
	if got := f.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
	if strings.Count(f.String(), "\n") != 1 {
		t.Error("String() should join rows with newlines")
	}
}

func TestBitmapFromRows(t *testing.T) {
	b := BitmapFromRows([]string{
		"##",
		"#",
		"         #",
	})

	if b.W != 10 || b.H != 3 {
		t.Fatalf("size = %dx%d, expected 10x3", b.W, b.H)
	}
	if !b.Pixel(0, 0) || !b.Pixel(1, 0) || !b.Pixel(0, 1) || b.Pixel(1, 1) || !b.Pixel(9, 2) {
		t.Error("BitmapFromRows decoded pixels incorrectly")
	}
	if b.Pixel(10, 0) || b.Pixel(-1, 0) {
		t.Error("out-of-range Pixel should be false")
	}
}
