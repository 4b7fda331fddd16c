package snake

import (
	"fmt"

	"github.com/vovakirdan/pixel-snake/internal/core"
)

// symbolsPerByte is the number of 2-bit direction symbols packed in one byte.
const symbolsPerByte = 4

// Tail is the snake's body history: a fixed byte array used as a shift
// register of 2-bit direction symbols, most recent first. Symbol i sits in
// byte i/4 at bit offset (i%4)*2. Symbol i is the direction from body cell i
// toward the cell before it was laid, i.e. the opposite of the move that
// created it, so walking the symbols from the head outward traces the body.
//
// Only the first `length` symbols are meaningful; everything past that is
// stale history and is never read.
type Tail struct {
	bits []byte
}

// NewTail allocates history for up to capacity symbols.
func NewTail(capacity int) *Tail {
	return &Tail{bits: make([]byte, (capacity*2+7)/8)}
}

// Cap returns the number of symbols the history can hold.
func (t *Tail) Cap() int {
	return len(t.bits) * symbolsPerByte
}

// Reset zeroes the history.
func (t *Tail) Reset() {
	clear(t.bits)
}

// Push shifts every symbol one slot toward the tail, dropping the symbol
// that falls off the end, and stores sym in slot 0.
func (t *Tail) Push(sym core.Direction) {
	for i := len(t.bits) - 1; i > 0; i-- {
		t.bits[i] = t.bits[i]<<2 | t.bits[i-1]>>6
	}
	if len(t.bits) > 0 {
		t.bits[0] = t.bits[0]<<2 | byte(sym&3)
	}
}

// SymbolAt returns symbol i, 0 being the most recent.
func (t *Tail) SymbolAt(i int) core.Direction {
	return core.Direction(t.bits[i/symbolsPerByte] >> ((i % symbolsPerByte) * 2) & 3)
}

// Advance records a move in direction taken.
func (t *Tail) Advance(taken core.Direction) {
	t.Push(taken.Opposite())
}

// Reconstruct appends to dst the n absolute cells behind head, nearest first,
// and returns the extended slice. Passing a dst with spare capacity keeps the
// walk allocation-free. n beyond Cap is a programming error.
func (t *Tail) Reconstruct(head core.Position, n int, dst []core.Position) []core.Position {
	if n > t.Cap() {
		panic(fmt.Sprintf("snake: reconstruct %d symbols from a %d-symbol tail", n, t.Cap()))
	}
	pos := head
	for i := range n {
		pos = pos.Step(t.SymbolAt(i))
		dst = append(dst, pos)
	}
	return dst
}

// Walk calls fn for each of the n cells behind head, nearest first, without
// building a slice. fn receives the symbol index and the cell.
func (t *Tail) Walk(head core.Position, n int, fn func(i int, p core.Position)) {
	if n > t.Cap() {
		panic(fmt.Sprintf("snake: walk %d symbols from a %d-symbol tail", n, t.Cap()))
	}
	pos := head
	for i := range n {
		pos = pos.Step(t.SymbolAt(i))
		fn(i, pos)
	}
}
