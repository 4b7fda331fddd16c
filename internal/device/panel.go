package device

import (
	"sync"

	"github.com/vovakirdan/pixel-snake/internal/core"
)

// FlushFunc receives a snapshot of the panel every time it changes on screen.
// The frame is a private copy and may be retained by the callee.
type FlushFunc func(frame *core.Frame, inverted bool)

// Panel is an in-memory Display backed by a core.Frame. Terminal backends
// wrap it and hand the flushed frames to their renderer.
type Panel struct {
	mu       sync.Mutex
	buf      *core.Frame
	inverted bool
	onFlush  FlushFunc
	beginErr error
	flushes  int
}

// PanelOption configures a Panel.
type PanelOption func(*Panel)

// WithFlush registers the function that receives flushed frames.
func WithFlush(fn FlushFunc) PanelOption {
	return func(p *Panel) {
		p.onFlush = fn
	}
}

// WithBeginError makes Begin fail, simulating a dead display.
func WithBeginError(err error) PanelOption {
	return func(p *Panel) {
		p.beginErr = err
	}
}

// NewPanel creates a blank panel of the given size.
func NewPanel(width, height int, opts ...PanelOption) *Panel {
	p := &Panel{buf: core.NewFrame(width, height)}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Begin implements Display.
func (p *Panel) Begin() error {
	if p.beginErr != nil {
		return p.beginErr
	}
	if p.buf.Width() <= 0 || p.buf.Height() <= 0 {
		return ErrDisplayInit
	}
	return nil
}

// Size implements Display.
func (p *Panel) Size() (int, int) {
	return p.buf.Width(), p.buf.Height()
}

// SetPixel implements Display.
func (p *Panel) SetPixel(x, y int, c core.Color) {
	p.mu.Lock()
	p.buf.Set(x, y, c)
	p.mu.Unlock()
}

// GetPixel implements Display.
func (p *Panel) GetPixel(x, y int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.buf.Get(x, y)
}

// DrawBitmap implements Display.
func (p *Panel) DrawBitmap(x, y int, b core.Bitmap) {
	p.mu.Lock()
	p.buf.Blit(x, y, b)
	p.mu.Unlock()
}

// Clear implements Display.
func (p *Panel) Clear() {
	p.mu.Lock()
	p.buf.Clear()
	p.mu.Unlock()
}

// Flush implements Display.
func (p *Panel) Flush() {
	p.mu.Lock()
	p.flushes++
	snap := p.buf.Clone()
	inv := p.inverted
	fn := p.onFlush
	p.mu.Unlock()

	if fn != nil {
		fn(snap, inv)
	}
}

// Invert implements Display. Inversion is a panel mode, so the current
// buffer is re-shown immediately in the new polarity.
func (p *Panel) Invert(on bool) {
	p.mu.Lock()
	p.inverted = on
	snap := p.buf.Clone()
	fn := p.onFlush
	p.mu.Unlock()

	if fn != nil {
		fn(snap, on)
	}
}

// Inverted reports whether the panel is in inverted mode.
func (p *Panel) Inverted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.inverted
}

// Flushes returns the number of Flush calls so far.
func (p *Panel) Flushes() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.flushes
}

// Snapshot returns a copy of the off-screen buffer.
func (p *Panel) Snapshot() *core.Frame {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.buf.Clone()
}
