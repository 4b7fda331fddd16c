// Package device defines the capabilities the game core consumes from the
// hardware around it: a monochrome display, a character input source, a
// persistent integer store and a delay primitive. Backends (terminal UIs,
// test fakes) implement these; the core never reaches past them.
package device

import (
	"errors"

	"github.com/vovakirdan/pixel-snake/internal/core"
)

// ErrDisplayInit is returned when the display cannot be brought up.
var ErrDisplayInit = errors.New("device: display allocation failed")

// Display is a fixed-size monochrome pixel surface with an off-screen buffer.
// Drawing calls modify the buffer; Flush pushes it to the panel.
type Display interface {
	// Begin brings the panel up. A failure is fatal to the device.
	Begin() error

	// Size returns the panel dimensions in pixels.
	Size() (width, height int)

	// SetPixel writes one pixel of the buffer.
	SetPixel(x, y int, c core.Color)

	// GetPixel reads one pixel of the buffer.
	GetPixel(x, y int) bool

	// DrawBitmap ORs the lit pixels of b into the buffer at (x, y).
	DrawBitmap(x, y int, b core.Bitmap)

	// Clear turns every buffer pixel off.
	Clear()

	// Flush shows the buffer on the panel.
	Flush()

	// Invert toggles hardware inversion of the panel without touching the buffer.
	Invert(on bool)
}

// Input is a non-blocking character source.
type Input interface {
	// Available reports whether a command is waiting.
	Available() bool

	// Read consumes one command, or returns CommandNone when none is waiting.
	Read() core.Command
}

// Store persists integers across power cycles, addressed by slot.
type Store interface {
	ReadInt(slot int) (int, error)
	WriteInt(slot int, value int) error
}

// Recorder is implemented by stores that also keep a history of finished rounds.
type Recorder interface {
	RecordRound(score, length int) error
}

// Clock provides blocking delays.
type Clock interface {
	Delay(ms int)
}
