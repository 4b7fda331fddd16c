// Package headless runs the snake device without a terminal. Button presses
// come from a script and flushed frames can be dumped as text, which makes
// it suitable for smoke runs and reproducing bug reports.
package headless

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pixel-snake/internal/core"
	"github.com/vovakirdan/pixel-snake/internal/device"
	"github.com/vovakirdan/pixel-snake/internal/platform/braille"
	"github.com/vovakirdan/pixel-snake/internal/registry"
)

func init() {
	registry.Register("headless", "Scripted, no terminal", New)
}

// Script is a sequence of input polls. Each character answers one poll:
// '.' means no button is down, anything else (space included) is pressed
// as a command. Letters are upper-cased, so "wasd" steers. The run ends
// when the script is used up.
type Script struct {
	mu     sync.Mutex
	steps  []byte
	pos    int
	onDone func()
	done   bool
}

// NewScript parses a script. Line breaks and tabs are ignored.
func NewScript(s string) *Script {
	steps := make([]byte, 0, len(s))
	for _, r := range strings.ToUpper(s) {
		if r == '\n' || r == '\t' || r == '\r' {
			continue
		}
		if r > 0x7f {
			continue
		}
		steps = append(steps, byte(r))
	}
	return &Script{steps: steps}
}

// Available implements device.Input. Every call consumes one step unless
// it is a press, which Read consumes.
func (s *Script) Available() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pos < len(s.steps) && s.steps[s.pos] == '.' {
		s.pos++
		return false
	}
	if s.pos >= len(s.steps) {
		s.finish()
		return false
	}
	return true
}

// Read implements device.Input.
func (s *Script) Read() core.Command {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pos >= len(s.steps) {
		return core.CommandNone
	}
	c := core.Command(s.steps[s.pos])
	s.pos++
	return c
}

// Remaining returns the number of unused steps.
func (s *Script) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.steps) - s.pos
}

func (s *Script) finish() {
	if s.done {
		return
	}
	s.done = true
	if s.onDone != nil {
		s.onDone()
	}
}

// instantClock advances without sleeping.
type instantClock struct{}

func (instantClock) Delay(int) {}

// Backend is a Panel and a Script with no event loop of its own.
type Backend struct {
	panel  *device.Panel
	script *Script
	dump   io.Writer
	logger *log.Logger
	frames int
}

var (
	_ registry.Backend = (*Backend)(nil)
	_ registry.Clocked = (*Backend)(nil)
)

// New creates the backend.
func New(opts registry.Options) (registry.Backend, error) {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	b := &Backend{
		script: NewScript(opts.Script),
		dump:   opts.Dump,
		logger: opts.Logger,
	}
	b.panel = device.NewPanel(opts.Width, opts.Height, device.WithFlush(b.record))
	return b, nil
}

// Display implements registry.Backend.
func (b *Backend) Display() device.Display {
	return b.panel
}

// Input implements registry.Backend.
func (b *Backend) Input() device.Input {
	return b.script
}

// Clock implements registry.Clocked.
func (b *Backend) Clock() device.Clock {
	return instantClock{}
}

// Frames returns the number of frames shown so far.
func (b *Backend) Frames() int {
	return b.frames
}

func (b *Backend) record(f *core.Frame, inverted bool) {
	b.frames++
	if b.dump == nil {
		return
	}
	state := ""
	if inverted {
		state = " inverted"
	}
	fmt.Fprintf(b.dump, "--- frame %d%s ---\n%s\n", b.frames, state, braille.String(f, inverted))
}

// Run implements registry.Backend. The game is cancelled once the script
// has been used up.
func (b *Backend) Run(ctx context.Context, game func(ctx context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	b.script.mu.Lock()
	b.script.onDone = cancel
	b.script.mu.Unlock()

	err := game(ctx)
	b.logger.Debug("script finished", "frames", b.frames, "unused", b.script.Remaining())

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
