// Package tcellterm hosts the snake device directly on a tcell screen,
// without a view model: every flush is painted and shown immediately.
package tcellterm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/pixel-snake/internal/core"
	"github.com/vovakirdan/pixel-snake/internal/device"
	"github.com/vovakirdan/pixel-snake/internal/platform/braille"
	"github.com/vovakirdan/pixel-snake/internal/registry"
)

func init() {
	registry.Register("tcell", "tcell terminal screen", New)
}

var (
	styleLit    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	styleBorder = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// Backend paints frames on a tcell.Screen and polls its key events.
type Backend struct {
	screen tcell.Screen
	panel  *device.Panel
	queue  *device.Queue
	logger *log.Logger

	mu      sync.Mutex // guards screen drawing
	dropped int
}

var _ registry.Backend = (*Backend)(nil)

// New creates the backend on the process terminal.
func New(opts registry.Options) (registry.Backend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("tcell: cannot create screen: %w", err)
	}
	return NewWithScreen(screen, opts), nil
}

// NewWithScreen creates the backend on an existing screen, which Run
// initializes and finalizes.
func NewWithScreen(screen tcell.Screen, opts registry.Options) *Backend {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	b := &Backend{
		screen: screen,
		queue:  device.NewQueue(device.DefaultQueueSize),
		logger: opts.Logger,
	}
	b.panel = device.NewPanel(opts.Width, opts.Height, device.WithFlush(b.paint))
	return b
}

// Display implements registry.Backend.
func (b *Backend) Display() device.Display {
	return b.panel
}

// Input implements registry.Backend.
func (b *Backend) Input() device.Input {
	return b.queue
}

// Run implements registry.Backend.
func (b *Backend) Run(ctx context.Context, game func(ctx context.Context) error) error {
	if err := b.screen.Init(); err != nil {
		return fmt.Errorf("tcell: cannot init screen: %w", err)
	}
	defer b.screen.Fini()

	b.screen.SetStyle(tcell.StyleDefault)
	b.screen.HideCursor()
	b.screen.Clear()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- game(ctx)
		cancel()
	}()

	// Wake PollEvent so the event loop sees the cancellation.
	go func() {
		<-ctx.Done()
		b.screen.PostEvent(tcell.NewEventInterrupt(nil))
	}()

	for ctx.Err() == nil {
		switch ev := b.screen.PollEvent().(type) {
		case nil:
			cancel()
		case *tcell.EventResize:
			b.mu.Lock()
			b.screen.Sync()
			b.mu.Unlock()
			b.paint(b.panel.Snapshot(), b.panel.Inverted())
		case *tcell.EventKey:
			cmd, quit := MapKey(ev)
			if quit {
				cancel()
				continue
			}
			if !b.queue.Push(cmd) {
				b.dropped++
			}
		}
	}

	err := <-done
	if b.dropped > 0 {
		b.logger.Debug("key presses dropped", "count", b.dropped)
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// MapKey translates a key event to a device command. Keys outside the
// steering set become CommandAny. Returns whether it's a quit request.
func MapKey(ev *tcell.EventKey) (cmd core.Command, isQuit bool) {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return core.CommandNone, true
	case tcell.KeyLeft:
		return core.CommandLeft, false
	case tcell.KeyRight:
		return core.CommandRight, false
	case tcell.KeyUp:
		return core.CommandUp, false
	case tcell.KeyDown:
		return core.CommandDown, false
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return core.CommandNone, true
		case 'a', 'A':
			return core.CommandLeft, false
		case 'd', 'D':
			return core.CommandRight, false
		case 'w', 'W':
			return core.CommandUp, false
		case 's', 'S':
			return core.CommandDown, false
		}
	}
	return core.CommandAny, false
}

// paint draws a frame centered on the screen with a single-line border.
func (b *Backend) paint(f *core.Frame, inverted bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	cols, rows := braille.Size(f.Width(), f.Height())
	sw, sh := b.screen.Size()
	x0 := max((sw-cols-2)/2, 0)
	y0 := max((sh-rows-2)/2, 0)

	drawBox(b.screen, x0, y0, cols+1, rows+1)
	for cy := range rows {
		for cx := range cols {
			b.screen.SetContent(x0+1+cx, y0+1+cy, braille.Cell(f, cx, cy, inverted), nil, styleLit)
		}
	}
	b.screen.Show()
}

func drawBox(s tcell.Screen, x0, y0, x1, y1 int) {
	for x := x0 + 1; x < x0+x1; x++ {
		s.SetContent(x, y0, tcell.RuneHLine, nil, styleBorder)
		s.SetContent(x, y0+y1, tcell.RuneHLine, nil, styleBorder)
	}
	for y := y0 + 1; y < y0+y1; y++ {
		s.SetContent(x0, y, tcell.RuneVLine, nil, styleBorder)
		s.SetContent(x0+x1, y, tcell.RuneVLine, nil, styleBorder)
	}
	s.SetContent(x0, y0, tcell.RuneULCorner, nil, styleBorder)
	s.SetContent(x0+x1, y0, tcell.RuneURCorner, nil, styleBorder)
	s.SetContent(x0, y0+y1, tcell.RuneLLCorner, nil, styleBorder)
	s.SetContent(x0+x1, y0+y1, tcell.RuneLRCorner, nil, styleBorder)
}
