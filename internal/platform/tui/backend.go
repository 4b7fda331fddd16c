// Package tui hosts the snake device in a Bubble Tea program. The panel is
// drawn with braille characters and the keyboard stands in for the buttons.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/pixel-snake/internal/core"
	"github.com/vovakirdan/pixel-snake/internal/device"
	"github.com/vovakirdan/pixel-snake/internal/registry"
)

func init() {
	registry.Register("tui", "Bubble Tea terminal UI", New)
}

// Backend runs the game loop in a goroutine next to the Bubble Tea program.
type Backend struct {
	panel  *device.Panel
	queue  *device.Queue
	logger *log.Logger

	mu      sync.Mutex
	program *tea.Program
}

var _ registry.Backend = (*Backend)(nil)

// New creates the backend. Stdout must be a terminal.
func New(opts registry.Options) (registry.Backend, error) {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return nil, errors.New("tui: stdout is not a terminal")
	}

	needW, needH := panelFootprint(opts.Width, opts.Height)
	if w, h, err := term.GetSize(fd); err == nil && (w < needW || h < needH+2) {
		opts.Logger.Warn("terminal smaller than the panel", "have", fmt.Sprintf("%dx%d", w, h),
			"need", fmt.Sprintf("%dx%d", needW, needH+2))
	}

	b := &Backend{
		queue:  device.NewQueue(device.DefaultQueueSize),
		logger: opts.Logger,
	}
	b.panel = device.NewPanel(opts.Width, opts.Height, device.WithFlush(b.deliver))
	return b, nil
}

// Display implements registry.Backend.
func (b *Backend) Display() device.Display {
	return b.panel
}

// Input implements registry.Backend.
func (b *Backend) Input() device.Input {
	return b.queue
}

// deliver forwards a flushed frame to the running program.
func (b *Backend) deliver(f *core.Frame, inverted bool) {
	b.mu.Lock()
	p := b.program
	b.mu.Unlock()

	if p != nil {
		p.Send(FrameMsg{Frame: f, Inverted: inverted})
	}
}

// Run implements registry.Backend.
func (b *Backend) Run(ctx context.Context, game func(ctx context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	w, h := b.panel.Size()
	p := tea.NewProgram(
		NewModel(b.queue, w, h, cancel),
		tea.WithAltScreen(),
	)

	b.mu.Lock()
	b.program = p
	b.mu.Unlock()

	done := make(chan error, 1)
	go func() {
		err := game(ctx)
		done <- err
		p.Send(GameDoneMsg{Err: err})
	}()

	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	_, runErr := p.Run()
	cancel()
	gameErr := <-done

	b.mu.Lock()
	b.program = nil
	b.mu.Unlock()

	if runErr != nil {
		return fmt.Errorf("tui: %w", runErr)
	}
	if gameErr != nil && !errors.Is(gameErr, context.Canceled) {
		return gameErr
	}
	return nil
}
