// Package registry provides a global registry for display backends.
// Backends register themselves in init() functions, allowing the CLI
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pixel-snake/internal/device"
)

// Backend hosts the game on some kind of screen and keyboard.
// The game logic never sees the backend, only its Display and Input.
type Backend interface {
	// Display returns the pixel panel the game draws on.
	Display() device.Display

	// Input returns the command source the game polls.
	Input() device.Input

	// Run starts the backend's event loop and runs game alongside it.
	// It returns when either side stops; the game's context is
	// cancelled when the user quits.
	Run(ctx context.Context, game func(ctx context.Context) error) error
}

// Clocked is implemented by backends that keep their own time, such as
// scripted runs that must not sleep.
type Clocked interface {
	Clock() device.Clock
}

// Options carries what every backend needs to come up.
type Options struct {
	Width  int // panel width in pixels
	Height int // panel height in pixels
	Logger *log.Logger

	// Used by non-interactive backends.
	Script string    // commands to feed, one character per input poll
	Dump   io.Writer // receives every flushed frame as text
}

// BackendInfo contains metadata about a registered backend.
type BackendInfo struct {
	Name  string
	Title string
}

// Factory creates a backend.
type Factory func(opts Options) (Backend, error)

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a backend factory to the registry.
// Panics if a backend with the same name is already registered.
func Register(name, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: backend %q already registered", name))
	}

	factories[name] = f
	titles[name] = title
}

// List returns information about all registered backends, sorted by name.
func List() []BackendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]BackendInfo, 0, len(factories))
	for name := range factories {
		result = append(result, BackendInfo{
			Name:  name,
			Title: titles[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a backend by name.
func Create(name string, opts Options) (Backend, error) {
	mu.RLock()
	f, ok := factories[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown backend %q", name)
	}

	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	b, err := f(opts)
	if err != nil {
		return nil, fmt.Errorf("registry: backend %q: %w", name, err)
	}
	return b, nil
}

// Exists checks if a backend with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
