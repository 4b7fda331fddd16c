// Package config provides YAML-based configuration for the snake device:
// panel geometry, playfield bounds, snake capacity, timing and storage slots.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/pixel-snake/internal/core"
)

// SnakeConfig contains all configuration for the snake device.
type SnakeConfig struct {
	Display   DisplayConfig   `yaml:"display"`
	Playfield PlayfieldConfig `yaml:"playfield"`
	Snake     SnakeParams     `yaml:"snake"`
	Timing    TimingConfig    `yaml:"timing"`
	Storage   StorageConfig   `yaml:"storage"`
	Rules     RulesConfig     `yaml:"rules"`
}

// DisplayConfig describes the monochrome panel.
type DisplayConfig struct {
	Width    int `yaml:"width"`     // pixels
	Height   int `yaml:"height"`    // pixels
	CellSize int `yaml:"cell_size"` // pixels per playfield cell edge
}

// PlayfieldConfig defines the playfield in cells, walls included.
type PlayfieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeParams defines the canonical start state and capacity of the snake.
type SnakeParams struct {
	StartX       int            `yaml:"start_x"`
	StartY       int            `yaml:"start_y"`
	StartHeading core.Direction `yaml:"start_heading"`
	StartLength  int            `yaml:"start_length"`
	MaxLength    int            `yaml:"max_length"`
}

// TimingConfig holds every delay of the control loop, in milliseconds.
type TimingConfig struct {
	TickMs     int `yaml:"tick_ms"`      // delay after each simulation tick
	FlashOnMs  int `yaml:"flash_on_ms"`  // inverted phase of the transition flash
	FlashOffMs int `yaml:"flash_off_ms"` // settle time after the flash
	PollMs     int `yaml:"poll_ms"`      // input polling interval on static screens
}

// StorageConfig maps persisted values to store slots.
type StorageConfig struct {
	HighScoreSlot int `yaml:"high_score_slot"`
}

// RulesConfig toggles optional round rules.
type RulesConfig struct {
	WinAtMaxLength bool `yaml:"win_at_max_length"` // show the win screen once the snake is full
}

// Bounds returns the playfield rectangle in cells, walls included.
func (c SnakeConfig) Bounds() core.Rect {
	return core.NewRect(0, 0, c.Playfield.Width, c.Playfield.Height)
}

// Interior returns the playable area inside the one-cell wall ring.
func (c SnakeConfig) Interior() core.Rect {
	return c.Bounds().Inset(1)
}

// Start returns the canonical head position.
func (c SnakeConfig) Start() core.Position {
	return core.P(c.Snake.StartX, c.Snake.StartY)
}

// TailBytes returns the size of the packed direction history, two bits
// per segment rounded up to whole bytes.
func (c SnakeConfig) TailBytes() int {
	return (c.Snake.MaxLength*2 + 7) / 8
}

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid snake config")

// Validate checks that the configuration describes a playable device.
// The tail history is sized from MaxLength, so MaxLength must never exceed
// the number of interior cells the snake can physically occupy.
func (c SnakeConfig) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		fail("display size %dx%d must be positive", c.Display.Width, c.Display.Height)
	}
	if c.Display.CellSize <= 0 {
		fail("cell_size %d must be positive", c.Display.CellSize)
	}
	if c.Playfield.Width < 3 || c.Playfield.Height < 3 {
		fail("playfield %dx%d leaves no interior", c.Playfield.Width, c.Playfield.Height)
	}
	if c.Playfield.Width*c.Display.CellSize > c.Display.Width ||
		c.Playfield.Height*c.Display.CellSize > c.Display.Height {
		fail("playfield %dx%d cells of %dpx does not fit a %dx%d display",
			c.Playfield.Width, c.Playfield.Height, c.Display.CellSize, c.Display.Width, c.Display.Height)
	}
	if !c.Snake.StartHeading.Valid() {
		fail("start_heading %d is not a direction", c.Snake.StartHeading)
	}
	if !c.Interior().Contains(c.Start()) {
		fail("start position %v is outside the interior", c.Start())
	}
	if c.Snake.StartLength < 1 {
		fail("start_length %d must be at least 1", c.Snake.StartLength)
	}
	if c.Snake.MaxLength < c.Snake.StartLength {
		fail("max_length %d is below start_length %d", c.Snake.MaxLength, c.Snake.StartLength)
	}
	if area := c.Interior().Area(); c.Snake.MaxLength > area {
		fail("max_length %d exceeds the %d interior cells", c.Snake.MaxLength, area)
	}
	if c.Timing.TickMs < 0 || c.Timing.FlashOnMs < 0 || c.Timing.FlashOffMs < 0 || c.Timing.PollMs < 0 {
		fail("timings must not be negative")
	}
	if c.Storage.HighScoreSlot < 0 {
		fail("high_score_slot %d must not be negative", c.Storage.HighScoreSlot)
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}
