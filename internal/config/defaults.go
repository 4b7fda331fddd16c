package config

import (
	_ "embed"

	"github.com/vovakirdan/pixel-snake/internal/core"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return append([]byte(nil), defaultSnakeYAML...)
}

// DefaultSnakeConfig returns the default configuration: a 128x64 panel
// split into 64x32 cells of 2x2 pixels.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Display: DisplayConfig{
			Width:    128,
			Height:   64,
			CellSize: 2,
		},
		Playfield: PlayfieldConfig{
			Width:  64,
			Height: 32,
		},
		Snake: SnakeParams{
			StartX:       32,
			StartY:       16,
			StartHeading: core.DirRight,
			StartLength:  6,
			MaxLength:    1856, // 464 bytes of history
		},
		Timing: TimingConfig{
			TickMs:     100,
			FlashOnMs:  100,
			FlashOffMs: 200,
			PollMs:     10,
		},
		Storage: StorageConfig{
			HighScoreSlot: 0,
		},
		Rules: RulesConfig{
			WinAtMaxLength: true,
		},
	}
}
