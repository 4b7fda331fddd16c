package config

import "fmt"

// DifficultyPreset represents a named game speed.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed" // keep tick_ms from the config file
)

// TickMsForPreset returns the tick delay of a preset, or 0 for DifficultyFixed.
func TickMsForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 150
	case DifficultyNormal:
		return 100
	case DifficultyHard:
		return 60
	default:
		return 0
	}
}

// ApplyDifficultyPreset adjusts the tick delay for a preset.
// An empty preset leaves the config untouched.
func ApplyDifficultyPreset(cfg *SnakeConfig, preset DifficultyPreset) error {
	switch preset {
	case "", DifficultyFixed:
		return nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		cfg.Timing.TickMs = TickMsForPreset(preset)
		return nil
	}
	return fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", preset)
}
