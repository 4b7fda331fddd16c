// snake emulates a tiny snake handheld: a 128x64 monochrome panel, four
// buttons and one EEPROM cell for the high score, hosted in a terminal.
//
// Usage:
//
//	snake play                - Play on the default terminal backend
//	snake play --backend tcell
//	snake scores              - Show the high score and round history
//	snake config              - Print the effective configuration
//	snake backends            - List available backends
//
// Global flags:
//
//	--config <path>   - Custom snake.yaml
//	--db <path>       - Database path (default: ~/.pixelsnake/snake.db)
//	--seed <value>    - RNG seed for reproducible food placement
//	--log-file <path> - Write logs to a file
//	--debug           - Log at debug level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import backends to register them
	_ "github.com/vovakirdan/pixel-snake/internal/platform/headless"
	_ "github.com/vovakirdan/pixel-snake/internal/platform/tcellterm"
	_ "github.com/vovakirdan/pixel-snake/internal/platform/tui"
)

var (
	// Global flags
	flagConfig  string
	flagDBPath  string
	flagSeed    int64
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Pixel Snake - a monochrome snake handheld in your terminal",
	Long: `Pixel Snake emulates a small snake console: a 128x64 one-bit panel,
four buttons and a single saved high score.

Available commands:
  play      - Power on the device
  scores    - View the high score and round history
  config    - Print the effective configuration
  backends  - List the available display backends

Examples:
  snake play
  snake play --speed hard
  snake play --backend headless --script " ....d....s" --dump -
  snake scores`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom snake config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pixelsnake/snake.db", "Path to the high score database")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(backendsCmd)
}
