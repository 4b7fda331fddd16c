package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pixel-snake/internal/config"
	"github.com/vovakirdan/pixel-snake/internal/device"
	"github.com/vovakirdan/pixel-snake/internal/games/snake"
	"github.com/vovakirdan/pixel-snake/internal/platform/tui"
	"github.com/vovakirdan/pixel-snake/internal/registry"
	"github.com/vovakirdan/pixel-snake/internal/storage"
)

var (
	flagBackend    string
	flagSpeed      string
	flagScript     string
	flagScriptFile string
	flagDump       string
	flagNoSave     bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Power on the device",
	Long: `Power on the snake device and play until you quit.

Controls:
  A/Left     - Turn left (relative to the current heading)
  D/Right    - Turn right (relative to the current heading)
  W/Up       - Head up
  S/Down     - Head down
  any key    - Continue from the title and result screens
  Q/Ctrl+C   - Power off

Speed options:
  easy   - 150 ms per step
  normal - 100 ms per step
  hard   - 60 ms per step
  fixed  - Keep tick_ms from the config file

Examples:
  snake play
  snake play --speed hard
  snake play --backend tcell
  snake play --backend headless --script " ....w...." --dump frames.txt`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", "tui", "Display backend (see 'snake backends')")
	playCmd.Flags().StringVar(&flagSpeed, "speed", "", "Speed preset: easy, normal, hard, fixed (tui asks when unset)")
	playCmd.Flags().StringVar(&flagScript, "script", "", "Input script for the headless backend")
	playCmd.Flags().StringVar(&flagScriptFile, "script-file", "", "Read the input script from a file")
	playCmd.Flags().StringVar(&flagDump, "dump", "", "Dump flushed frames to a file ('-' for stdout)")
	playCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Keep the high score in memory only")
}

func runPlay(cmd *cobra.Command, args []string) {
	if !registry.Exists(flagBackend) {
		fmt.Fprintf(os.Stderr, "Error: unknown backend %q\n", flagBackend)
		fmt.Fprintln(os.Stderr, "Run 'snake backends' to see available backends.")
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(flagBackend != "headless")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	speed := config.DifficultyPreset(flagSpeed)
	if speed == "" && flagBackend == "tui" {
		width := 80
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width = w
		}
		preset, ok, err := tui.RunSpeedSelector(cfg.Timing.TickMs, width)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		// User pressed quit
		if !ok {
			return
		}
		speed = preset
	}
	if err := config.ApplyDifficultyPreset(&cfg, speed); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	script := flagScript
	if flagScriptFile != "" {
		data, err := os.ReadFile(flagScriptFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading script: %v\n", err)
			os.Exit(1)
		}
		script = string(data)
	}

	var dump io.Writer
	switch flagDump {
	case "":
	case "-":
		dump = os.Stdout
	default:
		f, err := os.Create(flagDump)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating dump file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		dump = f
	}

	backend, err := registry.Create(flagBackend, registry.Options{
		Width:  cfg.Display.Width,
		Height: cfg.Display.Height,
		Logger: logger,
		Script: script,
		Dump:   dump,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Open the high score store; the game still works without it
	var store device.Store = device.NewMemoryStore()
	if !flagNoSave {
		db, err := storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("could not open scores database, high score will not persist", "err", err)
		} else {
			defer db.Close()
			store = db
		}
	}

	var clock device.Clock = device.SleepClock{}
	if c, ok := backend.(registry.Clocked); ok {
		clock = c.Clock()
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game := snake.New(cfg, snake.Devices{
		Display: backend.Display(),
		Input:   backend.Input(),
		Store:   store,
		Clock:   clock,
	}, snake.WithLogger(logger), snake.WithSeed(seed))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("power on", "backend", flagBackend, "seed", seed, "tick_ms", cfg.Timing.TickMs)
	runErr := backend.Run(ctx, game.Run)
	logger.Info("power off", "rounds", game.Snapshot().Round, "last_score", game.LastResult().Score)

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		closeLog()
		os.Exit(1)
	}
}
