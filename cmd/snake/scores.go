package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pixel-snake/internal/config"
	"github.com/vovakirdan/pixel-snake/internal/platform/tui"
	"github.com/vovakirdan/pixel-snake/internal/storage"
)

var (
	flagPlain bool
	flagReset bool
	flagLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high score and round history",
	Long: `Display the saved high score and the best recorded rounds.

On a terminal the history opens in an interactive table; use --plain
for text output.

Examples:
  snake scores
  snake scores --plain --limit 5
  snake scores --reset`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print as plain text")
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Erase the high score and the history")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of rounds to print in plain mode")
}

func runScores(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	slot := cfg.Storage.HighScoreSlot

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagReset {
		if err := store.Reset(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("High score and history erased.")
		return
	}

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, err := term.GetSize(fd); err == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, slot, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := printScores(store, slot, flagLimit); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
}

func printScores(store *storage.Store, slot, limit int) error {
	high, err := store.ReadInt(slot)
	if err != nil {
		return err
	}
	rounds, err := store.TopRounds(limit)
	if err != nil {
		return err
	}

	fmt.Printf("High Score: %d\n", high)
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %s\n", "Rank", "Score", "Length", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %s\n", "----", "-----", "------", "----")
	for i, r := range rounds {
		fmt.Printf("  %-4d  %-6d  %-6d  %s\n", i+1, r.Score, r.Length, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if st, err := store.Stats(); err == nil {
		fmt.Println()
		fmt.Printf("Rounds: %d  Average: %.1f  Longest: %d\n", st.Rounds, st.AvgScore, st.BestLength)
	}
	return nil
}
