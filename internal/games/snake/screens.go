package snake

import (
	"context"
	"fmt"

	"github.com/vovakirdan/pixel-snake/internal/bitmap"
	"github.com/vovakirdan/pixel-snake/internal/core"
	"github.com/vovakirdan/pixel-snake/internal/device"
)

// Text rows of the static screens, in pixels from the top of the panel.
const (
	rowScore     = 22
	rowNewHigh   = 31
	rowHighScore = 40
	rowPrompt    = 55
)

// Result summarises a finished round.
type Result struct {
	Round     int
	Score     int
	Length    int
	HighScore int  // high score after this round was taken into account
	NewHigh   bool // the round beat the stored high score
}

// Intro shows the title screen and waits for a button.
func (g *Game) Intro(ctx context.Context) error {
	g.phase = PhaseIntro
	w, h := g.dev.Display.Size()

	g.dev.Display.Clear()
	g.dev.Display.DrawBitmap(0, 0, bitmap.Intro(w, h))
	g.printCentered(rowPrompt, bitmap.Prompt)
	g.dev.Display.Flush()

	if err := g.awaitInput(ctx); err != nil {
		return err
	}
	g.flash()
	return nil
}

// Outro shows the victory screen and waits for a button.
func (g *Game) Outro(ctx context.Context) (Result, error) {
	g.phase = PhaseOutro
	res := g.settle()
	g.logger.Info("snake filled the board", "round", res.Round, "score", res.Score)

	g.flash()
	w, h := g.dev.Display.Size()
	g.dev.Display.Clear()
	g.dev.Display.DrawBitmap(0, 0, bitmap.Win(w, h))
	g.printCentered(rowHighScore, fmt.Sprintf("SCORE: %d", res.Score))
	g.printCentered(rowPrompt, bitmap.Prompt)
	g.dev.Display.Flush()

	if err := g.awaitInput(ctx); err != nil {
		return res, err
	}
	g.flash()
	return res, nil
}

// GameOver shows the score and high score of the round that just ended,
// persisting the high score when it was strictly beaten, and waits for a
// button. Input is not applied to the snake while the screen is up.
func (g *Game) GameOver(ctx context.Context) (Result, error) {
	g.phase = PhaseGameOver
	g.flash()

	w, h := g.dev.Display.Size()
	g.dev.Display.Clear()
	g.dev.Display.DrawBitmap(0, 0, bitmap.GameOver(w, h))

	res := g.settle()
	g.printCentered(rowScore, fmt.Sprintf("SCORE: %d", res.Score))
	if res.NewHigh {
		g.printCentered(rowNewHigh, "NEW HIGH SCORE!")
	}
	g.printCentered(rowHighScore, fmt.Sprintf("HIGH SCORE: %d", res.HighScore))
	g.printCentered(rowPrompt, bitmap.Prompt)
	g.dev.Display.Flush()

	if err := g.awaitInput(ctx); err != nil {
		return res, err
	}
	g.flash()
	return res, nil
}

// settle computes the round result and updates persistent storage. Storage
// failures are logged and never end the game: an unreadable high score
// counts as zero and an unwritable one is simply not kept.
func (g *Game) settle() Result {
	res := Result{
		Round:  g.round,
		Score:  g.Score(),
		Length: g.snake.Length(),
	}

	slot := g.cfg.Storage.HighScoreSlot
	hi, err := g.dev.Store.ReadInt(slot)
	if err != nil {
		g.logger.Warn("could not read high score", "slot", slot, "err", err)
		hi = 0
	}

	res.HighScore = hi
	if res.Score > hi {
		res.HighScore = res.Score
		res.NewHigh = true
		if err := g.dev.Store.WriteInt(slot, res.Score); err != nil {
			g.logger.Error("could not save high score", "slot", slot, "err", err)
		} else {
			g.logger.Info("new high score", "score", res.Score, "previous", hi)
		}
	}

	if rec, ok := g.dev.Store.(device.Recorder); ok {
		if err := rec.RecordRound(res.Score, res.Length); err != nil {
			g.logger.Warn("could not record round", "err", err)
		}
	}

	g.last = res
	return res
}

// awaitInput blocks until a command arrives and consumes it. There is no
// timeout; only cancellation of ctx (power-off) ends the wait.
func (g *Game) awaitInput(ctx context.Context) error {
	for !g.dev.Input.Available() {
		if err := ctx.Err(); err != nil {
			return err
		}
		g.dev.Clock.Delay(g.cfg.Timing.PollMs)
	}
	g.dev.Input.Read()
	return nil
}

// flash briefly inverts the panel as a transition cue.
func (g *Game) flash() {
	g.dev.Display.Invert(true)
	g.dev.Clock.Delay(g.cfg.Timing.FlashOnMs)
	g.dev.Display.Invert(false)
	g.dev.Clock.Delay(g.cfg.Timing.FlashOffMs)
}

// printCentered draws one line of font text centered horizontally at row y.
func (g *Game) printCentered(y int, text string) {
	w, _ := g.dev.Display.Size()
	b := bitmap.Text(text, 1)
	g.dev.Display.DrawBitmap(core.Clamp((w-b.W)/2, 0, w), y, b)
}
