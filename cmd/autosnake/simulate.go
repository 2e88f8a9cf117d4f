package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/autosnake/internal/core"
	"github.com/vovakirdan/autosnake/internal/engine"
	"github.com/vovakirdan/autosnake/internal/platform/canvas"
	"github.com/vovakirdan/autosnake/internal/registry"
)

var (
	flagLives    int
	flagMaxTicks int
	flagPNG      string
	flagNoStore  bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [game]",
	Short: "Run autopilot lives without a UI",
	Long: `Play the given number of lives on the autopilot against a virtual clock
and print a summary. Lives are recorded in the scores database unless
--no-store is set. --png writes the last frame as an image.

Examples:
  autosnake simulate
  autosnake simulate --lives 50 --seed 1
  autosnake simulate snake --max-ticks 10000 --png last.png --no-store`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagLives, "lives", 10, "Number of lives to play")
	simulateCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", 1_000_000, "Stop after this many ticks (0 = no limit)")
	simulateCmd.Flags().StringVar(&flagPNG, "png", "", "Write the final frame to this PNG file")
	simulateCmd.Flags().BoolVar(&flagNoStore, "no-store", false, "Do not record lives in the scores database")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	if flagLives < 1 {
		return fmt.Errorf("--lives must be at least 1")
	}

	logger, closeLog, err := newLogger("autosnake-sim", os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, _, err := loadConfig(logger)
	if err != nil {
		return err
	}
	gameID, err := resolveGame(args, cfg)
	if err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	s := seed()
	game.Reset(cfg.Runtime(s))

	t := cfg.Timing
	opts := engine.Options{
		Interval:     t.TickInterval(),
		MinInterval:  t.MinInterval(),
		MaxInterval:  t.MaxInterval(),
		SpeedStep:    t.SpeedStep(),
		RestartDelay: t.RestartDelay(),
		Logger:       logger,
	}
	if !flagNoStore {
		if store := openStore(logger); store != nil {
			defer store.Close()
			opts.Recorder = store
		}
	}

	sum := engine.RunHeadless(game, flagLives, flagMaxTicks, opts)

	fmt.Printf("Simulation - %s (seed %d)\n", game.Title(), s)
	fmt.Println()
	fmt.Printf("  Lives:   %d\n", sum.Lives)
	fmt.Printf("  Ticks:   %d\n", sum.Ticks)
	fmt.Printf("  High:    %d\n", sum.High)
	fmt.Printf("  Average: %v\n", sum.Average)
	if len(sum.Scores) > 0 {
		fmt.Printf("  Scores:  %v\n", sum.Scores)
	}
	if sum.Lives < flagLives {
		fmt.Printf("\nStopped after %d ticks with %d of %d lives played.\n", sum.Ticks, sum.Lives, flagLives)
	}

	if flagPNG != "" {
		c := canvas.New(cfg.BoardGrid())
		game.Draw(c)
		if game.State().Phase == core.PhaseGameOver {
			c.DrawGameOver()
		}
		if err := c.SavePNG(flagPNG); err != nil {
			return err
		}
		fmt.Printf("\nFinal frame written to %s\n", flagPNG)
	}
	return nil
}
