package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/autosnake/internal/config"
	"github.com/vovakirdan/autosnake/internal/games/snake"
	"github.com/vovakirdan/autosnake/internal/platform/tui"
)

var flagWatch bool

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in the terminal",
	Long: `Start a snake session in the terminal. Without a game argument the
config decides: snake_auto when autopilot.enabled is true, snake otherwise.

Controls:
  Arrows/WASD  - Steer
  P/Space      - Pause
  R            - Replay
  Tab/O        - Toggle autopilot
  +/-          - Faster/slower
  ?            - Help
  Q/Ctrl+C     - Quit

Logs are discarded unless --log-file is set, so the screen stays clean.
With --watch, edits to timing.tick_interval_ms in the loaded config file
change the speed of the running game.

Examples:
  autosnake play
  autosnake play snake
  autosnake play snake_auto --seed 7
  autosnake play --config ./configs/snake.yaml --watch --log-file snake.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload tick interval when the config file changes")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger("autosnake", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, path, err := loadConfig(logger)
	if err != nil {
		return err
	}
	gameID, err := resolveGame(args, cfg)
	if err != nil {
		return err
	}

	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		needW, needH := snake.ScreenSize(cfg.BoardGrid())
		needH += 3 // HUD and help lines
		if w < needW || h < needH {
			fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the board needs %dx%d\n", w, h, needW, needH)
		}
	}

	opts := tui.SessionOptions{
		GameID: gameID,
		Config: cfg,
		Seed:   seed(),
		Logger: logger,
	}
	if store := openStore(logger); store != nil {
		defer store.Close()
		opts.Recorder = store
	}

	sess, err := tui.NewSession(opts)
	if err != nil {
		return err
	}

	if flagWatch {
		if path == "" {
			fmt.Fprintln(os.Stderr, "Warning: --watch needs a config file; using built-in defaults")
		} else {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			go func() {
				err := config.Watch(ctx, path, logger, func(c config.Config) {
					sess.Scheduler.SetInterval(c.Timing.TickInterval())
				})
				if err != nil {
					logger.Error("config watch stopped", "error", err)
				}
			}()
		}
	}

	if err := tui.Run(sess.Scheduler, sess.Frames, sess.Game.Title()); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
