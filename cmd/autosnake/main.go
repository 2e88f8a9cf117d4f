// autosnake is a terminal Snake game with an A* autopilot.
//
// Usage:
//
//	autosnake list              - List available games
//	autosnake play [game]       - Play in the terminal
//	autosnake simulate          - Run autopilot lives without a UI
//	autosnake scores [game]     - Show recorded scores
//	autosnake serve             - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible food placement
//	--db <path>          - Set database path (default: ~/.autosnake/scores.db)
//	--config <path>      - Use a specific config file
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/autosnake/internal/config"
	// Import games to register them
	_ "github.com/vovakirdan/autosnake/internal/games/snake"
	"github.com/vovakirdan/autosnake/internal/registry"
	"github.com/vovakirdan/autosnake/internal/storage"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "autosnake",
	Short: "Snake in your terminal, with an autopilot",
	Long: `autosnake is a terminal Snake game. Steer the snake yourself or let the
A* autopilot chase the food and restart on its own after every crash.

Available commands:
  list      - Show all available games
  play      - Play in the terminal
  simulate  - Run autopilot lives headless and print a summary
  scores    - View recorded scores
  serve     - Start SSH server for remote play

Examples:
  autosnake play
  autosnake play snake_auto --seed 42
  autosnake simulate --lives 20 --png last.png
  autosnake scores --tui
  autosnake serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds the logger for a command. Output goes to --log-file when
// set and to fallback otherwise. The returned close func is never nil.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	w, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closeFn = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadConfig resolves the config file. The returned path is empty for the
// built-in defaults.
func loadConfig(logger *log.Logger) (config.Config, string, error) {
	cfg, path, err := config.Load(flagConfig)
	if err != nil {
		return cfg, "", err
	}
	if path == "" {
		logger.Debug("using built-in config")
	} else {
		logger.Debug("loaded config", "path", path)
	}
	return cfg, path, nil
}

// openStore opens the scores database, or returns nil with a warning.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// resolveGame picks the game ID from args or the config default.
func resolveGame(args []string, cfg config.Config) (string, error) {
	id := cfg.DefaultGame()
	if len(args) > 0 {
		id = args[0]
	}
	if !registry.Exists(id) {
		return "", fmt.Errorf("unknown game %q; run 'autosnake list' to see available games", id)
	}
	return id, nil
}

// seed returns --seed, or a clock-based seed when it is zero.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}
