package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/autosnake/internal/platform/tui"
	"github.com/vovakirdan/autosnake/internal/registry"
	"github.com/vovakirdan/autosnake/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresClear bool
	flagScoresLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show recorded scores",
	Long: `Display the top scores and life statistics for a game, or a summary of
every game when none is named. --tui opens an interactive score table.

Examples:
  autosnake scores
  autosnake scores snake_auto
  autosnake scores snake --limit 25
  autosnake scores --tui
  autosnake scores snake --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores interactively")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores for the named game")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to list")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresTUI {
		return tui.RunScoreboard(store)
	}

	if len(args) == 0 {
		if flagScoresClear {
			return fmt.Errorf("--clear needs a game")
		}
		return printAllStats(store)
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q; run 'autosnake list' to see available games", gameID)
	}

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return fmt.Errorf("error clearing scores: %w", err)
		}
		fmt.Printf("Cleared scores for %s.\n", gameID)
		return nil
	}
	return printGameScores(store, gameID)
}

func printGameScores(store *storage.Store, gameID string) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("error retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'autosnake play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %-7s  %-5s  %s\n", "Rank", "Score", "Length", "Ticks", "Cause", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-7s  %-5s  %s\n", "----", "-----", "------", "-----", "-----", "----")

	for i, e := range scores {
		cause := string(e.Cause)
		if cause == "" {
			cause = "-"
		}
		fmt.Printf("  %-4d  %-6d  %-6d  %-7d  %-5s  %s\n", i+1, e.Score, e.Length, e.Ticks, cause, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return fmt.Errorf("error retrieving stats: %w", err)
	}
	fmt.Println()
	fmt.Printf("Best: %d  Lives: %d  Average: %.1f\n", stats.HighScore, stats.Lives, stats.AvgScore)
	fmt.Printf("Deaths: %d wall, %d self\n", stats.WallDeaths, stats.SelfDeaths)

	if recent, err := store.RecentScores(gameID, 1); err == nil && len(recent) > 0 {
		fmt.Printf("Last life: %d on %s\n", recent[0].Score, recent[0].CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func printAllStats(store *storage.Store) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return fmt.Errorf("error retrieving stats: %w", err)
	}

	fmt.Println("Score summary:")
	fmt.Println()
	fmt.Printf("  %-12s  %-6s  %-6s  %-8s  %s\n", "Game", "Lives", "Best", "Average", "Last played")
	fmt.Printf("  %-12s  %-6s  %-6s  %-8s  %s\n", "----", "-----", "----", "-------", "-----------")

	for _, g := range registry.List() {
		st, ok := all[g.ID]
		if !ok {
			fmt.Printf("  %-12s  %-6d  %-6s  %-8s  %s\n", g.ID, 0, "-", "-", "never")
			continue
		}
		fmt.Printf("  %-12s  %-6d  %-6d  %-8.1f  %s\n", g.ID, st.Lives, st.HighScore, st.AvgScore, st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
