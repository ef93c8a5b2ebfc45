package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresAll   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <variant>",
	Short: "Show high scores for a variant",
	Long: `Display the top scores and run statistics for the specified variant.

Examples:
  snake scores snake
  snake scores snake_classic --limit 20
  snake scores snake --all
  snake scores snake --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show every recorded run, ignoring --limit")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores for the variant")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q (run 'snake list' to see available variants)", gameID)
	}
	title := gameID
	for _, g := range registry.List() {
		if g.ID == gameID {
			title = g.Title
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		logger.Info("scores cleared", "game", gameID)
		return nil
	}

	scores, err := listScores(store, gameID)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'snake play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %-5s  %s\n", "Rank", "Score", "Length", "Ended", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-5s  %s\n", "----", "-----", "------", "-----", "----")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-6d  %-6d  %-5s  %s\n", i+1, entry.Score, entry.Length, entry.Cause, dateStr)
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		logger.Warn("could not load stats", "game", gameID, "error", err)
		return nil
	}
	fmt.Println()
	fmt.Printf("Best: %d  Longest: %d  Runs: %d  Average: %.1f\n",
		stats.HighScore, stats.MaxLength, stats.GamesCount, stats.AvgScore)
	return nil
}

// listScores returns every run with --all, otherwise the top --limit runs.
func listScores(store *storage.Store, gameID string) ([]storage.ScoreEntry, error) {
	if flagScoresAll {
		return store.AllScores(gameID)
	}
	return store.TopScores(gameID, flagScoresLimit)
}
