package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/deadzone/internal/registry"
	"github.com/vovakirdan/deadzone/internal/storage"
)

var (
	flagScoresAll   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <map>",
	Short: "Show the best rounds for a map",
	Long: `Display the top 10 rounds reached on the specified map.

Examples:
  deadzone scores outpost
  deadzone scores compound --all
  deadzone scores outpost --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show every recorded score")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every score for the map")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown map %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'deadzone list' to see available maps.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared scores for %s.\n", title)
		return
	}

	var scores []storage.ScoreEntry
	if flagScoresAll {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, 10)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Rounds - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'deadzone play %s' to set the first record!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-6s  %s\n", "Rank", "Round", "Date")
	fmt.Printf("  %-4s  %-6s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-6d  %s\n", i+1, entry.Score, dateStr)
	}

	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Best: round %d  |  Runs: %d  |  Average: %.1f\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
}
