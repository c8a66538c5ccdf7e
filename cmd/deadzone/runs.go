package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/deadzone/internal/registry"
	"github.com/vovakirdan/deadzone/internal/storage"
)

var (
	flagRunsMap   string
	flagRunsLimit int
)

var runsCmd = &cobra.Command{
	Use:   "runs [id]",
	Short: "Show the run history",
	Long: `Without arguments, list the latest runs across every map. With --map,
list that map's best runs (by round, then kills) and its totals. With a run
id, show that run in full.

Examples:
  deadzone runs
  deadzone runs --map compound --limit 5
  deadzone runs 0b7f3c2e-9d1a-4c1e-8a55-2f4a61c9e0d3`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().StringVar(&flagRunsMap, "map", "", "Show the best runs of one map")
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 20, "Maximum number of runs to list")
}

func runRuns(_ *cobra.Command, args []string) {
	if flagRunsMap != "" && !registry.Exists(flagRunsMap) {
		fmt.Fprintf(os.Stderr, "Error: unknown map %q\n", flagRunsMap)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 1 {
		showRun(store, args[0])
		return
	}

	var runs []storage.Run
	if flagRunsMap != "" {
		runs, err = store.BestRuns(flagRunsMap, flagRunsLimit)
	} else {
		runs, err = store.RecentRuns(flagRunsLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	if flagRunsMap != "" {
		fmt.Printf("Best Runs - %s\n", flagRunsMap)
	} else {
		fmt.Println("Recent Runs")
	}
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("  %-36s  %-9s  %-9s  %5s  %5s  %7s  %6s  %s\n", "ID", "Map", "Character", "Round", "Kills", "Points", "Time", "Date")
	for _, r := range runs {
		fmt.Printf("  %-36s  %-9s  %-9s  %5d  %5d  %7d  %6s  %s\n",
			r.ID, r.Map, r.Character, r.Round, r.Kills, r.Points,
			r.Duration.Round(time.Second), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if flagRunsMap != "" {
		if stats, err := store.GetRunStats(flagRunsMap); err == nil {
			fmt.Println()
			fmt.Printf("Runs: %d  |  Best round: %d  |  Total kills: %d  |  Time played: %s\n",
				stats.Runs, stats.BestRound, stats.TotalKills, stats.PlayTime.Round(time.Second))
		}
	}
}

func showRun(store *storage.Store, id string) {
	run, err := store.RunByID(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if run == nil {
		fmt.Fprintf(os.Stderr, "Error: no run with id %q\n", id)
		os.Exit(1)
	}

	fmt.Printf("Run %s\n\n", run.ID)
	fmt.Printf("  Map:        %s\n", run.Map)
	fmt.Printf("  Character:  %s\n", run.Character)
	fmt.Printf("  Round:      %d\n", run.Round)
	fmt.Printf("  Kills:      %d\n", run.Kills)
	fmt.Printf("  Points:     %d\n", run.Points)
	fmt.Printf("  Survived:   %s\n", run.Duration.Round(time.Second))
	fmt.Printf("  Played:     %s\n", run.CreatedAt.Format("2006-01-02 15:04"))
}
