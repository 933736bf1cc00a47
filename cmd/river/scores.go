package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/river-rush/internal/games/river"
	"github.com/vovakirdan/river-rush/internal/registry"
	"github.com/vovakirdan/river-rush/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show the best runs of a mode",
	Long: `Display the best runs and lifetime totals for a mode (default: river).

Examples:
  river scores
  river scores river_zen --limit 20
  river scores river_time_trial --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every stored run of the mode")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := river.IDClassic
	if len(args) == 1 {
		gameID = args[0]
	}
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w (run 'river list' to see available modes)", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if flagScoresClear {
		if err := store.ClearRuns(gameID); err != nil {
			return err
		}
		logger.Info("runs cleared", "mode", gameID)
		fmt.Fprintf(out, "Cleared runs for %s.\n", game.Title())
		return nil
	}

	runs, err := store.TopRuns(gameID, flagScoresLimit)
	if err != nil {
		return err
	}
	stats, err := store.Stats(gameID)
	if err != nil {
		return err
	}
	printScores(out, game.Title(), gameID, runs, stats)
	return nil
}

func printScores(out io.Writer, title, gameID string, runs []storage.Run, stats storage.RunStats) {
	fmt.Fprintf(out, "Best Runs - %s\n\n", title)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'river play %s' to set the first score!\n", gameID)
		return
	}

	fmt.Fprintf(out, "  %-4s  %-8s  %-7s  %-5s  %-4s  %-5s  %s\n", "Rank", "Score", "Meters", "Coins", "Gems", "Combo", "Date")
	fmt.Fprintf(out, "  %-4s  %-8s  %-7s  %-5s  %-4s  %-5s  %s\n", "----", "-----", "------", "-----", "----", "-----", "----")
	for i, r := range runs {
		fmt.Fprintf(out, "  %-4d  %-8d  %-7.0f  %-5d  %-4d  x%-4d  %s\n",
			i+1, r.Score, r.Distance, r.Coins, r.Gems, r.MaxCombo, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Runs: %d  Best: %d  Longest: %.0fm  Coins: %d  Gems: %d  Played: %s\n",
		stats.Runs, stats.BestScore, stats.BestDistance, stats.TotalCoins, stats.TotalGems,
		(time.Duration(stats.TotalMs) * time.Millisecond).Round(time.Second))
}
