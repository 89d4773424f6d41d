package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show best runs",
	Long: `Display the best recorded runs.

With a level argument the top 10 runs for that level are printed.
Without arguments an interactive browser opens.

Examples:
  platformer scores
  platformer scores meadow`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if _, err := tui.RunScoreboard(store, platformer.BuiltinLevels(), flagFPS, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	levelID := args[0]
	level, ok := platformer.GetLevelByID(levelID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", levelID)
		fmt.Fprintln(os.Stderr, "Run 'platformer levels' to see available levels.")
		os.Exit(1)
	}

	runs, err := store.TopRuns(levelID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Runs - %s\n", level.Name)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'platformer play %s' to set the first record!\n", levelID)
		return
	}

	fmt.Printf("  %-4s  %-7s  %-8s  %-7s  %s\n", "Rank", "Coins", "Result", "Time", "Date")
	fmt.Printf("  %-4s  %-7s  %-8s  %-7s  %s\n", "----", "-----", "------", "----", "----")

	for i, entry := range runs {
		timeStr := tui.FormatRunTime(entry.DurationTicks, flagFPS)
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-7d  %-8s  %-7s  %s\n", i+1, entry.Coins, entry.Outcome, timeStr, dateStr)
	}

	fmt.Println()
	stats, err := store.Stats(levelID)
	if err == nil {
		fmt.Printf("Runs: %d  Wins: %d  Best coins: %d\n", stats.Runs, stats.Wins, stats.BestCoins)
	}
}
