package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilerush/internal/registry"
	"github.com/vovakirdan/tilerush/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats <game>",
	Short: "Print aggregate statistics for a ruleset",
	Long: `Display aggregate statistics over all recorded games of the
specified ruleset.

Examples:
  tilerush stats tilerush
  tilerush stats tilerush_hardcore`,
	Args: cobra.ExactArgs(1),
	Run:  runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'tilerush list' to see available rulesets.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	stats, err := store.Stats(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Statistics - %s\n", game.Title())
	fmt.Println()

	if stats.Games == 0 {
		fmt.Println("No games recorded yet.")
		return
	}

	fmt.Printf("  Games played:  %d\n", stats.Games)
	fmt.Printf("  Best score:    %d\n", stats.BestScore)
	fmt.Printf("  Average score: %.1f\n", stats.AvgScore)
	fmt.Printf("  Total moves:   %d\n", stats.TotalMoves)
	fmt.Printf("  Max tile:      %d\n", stats.MaxTile)
}
