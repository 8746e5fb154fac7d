package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tilerush/internal/platform/tui"
	"github.com/vovakirdan/tilerush/internal/registry"
	"github.com/vovakirdan/tilerush/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Print top scores for a ruleset",
	Long: `Display the top 10 results for the specified ruleset.

Examples:
  tilerush scores tilerush
  tilerush scores tilerush_hardcore`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Browse saved results interactively",
	Long: `Open the interactive results browser. Switch between rulesets with
tab, scroll with the arrow keys.`,
	Run: runResults,
}

func runScores(cmd *cobra.Command, args []string) {
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

	results, err := store.TopResults(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Top Scores - %s\n", game.Title())
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'tilerush play %s' to set the first score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-8s  %s\n", "Rank", "Score", "Moves", "Max Tile", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-8s  %s\n", "----", "-----", "-----", "--------", "----")
	for i, entry := range results {
		fmt.Printf("  %-4d  %-8d  %-6d  %-8d  %s\n",
			i+1, entry.Score, entry.Moves, entry.MaxTile,
			entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if high, err := store.HighScore(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d\n", high)
	}
}

func runResults(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if _, err := tui.RunResults(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
