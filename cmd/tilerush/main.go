// tilerush is a terminal 2048-style puzzle with tap-activated powerup tiles.
//
// Usage:
//
//	tilerush play [game]     - Play (default: classic ruleset)
//	tilerush list            - List available rulesets
//	tilerush results [game]  - Browse saved results
//	tilerush scores <game>   - Print top scores for a ruleset
//	tilerush stats <game>    - Print aggregate statistics
//	tilerush serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible games
//	--db <path>     - Set database path (default: ~/.tilerush/results.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import rulesets to register them
	_ "github.com/vovakirdan/tilerush/internal/games/rush"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tilerush",
	Short: "TileRush - sliding tile puzzle with powerups",
	Long: `TileRush is a terminal take on 2048: slide tiles, merge equal values,
and tap the powerup tiles that appear between moves to blast, clear, and
reshuffle the board.

Available commands:
  play     - Play a ruleset directly
  list     - Show available rulesets
  results  - Interactive results browser
  scores   - Print top scores for a ruleset
  stats    - Print aggregate statistics
  serve    - Start SSH server for remote play

Examples:
  tilerush play
  tilerush play tilerush_hardcore
  tilerush play --grid 6 --preset chaos
  tilerush scores tilerush
  tilerush serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tilerush/results.db", "Path to results database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
}
