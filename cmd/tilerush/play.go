package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tilerush/internal/core"
	"github.com/vovakirdan/tilerush/internal/games/rush"
	"github.com/vovakirdan/tilerush/internal/platform/tui"
	"github.com/vovakirdan/tilerush/internal/registry"
	"github.com/vovakirdan/tilerush/internal/storage"
)

var (
	flagConfig string
	flagPreset string
	flagGrid   int
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play TileRush",
	Long: `Start a game. Without an argument the classic ruleset is played;
pass "tilerush_hardcore" for no powerups and no undo.

Controls:
  Arrows/WASD - Slide tiles
  Mouse click - Activate a powerup tile
  U           - Undo last move
  Ctrl+R      - Redo
  P           - Pause
  R           - Restart
  Q/Ctrl+C    - Quit

Presets:
  classic  - Powerups and undo/redo enabled
  hardcore - No powerups, no undo/redo
  chaos    - Maximum powerup spawn rate

Examples:
  tilerush play
  tilerush play tilerush_hardcore
  tilerush play --grid 6
  tilerush play --preset chaos --seed 42
  tilerush play --config ./my-rules.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Ruleset preset: classic, hardcore, chaos")
	playCmd.Flags().IntVar(&flagGrid, "grid", 0, "Grid side length 3-8 (0 = use config)")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "tilerush"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'tilerush list' to see available rulesets.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	// The last-used preset is remembered; an explicit --preset overrides
	// and becomes the new default.
	preset := flagPreset
	if store != nil {
		if preset == "" {
			preset, _ = store.GetSetting("last_preset", "")
		} else {
			//nolint:errcheck // Best-effort save
			store.SetSetting("last_preset", preset)
		}
	}

	// Apply flags before the game is created
	rush.SetConfigPath(flagConfig)
	rush.SetPreset(preset)
	rush.SetGridSize(flagGrid)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Run(game, store, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
