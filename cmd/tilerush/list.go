package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilerush/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available rulesets",
	Long:  `Shows all registered rulesets and their identifiers.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No rulesets available.")
		return
	}

	fmt.Println("Available rulesets:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'tilerush play <id>' to play.")
}
