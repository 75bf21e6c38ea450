package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the levels",
	Long:  `Shows every level in play order with its treasure.`,
	Args:  cobra.NoArgs,
	Run:   runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	catalog := mustCatalog()

	maxNameLen := 4 // "Name" header
	for _, id := range catalog.IDs() {
		if info, ok := catalog.Info(id); ok && len(info.Name) > maxNameLen {
			maxNameLen = len(info.Name)
		}
	}

	fmt.Println("Levels:")
	fmt.Println()
	fmt.Printf("  %-2s  %-*s  %-9s  %-9s  %s\n", "ID", maxNameLen, "Name", "Scenery", "Platforms", "Treasure")
	fmt.Printf("  %-2s  %-*s  %-9s  %-9s  %s\n", "--", maxNameLen, "----", "-------", "---------", "--------")

	for _, id := range catalog.IDs() {
		info, _ := catalog.Info(id)
		fmt.Printf("  %-2d  %-*s  %-9s  %-9d  %s\n",
			info.ID, maxNameLen, info.Name, info.Background, info.Platforms, strings.Join(info.Items, ", "))
	}

	fmt.Println()
	fmt.Println("Run 'pecktopia play' to start at level 1.")
}
