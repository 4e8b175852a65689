package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/looper/internal/games/looper"
	"github.com/vovakirdan/looper/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List game modes and pack levels",
	Long:  `Shows the registered game modes and the levels of the pack.`,
	Run:   runList,
}

func init() {
	listCmd.Flags().StringVar(&flagLevelsDir, "levels", "", "Directory of level files for pack mode")
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No modes available.")
		return
	}

	fmt.Println("Available modes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	looper.SetLevelDir(flagLevelsDir)
	looper.SetSkipHandler(func(path string, err error) {
		fmt.Fprintf(os.Stderr, "warning: skipping %s: %v\n", path, err)
	})
	pack, err := looper.PackLevels()
	fmt.Println()
	if err != nil {
		fmt.Printf("Level pack unavailable: %v\n", err)
	} else {
		fmt.Println("Pack levels:")
		fmt.Println()
		for i, lvl := range pack {
			fmt.Printf("  %2d. %-16s %dx%d\n", i+1, lvl.Name, lvl.Grid.Width, lvl.Grid.Height)
		}
	}

	fmt.Println()
	fmt.Println("Run 'looper play <id>' to play a mode.")
}
