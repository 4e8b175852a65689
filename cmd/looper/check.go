package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/looper/internal/games/looper/levels"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Validate level files",
	Long: `Parse level files (.yaml, .yml or .txt) and check that each one is
solvable as written: at its solved rotations every connector must meet a
neighbour's connector and none may point off the board.

Exits with status 1 if any file fails.

Examples:
  looper check levels/06_big.yaml
  looper check levels/*.yaml`,
	Args: cobra.MinimumNArgs(1),
	Run:  runCheck,
}

func runCheck(_ *cobra.Command, args []string) {
	failed := 0
	for _, name := range args {
		lvl, err := levels.ReadFile(name)
		if err != nil {
			fmt.Printf("FAIL  %s: %v\n", name, err)
			failed++
			continue
		}
		if !lvl.Grid.Consistent() {
			fmt.Printf("FAIL  %s: level %q has unmatched connectors\n", name, lvl.ID)
			failed++
			continue
		}
		fmt.Printf("ok    %s: %s %dx%d, %d endpoints\n",
			name, lvl.ID, lvl.Grid.Width, lvl.Grid.Height, lvl.Grid.Endpoints())
	}

	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d level files failed\n", failed, len(args))
		os.Exit(1)
	}
}
