package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/looper/internal/platform/tui"
	"github.com/vovakirdan/looper/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryTUI   bool
)

var historyCmd = &cobra.Command{
	Use:   "history [mode]",
	Short: "Show recently solved levels",
	Long: `List the most recently solved levels of a mode (default: looper).
The seed column rebuilds a generated level with 'looper generate --seed'
and the same board and fill.

Examples:
  looper history
  looper history looper_pack --limit 50
  looper history --tui`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Number of solves to show")
	historyCmd.Flags().BoolVar(&flagHistoryTUI, "tui", false, "Browse solves in the interactive scoreboard")
}

func runHistory(_ *cobra.Command, args []string) {
	gameID := modeArg(args)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal("opening scores database: %v", err)
	}
	defer store.Close()

	if flagHistoryTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if _, err := tui.RunScoreboard(store, width, height, tui.ViewSolves); err != nil {
			fatal("%v", err)
		}
		return
	}

	solves, err := store.RecentSolves(gameID, flagHistoryLimit)
	if err != nil {
		fatal("retrieving solves: %v", err)
	}

	fmt.Printf("Recent Solves - %s\n", gameID)
	fmt.Println()

	if len(solves) == 0 {
		fmt.Println("No solves recorded yet.")
		return
	}

	fmt.Printf("  %-16s  %-7s  %-5s  %-8s  %-6s  %-20s  %s\n", "Date", "Board", "Moves", "Time", "Score", "Seed", "Level")
	fmt.Printf("  %-16s  %-7s  %-5s  %-8s  %-6s  %-20s  %s\n", "----", "-----", "-----", "----", "-----", "----", "-----")
	for _, s := range solves {
		level := s.LevelID
		if level == "" {
			level = fmt.Sprintf("fill %.2f", s.Fill)
		}
		fmt.Printf("  %-16s  %-7s  %-5d  %-8s  %-6d  %-20d  %s\n",
			s.CreatedAt.Format("2006-01-02 15:04"),
			fmt.Sprintf("%dx%d", s.Width, s.Height),
			s.Moves,
			s.Duration.Round(100*time.Millisecond).String(),
			s.Score,
			s.Seed,
			level,
		)
	}

	if stats, err := store.GetGameStats(gameID); err == nil && stats.Solves > 0 {
		fmt.Println()
		fmt.Printf("Solves: %d  Avg moves: %.1f  Fastest: %s\n",
			stats.Solves, stats.AvgMoves, stats.Fastest.Round(100*time.Millisecond))
	}
}
