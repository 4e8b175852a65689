package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/looper/internal/games/looper"
	"github.com/vovakirdan/looper/internal/platform/tui"
	"github.com/vovakirdan/looper/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start Looper with a mode picker menu",
	Long: `Start Looper in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select mode
  Tab          - Scoreboard
  Q            - Quit

Examples:
  looper menu
  looper menu --theme neon
  looper menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, err := setupGame(io.Discard)
	if err != nil {
		fatal("%v", err)
	}
	defer logger.Close()

	store := openStore(logger)
	defer closeStore(store, logger)

	cfg := runtimeConfig()

	// Menu loop
	for {
		// Show menu and get selection
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH, tui.ViewScores)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		gameID := menuResult.GameID
		if gameID == "" {
			break
		}

		level := 0
		if gameID == looper.PackID {
			pack, packErr := looper.PackLevels()
			if packErr != nil {
				logger.Warn("loading level pack", "error", packErr)
			}
			selection, selErr := tui.RunPackLevelSelector(tui.PackEntries(pack), cfg)
			if selErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
				continue
			}
			// User pressed back or quit
			if selection == nil {
				continue
			}
			level = selection.Level
		}

		game, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}
		if sel, ok := game.(registry.LevelSelector); ok && level > 0 {
			sel.SelectLevel(level)
		}

		// Fresh seed for each game unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		logger.Info("starting game", "mode", gameID, "seed", cfg.Seed)
		if err := tui.Run(game, store, logger.Logger, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Loop back to menu
	}
}
