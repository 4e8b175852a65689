package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/looper/internal/games/looper"
	"github.com/vovakirdan/looper/internal/platform/tui"
	"github.com/vovakirdan/looper/internal/registry"
)

var (
	flagLevel     int
	flagLevelsDir string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game mode",
	Long: `Start playing Looper. Without an argument plays endless generated
levels; "looper_pack" plays the level pack.

Controls:
  Arrows/WASD/HJKL  - Move cursor
  Space/Enter       - Rotate tile (next level once solved)
  R                 - Rescramble the level
  N                 - New level
  P                 - Pause
  B/Esc             - Back
  Q/Ctrl+C          - Quit

Difficulty options:
  easy    - 5x5 board, sparse pipes
  normal  - 7x13 board, full fill
  hard    - 12x16 board, full fill
  fixed   - Keep the board from the config file

Examples:
  looper play
  looper play --difficulty hard --seed 42
  looper play looper_pack
  looper play looper_pack --level 3
  looper play looper_pack --levels ./my-levels`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Pack level to start from (1-indexed, skips the picker)")
	playCmd.Flags().StringVar(&flagLevelsDir, "levels", "", "Directory of level files for pack mode")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := looper.EndlessID
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if mode exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'looper list' to see available modes.")
		os.Exit(1)
	}

	logger, err := setupGame(io.Discard)
	if err != nil {
		fatal("%v", err)
	}
	defer logger.Close()

	cfg := runtimeConfig()
	looper.SetLevelDir(flagLevelsDir)

	if gameID == looper.PackID {
		pack, packErr := looper.PackLevels()
		if packErr != nil {
			fatal("%v", packErr)
		}
		if flagLevel < 0 || flagLevel > len(pack) {
			fatal("level %d out of range 1-%d", flagLevel, len(pack))
		}

		level := flagLevel
		if level == 0 {
			// Show the level picker
			selection, selErr := tui.RunPackLevelSelector(tui.PackEntries(pack), cfg)
			if selErr != nil {
				fatal("%v", selErr)
			}
			// User pressed back or quit
			if selection == nil {
				return
			}
			level = selection.Level
		}
		looper.SetStartLevel(level)
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fatal("creating game: %v", err)
	}

	store := openStore(logger)
	logger.Info("starting game", "mode", gameID, "seed", cfg.Seed)

	runErr := tui.Run(game, store, logger.Logger, cfg)

	// Close store before potential exit
	closeStore(store, logger)

	if runErr != nil {
		fatal("running game: %v", runErr)
	}
}
