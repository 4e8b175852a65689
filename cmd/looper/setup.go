package main

import (
	"fmt"
	"io"
	"os"
	"os/user"

	"golang.org/x/term"

	"github.com/vovakirdan/looper/internal/config"
	"github.com/vovakirdan/looper/internal/core"
	"github.com/vovakirdan/looper/internal/games/looper"
	"github.com/vovakirdan/looper/internal/logging"
	"github.com/vovakirdan/looper/internal/platform/tui"
	"github.com/vovakirdan/looper/internal/storage"
)

// loadConfig resolves the configuration and applies the command line
// overrides on top of it.
func loadConfig() (config.LooperConfig, string, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return config.LooperConfig{}, "", err
	}

	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return config.LooperConfig{}, "", err
		}
		config.ApplyPreset(&cfg, preset)
	}
	if flagLogLevel != "" {
		if _, err := logging.ParseLevel(flagLogLevel); err != nil {
			return config.LooperConfig{}, "", err
		}
		cfg.Log.Level = flagLogLevel
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}

	return cfg, source, cfg.Validate()
}

// setupGame loads configuration, hands it to the game package and returns
// the logger. Interactive commands pass io.Discard because the terminal UI
// owns the screen.
func setupGame(fallback io.Writer) (*logging.Logger, error) {
	cfg, source, err := loadConfig()
	if err != nil {
		return nil, err
	}

	if flagTheme != "" {
		theme, err := tui.ThemeByName(flagTheme)
		if err != nil {
			return nil, err
		}
		tui.SetTheme(theme)
	}

	logger, err := logging.New(cfg.Log, "looper", fallback)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	logger.Debug("configuration loaded",
		"source", source,
		"board", fmt.Sprintf("%dx%d", cfg.Board.Width, cfg.Board.Height),
		"fill", cfg.Board.Fill,
	)

	looper.SetConfig(cfg)
	looper.SetSkipHandler(func(path string, err error) {
		logger.Warn("skipping level file", "path", path, "error", err)
	})
	return logger, nil
}

// runtimeConfig builds the runtime config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if u, err := user.Current(); err == nil {
		cfg.Player = u.Username
	}
	return cfg
}

// openStore opens the scores database. A failure is logged and play
// continues without persistence.
func openStore(logger *logging.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func closeStore(store *storage.Store, logger *logging.Logger) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		logger.Warn("closing scores database", "error", err)
	}
}
