package main

import (
	"bytes"
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/looper/internal/config"
	"github.com/vovakirdan/looper/internal/games/looper/core"
	"github.com/vovakirdan/looper/internal/games/looper/levels/formats"
)

// withFlags restores the global flag values touched by a test.
func withFlags(t *testing.T) {
	t.Helper()
	cfgPath, difficulty, logLevel, logFile := flagConfig, flagDifficulty, flagLogLevel, flagLogFile
	format, id := flagGenFormat, flagGenID
	width, height, fill := flagGenWidth, flagGenHeight, flagGenFill
	t.Cleanup(func() {
		flagConfig, flagDifficulty, flagLogLevel, flagLogFile = cfgPath, difficulty, logLevel, logFile
		flagGenFormat, flagGenID = format, id
		flagGenWidth, flagGenHeight, flagGenFill = width, height, fill
	})
}

func generated(t *testing.T, seed int64) (core.Level, core.GenParams) {
	t.Helper()
	params := core.GenParams{Width: 6, Height: 4, Fill: 0.8}
	p := core.NewPuzzle(rand.New(rand.NewSource(seed)), params)
	if _, err := p.Generate(params); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	return p.Level(), params
}

func TestEncodeLevelYAML(t *testing.T) {
	withFlags(t)
	flagGenFormat = "yaml"
	flagGenID = "06_test"

	lvl, params := generated(t, 42)
	data, err := encodeLevel(lvl, params, 42)
	if err != nil {
		t.Fatalf("encodeLevel failed: %v", err)
	}

	parsed, err := formats.ParseYAML(data)
	if err != nil {
		t.Fatalf("generated YAML does not parse: %v\n%s", err, data)
	}
	if parsed.ID != "06_test" {
		t.Errorf("ID = %q", parsed.ID)
	}
	if parsed.Metadata["seed"] != "42" || parsed.Metadata["fill"] != "0.8" {
		t.Errorf("unexpected metadata %v", parsed.Metadata)
	}
	if core.FormatLevel(parsed.Grid) != core.FormatLevel(lvl) {
		t.Error("grid changed through YAML")
	}
	if !parsed.Grid.Consistent() {
		t.Error("generated level should be consistent")
	}
}

func TestEncodeLevelText(t *testing.T) {
	withFlags(t)
	lvl, params := generated(t, 7)

	flagGenFormat = "txt"
	data, err := encodeLevel(lvl, params, 7)
	if err != nil {
		t.Fatalf("encodeLevel failed: %v", err)
	}
	if string(data) != core.FormatLevel(lvl) {
		t.Errorf("text output differs from FormatLevel:\n%s", data)
	}

	flagGenFormat = "json"
	if _, err := encodeLevel(lvl, params, 7); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestSameSeedSameLevel(t *testing.T) {
	a, _ := generated(t, 99)
	b, _ := generated(t, 99)
	if core.FormatLevel(a) != core.FormatLevel(b) {
		t.Error("same seed produced different levels")
	}
}

func TestPrintGenStats(t *testing.T) {
	lvl, params := generated(t, 3)
	p := core.NewPuzzle(rand.New(rand.NewSource(3)), params)
	stats, err := p.Generate(params)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	printGenStats(&buf, lvl, stats, 3)
	out := buf.String()
	for _, want := range []string{"Seed:      3", "Board:     6x4", "Shapes:", "Empty:"} {
		if !strings.Contains(out, want) {
			t.Errorf("stats missing %q:\n%s", want, out)
		}
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	withFlags(t)

	path := filepath.Join(t.TempDir(), "looper.yaml")
	if err := os.WriteFile(path, []byte("board:\n  width: 9\n  height: 9\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	flagConfig = path
	flagLogLevel = "debug"
	cfg, source, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Board.Width != 9 || cfg.Log.Level != "debug" {
		t.Errorf("overrides not applied: %+v", cfg)
	}

	flagDifficulty = "easy"
	cfg, _, err = loadConfig()
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.Board != config.BoardForPreset(config.DifficultyEasy, config.BoardConfig{}) {
		t.Errorf("easy preset not applied: %+v", cfg.Board)
	}
}

func TestLoadConfigRejectsBadFlags(t *testing.T) {
	tests := []struct {
		name       string
		difficulty string
		logLevel   string
	}{
		{"difficulty", "nightmare", ""},
		{"log level", "", "verbose"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withFlags(t)
			flagConfig = ""
			flagDifficulty = tt.difficulty
			flagLogLevel = tt.logLevel
			if _, _, err := loadConfig(); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestGenParamsLimits(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		fill          float64
		wantErr       bool
	}{
		{"config defaults", 0, 0, 0, false},
		{"largest board", config.MaxBoardSize, config.MaxBoardSize, 0.5, false},
		{"width too large", 100000, 0, 0, true},
		{"height too large", 0, config.MaxBoardSize + 1, 0, true},
		{"negative width", -3, 0, 0, true},
		{"fill above one", 0, 0, 1.5, true},
		{"negative fill", 0, 0, -0.2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withFlags(t)
			flagGenWidth, flagGenHeight, flagGenFill = tt.width, tt.height, tt.fill

			cfg := config.DefaultLooperConfig()
			params, err := genParams(cfg)
			if tt.wantErr {
				var ve *config.ValidationError
				if !errors.As(err, &ve) {
					t.Fatalf("expected *config.ValidationError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("genParams failed: %v", err)
			}
			if tt.width == 0 && params.Width != cfg.Board.Width {
				t.Errorf("Width = %d, expected config width %d", params.Width, cfg.Board.Width)
			}
			if tt.width != 0 && params.Width != tt.width {
				t.Errorf("Width = %d, expected %d", params.Width, tt.width)
			}
		})
	}
}

func TestWriteLevel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "level.yaml")
	if err := writeLevel(path, []byte("1 1|1 3\n")); err != nil {
		t.Fatalf("writeLevel failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "1 1|1 3\n" {
		t.Errorf("file holds %q", data)
	}

	if err := writeLevel(filepath.Join(dir, "missing", "level.yaml"), []byte("x")); err == nil {
		t.Error("expected error for a missing directory")
	}
}
