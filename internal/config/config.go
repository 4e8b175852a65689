// Package config provides YAML-based configuration loading and difficulty
// presets for Looper.
package config

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// MaxBoardSize bounds width and height so boards stay playable in a terminal.
const MaxBoardSize = 64

// LooperConfig contains all configuration for Looper.
type LooperConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Scoring ScoringConfig `yaml:"scoring"`
	Log     LogConfig     `yaml:"log"`
}

// BoardConfig defines the generated level parameters.
type BoardConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Fill   float64 `yaml:"fill"` // Share of openable connector endpoints, (0, 1]
}

// ScoringConfig defines how a solved level is scored.
type ScoringConfig struct {
	TilePoints    int `yaml:"tile_points"`     // Points per non-empty tile
	MovePenalty   int `yaml:"move_penalty"`    // Points lost per rotation
	TimeBonusSecs int `yaml:"time_bonus_secs"` // One bonus point per second under this
}

// LogConfig defines logger output.
type LogConfig struct {
	Level      string `yaml:"level"`  // debug, info, warn, error
	Format     string `yaml:"format"` // text or json
	File       string `yaml:"file"`   // Empty means stderr
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// DifficultyPreset represents a named board preset.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed" // Keep the board from the config file
)

// ValidationError reports an invalid configuration field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// Validate checks the configuration for values the game cannot use.
func (c LooperConfig) Validate() error {
	if c.Board.Width < 1 || c.Board.Width > MaxBoardSize {
		return &ValidationError{Field: "board.width", Message: fmt.Sprintf("must be between 1 and %d, got %d", MaxBoardSize, c.Board.Width)}
	}
	if c.Board.Height < 1 || c.Board.Height > MaxBoardSize {
		return &ValidationError{Field: "board.height", Message: fmt.Sprintf("must be between 1 and %d, got %d", MaxBoardSize, c.Board.Height)}
	}
	if math.IsNaN(c.Board.Fill) || c.Board.Fill <= 0 || c.Board.Fill > 1 {
		return &ValidationError{Field: "board.fill", Message: fmt.Sprintf("must be in (0, 1], got %v", c.Board.Fill)}
	}
	if c.Scoring.TilePoints < 0 || c.Scoring.MovePenalty < 0 || c.Scoring.TimeBonusSecs < 0 {
		return &ValidationError{Field: "scoring", Message: "values must not be negative"}
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return &ValidationError{Field: "log.format", Message: fmt.Sprintf("unknown format %q", c.Log.Format)}
	}
	return nil
}

// ParsePreset converts a name to a DifficultyPreset.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(name)); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (use easy, normal, hard or fixed)", name)
	}
}

// BoardForPreset returns the board for a preset. The fixed preset returns
// the current board unchanged.
func BoardForPreset(preset DifficultyPreset, current BoardConfig) BoardConfig {
	switch preset {
	case DifficultyEasy:
		return BoardConfig{Width: 5, Height: 5, Fill: 0.6}
	case DifficultyNormal:
		return BoardConfig{Width: 7, Height: 13, Fill: 1.0}
	case DifficultyHard:
		return BoardConfig{Width: 12, Height: 16, Fill: 1.0}
	default:
		return current
	}
}

// ApplyPreset rewrites the board section based on a difficulty preset.
func ApplyPreset(cfg *LooperConfig, preset DifficultyPreset) {
	cfg.Board = BoardForPreset(preset, cfg.Board)
}

// Score returns the points for solving a level of pipeTiles tiles in moves
// rotations and elapsed time. The base part never drops below zero.
func (s ScoringConfig) Score(pipeTiles, moves int, elapsed time.Duration) int {
	score := pipeTiles*s.TilePoints - moves*s.MovePenalty
	if score < 0 {
		score = 0
	}
	if bonus := s.TimeBonusSecs - int(elapsed/time.Second); bonus > 0 {
		score += bonus
	}
	return score
}
