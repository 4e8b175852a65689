package config

import (
	_ "embed"
)

//go:embed defaults/looper.yaml
var defaultLooperYAML []byte

// DefaultLooperConfig returns the built-in configuration: the classic 7x13
// board at full fill.
func DefaultLooperConfig() LooperConfig {
	return LooperConfig{
		Board: BoardConfig{
			Width:  7,
			Height: 13,
			Fill:   1.0,
		},
		Scoring: ScoringConfig{
			TilePoints:    10,
			MovePenalty:   1,
			TimeBonusSecs: 120,
		},
		Log: LogConfig{
			Level:      "info",
			Format:     "text",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}
