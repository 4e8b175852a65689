// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"

	"github.com/vovakirdan/looper/internal/games/looper/core"
	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Size     YAMLSize          `yaml:"size,omitempty"`
	Grid     string            `yaml:"grid"` // Text encoding, one row per line
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// YAMLSize represents grid dimensions.
type YAMLSize struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// Level represents a parsed level ready for use.
type Level struct {
	ID       string
	Name     string
	Grid     core.Level
	Metadata map[string]string
}

// ParseYAML parses a YAML level file.
// The optional size block must agree with the grid.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	grid, err := core.ParseLevel(yl.Grid)
	if err != nil {
		return Level{}, fmt.Errorf("grid: %w", err)
	}

	if yl.Size.W != 0 || yl.Size.H != 0 {
		if yl.Size.W != grid.Width || yl.Size.H != grid.Height {
			return Level{}, fmt.Errorf("size %dx%d does not match grid %dx%d",
				yl.Size.W, yl.Size.H, grid.Width, grid.Height)
		}
	}

	return Level{
		ID:       yl.ID,
		Name:     yl.Name,
		Grid:     grid,
		Metadata: yl.Metadata,
	}, nil
}

// MarshalYAML encodes a level in the YAML file format.
func MarshalYAML(l Level) ([]byte, error) {
	yl := YAMLLevel{
		ID:       l.ID,
		Name:     l.Name,
		Size:     YAMLSize{W: l.Grid.Width, H: l.Grid.Height},
		Grid:     core.FormatLevel(l.Grid),
		Metadata: l.Metadata,
	}
	return yaml.Marshal(&yl)
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".txt"}
}
