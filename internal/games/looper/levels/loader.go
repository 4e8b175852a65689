// Package levels provides level pack loading for Looper.
// This package depends on core but core does not depend on levels.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/looper/internal/games/looper/core"
	"github.com/vovakirdan/looper/internal/games/looper/levels/formats"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Level represents a complete level definition.
type Level struct {
	ID       string
	Name     string
	Grid     core.Level
	Metadata map[string]string
	FilePath string
}

// ErrInconsistent marks a level whose solved rotations leave connectors
// unmatched, so it could never be solved.
var ErrInconsistent = errors.New("level is not consistent at its solved rotations")

// Loader handles loading levels from a directory tree.
type Loader struct {
	Root string

	// OnSkip, if set, is told about every level file LoadAll leaves out.
	OnSkip func(path string, err error)

	fsys fs.FS
}

// NewLoader creates a loader reading from the directory root.
func NewLoader(root string) *Loader {
	return &Loader{Root: root, fsys: os.DirFS(root)}
}

// Builtin returns a loader over the levels compiled into the binary.
func Builtin() *Loader {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		panic(err)
	}
	return &Loader{Root: "builtin", fsys: sub}
}

// LoadAll recursively scans and loads all level files.
// Files that fail to parse or hold an inconsistent level are skipped and
// reported through OnSkip.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(path.Ext(p))
		if !isSupportedExtension(ext) {
			return nil
		}

		level, err := l.LoadFile(p)
		if err == nil && !level.Grid.Consistent() {
			err = fmt.Errorf("%s: %w", level.FilePath, ErrInconsistent)
		}
		if err != nil {
			if l.OnSkip != nil {
				l.OnSkip(path.Join(l.Root, p), err)
			}
			return nil
		}

		levels = append(levels, level)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, nil
}

// LoadFile loads a single level file. The path is relative to the root.
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}
	return decode(data, path.Base(p), path.Join(l.Root, p))
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("level not found: %s", id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// ReadFile parses a level file outside any loader root.
func ReadFile(filename string) (Level, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", filename, err)
	}
	return decode(data, filepath.Base(filename), filename)
}

// decode parses data according to the extension of name. Levels without
// an ID take the file stem.
func decode(data []byte, name, filePath string) (Level, error) {
	ext := strings.ToLower(path.Ext(name))
	stem := strings.TrimSuffix(name, path.Ext(name))

	parsed, err := parseByExtension(data, ext, stem)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", filePath, err)
	}
	if parsed.ID == "" {
		parsed.ID = stem
	}
	if parsed.Name == "" {
		parsed.Name = parsed.ID
	}

	return Level{
		ID:       parsed.ID,
		Name:     parsed.Name,
		Grid:     parsed.Grid,
		Metadata: parsed.Metadata,
		FilePath: filePath,
	}, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext, stem string) (formats.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	case ".txt":
		return formats.ParseText(data, stem)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
