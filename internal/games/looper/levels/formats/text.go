package formats

import "github.com/vovakirdan/looper/internal/games/looper/core"

// ParseText parses a raw text-encoded level. The caller supplies the ID,
// usually the file stem, which doubles as the name.
func ParseText(data []byte, id string) (Level, error) {
	grid, err := core.ParseLevel(string(data))
	if err != nil {
		return Level{}, err
	}
	return Level{ID: id, Name: id, Grid: grid}, nil
}
