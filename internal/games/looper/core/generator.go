package core

import (
	"fmt"
	"math"
	"math/rand"
)

// GenParams configures level generation.
type GenParams struct {
	Width  int     // Grid width in tiles
	Height int     // Grid height in tiles
	Fill   float64 // Target share of openable connector endpoints (0-1]
}

// DefaultGenParams returns the classic 7x13 board at full fill.
func DefaultGenParams() GenParams {
	return GenParams{
		Width:  7,
		Height: 13,
		Fill:   1.0,
	}
}

// Validate checks the parameters before generation.
func (p GenParams) Validate() error {
	if p.Width < 1 || p.Height < 1 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, p.Width, p.Height)
	}
	if math.IsNaN(p.Fill) || p.Fill <= 0 || p.Fill > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidFill, p.Fill)
	}
	return nil
}

const (
	// maxGrowthPasses bounds the zero-growth retry loop.
	maxGrowthPasses = 10000

	// openChance is the probability of opening each candidate connection.
	openChance = 0.5
)

// Generator builds random connected pipe networks.
// A Generator is not safe for concurrent use; it owns its random source.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator drawing from rng.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// GenStats describes a single generation run.
type GenStats struct {
	Start    Coord // Border cell the walk started from
	Passes   int   // Growth passes run, retries included
	Opened   int   // Connector endpoints opened
	MaxFill  int   // Theoretical maximum of openable endpoints
	Achieved float64
}

// GenerateLevel builds a connected network on a width x height grid and
// returns its canonical shapes and solved rotations.
func (g *Generator) GenerateLevel(width, height int, fill float64) (Level, error) {
	lvl, _, err := g.Generate(GenParams{Width: width, Height: height, Fill: fill})
	return lvl, err
}

// Generate is GenerateLevel with run statistics.
func (g *Generator) Generate(p GenParams) (Level, GenStats, error) {
	if err := p.Validate(); err != nil {
		return Level{}, GenStats{}, err
	}
	start := g.randomBorder(p.Width, p.Height)
	return g.generateFrom(p, start)
}

// generateFrom runs the walk from a fixed start cell.
func (g *Generator) generateFrom(p GenParams, start Coord) (Level, GenStats, error) {
	grid := newConnectorGrid(p.Width, p.Height)
	stats := GenStats{Start: start, MaxFill: grid.maxFill()}

	// A grid without interior edges (1x1) cannot grow.
	if stats.MaxFill > 0 {
		for {
			stats.Passes++
			opened := grid.populate(start, p.Fill, g.rng)
			if opened > 0 {
				stats.Opened = opened
				break
			}
			if stats.Passes >= maxGrowthPasses {
				return Level{}, stats, fmt.Errorf("%w after %d passes", ErrGenerationStalled, stats.Passes)
			}
		}
		stats.Achieved = float64(stats.Opened) / float64(stats.MaxFill)
	}

	lvl, err := grid.toLevel()
	if err != nil {
		return Level{}, stats, err
	}
	return lvl, stats, nil
}

// randomBorder picks a uniformly random edge cell.
func (g *Generator) randomBorder(width, height int) Coord {
	if g.rng.Intn(2) == 0 {
		x := g.rng.Intn(width)
		y := 0
		if g.rng.Intn(2) != 0 {
			y = height - 1
		}
		return C(x, y)
	}
	x := 0
	if g.rng.Intn(2) != 0 {
		x = width - 1
	}
	return C(x, g.rng.Intn(height))
}

// connectorGrid is the transient per-cell connector state used while
// generating. Cells are stored row-major.
type connectorGrid struct {
	w, h  int
	masks []Mask
}

func newConnectorGrid(w, h int) *connectorGrid {
	return &connectorGrid{w: w, h: h, masks: make([]Mask, w*h)}
}

func (cg *connectorGrid) index(c Coord) int {
	return c.Y*cg.w + c.X
}

func (cg *connectorGrid) inBounds(c Coord) bool {
	return c.X >= 0 && c.X < cg.w && c.Y >= 0 && c.Y < cg.h
}

// maxFill is every side of every cell minus the sides facing the border.
func (cg *connectorGrid) maxFill() int {
	return cg.w*cg.h*4 - cg.w*2 - cg.h*2
}

// populate runs one breadth-first growth pass from start and returns the
// number of endpoints it opened. A pass that opens nothing leaves the grid
// untouched.
func (cg *connectorGrid) populate(start Coord, limit float64, rng *rand.Rand) int {
	maxFill := float64(cg.maxFill())
	visited := make([]bool, len(cg.masks))
	current := []Coord{start}
	var next []Coord
	count := 0

	for len(current) > 0 {
		for _, c := range current {
			i := cg.index(c)
			if visited[i] {
				continue
			}
			visited[i] = true

			for _, d := range Directions {
				n := c.Step(d)
				if !cg.inBounds(n) || cg.masks[i][d] {
					continue
				}
				if float64(count)/maxFill >= limit || rng.Float64() >= openChance {
					continue
				}

				ni := cg.index(n)
				back := d.Opposite()
				if !cg.masks[i][d] {
					count++
				}
				cg.masks[i][d] = true
				if !cg.masks[ni][back] {
					count++
				}
				cg.masks[ni][back] = true

				next = append(next, n)
			}
		}
		current, next = next, current[:0]
	}

	return count
}

// toLevel canonicalises every cell's connectors.
func (cg *connectorGrid) toLevel() (Level, error) {
	lvl := NewLevel(cg.w, cg.h)
	for y := 0; y < cg.h; y++ {
		for x := 0; x < cg.w; x++ {
			m := cg.masks[cg.index(C(x, y))]
			s, r, err := Canonicalize(m)
			if err != nil {
				return Level{}, &InternalConsistencyError{Mask: m, At: C(x, y)}
			}
			lvl.Set(x, y, s, r)
		}
	}
	return lvl, nil
}
