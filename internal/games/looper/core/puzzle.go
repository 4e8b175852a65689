package core

import (
	"fmt"
	"math/rand"
)

// Board is the read/rotate surface consumed by renderers and input handlers.
type Board interface {
	Width() int
	Height() int
	Shape(x, y int) Shape
	Rotation(x, y int) Rotation
	Rotate(x, y int)
	IsSolved() bool
	NewLevel() error
}

// Puzzle owns the shape, solved and current rotation grids of one level.
// A Puzzle is owned by a single caller and is not safe for concurrent use.
type Puzzle struct {
	width   int
	height  int
	shapes  []Shape
	solved  []Rotation
	current []Rotation

	rng    *rand.Rand
	gen    *Generator
	params GenParams
	moves  int
}

var _ Board = (*Puzzle)(nil)

// NewPuzzle creates an empty puzzle that generates levels with params.
// Call NewLevel or Load before reading tiles.
func NewPuzzle(rng *rand.Rand, params GenParams) *Puzzle {
	return &Puzzle{
		rng:    rng,
		gen:    NewGenerator(rng),
		params: params,
	}
}

// Params returns the parameters used by NewLevel.
func (p *Puzzle) Params() GenParams {
	return p.params
}

// SetParams changes the parameters used by the next NewLevel.
func (p *Puzzle) SetParams(params GenParams) error {
	if err := params.Validate(); err != nil {
		return err
	}
	p.params = params
	return nil
}

// NewLevel generates a level with the configured parameters, replaces the
// current one and scrambles it. On error the current level is kept.
func (p *Puzzle) NewLevel() error {
	_, err := p.Generate(p.params)
	return err
}

// Generate is NewLevel with explicit parameters and run statistics.
func (p *Puzzle) Generate(params GenParams) (GenStats, error) {
	lvl, stats, err := p.gen.Generate(params)
	if err != nil {
		return stats, fmt.Errorf("generate %dx%d level: %w", params.Width, params.Height, err)
	}
	p.params = params
	p.Load(lvl)
	return stats, nil
}

// Load replaces the active level with a copy of lvl and scrambles it.
func (p *Puzzle) Load(lvl Level) {
	p.width = lvl.Width
	p.height = lvl.Height
	p.shapes = append([]Shape(nil), lvl.Shapes...)
	p.solved = append([]Rotation(nil), lvl.Solved...)
	p.current = append([]Rotation(nil), lvl.Solved...)
	p.moves = 0
	p.Scramble()
}

// Level returns a copy of the active level's shapes and solved rotations.
func (p *Puzzle) Level() Level {
	return Level{
		Width:  p.width,
		Height: p.height,
		Shapes: append([]Shape(nil), p.shapes...),
		Solved: append([]Rotation(nil), p.solved...),
	}
}

// Scramble turns every tile away from its solved rotation where its shape
// allows it. None and X tiles keep their rotation; I tiles pick 0 or 1
// directly, so they may land on their solved orientation.
func (p *Puzzle) Scramble() {
	for i, s := range p.shapes {
		switch s {
		case ShapeNone, ShapeX:
			p.current[i] = p.solved[i]
		case ShapeI:
			p.current[i] = Rotation(p.rng.Intn(2))
		default:
			r := ShiftRotation(p.solved[i], 1+p.rng.Intn(NumRotations-1))
			for ShapesEqual(s, r, p.solved[i]) {
				r = ShiftRotation(r, 1)
			}
			p.current[i] = r
		}
	}
}

// Width returns the grid width in tiles.
func (p *Puzzle) Width() int {
	return p.width
}

// Height returns the grid height in tiles.
func (p *Puzzle) Height() int {
	return p.height
}

// InBounds reports whether (x, y) lies on the grid.
func (p *Puzzle) InBounds(x, y int) bool {
	return x >= 0 && x < p.width && y >= 0 && y < p.height
}

func (p *Puzzle) index(x, y int) int {
	if !p.InBounds(x, y) {
		panic(fmt.Sprintf("looper: tile (%d,%d) outside %dx%d grid", x, y, p.width, p.height))
	}
	return y*p.width + x
}

// Shape returns the shape at (x, y).
func (p *Puzzle) Shape(x, y int) Shape {
	return p.shapes[p.index(x, y)]
}

// Rotation returns the current rotation at (x, y).
func (p *Puzzle) Rotation(x, y int) Rotation {
	return p.current[p.index(x, y)]
}

// SolvedRotation returns the solved rotation at (x, y).
func (p *Puzzle) SolvedRotation(x, y int) Rotation {
	return p.solved[p.index(x, y)]
}

// Mask returns the current connectors at (x, y).
func (p *Puzzle) Mask(x, y int) Mask {
	i := p.index(x, y)
	return ConnectorMask(p.shapes[i], p.current[i])
}

// Rotate turns the tile at (x, y) one quarter clockwise. Empty tiles do not
// turn. Coordinates outside the grid panic.
func (p *Puzzle) Rotate(x, y int) {
	i := p.index(x, y)
	if p.shapes[i] == ShapeNone {
		return
	}
	p.current[i] = ShiftRotation(p.current[i], 1)
	p.moves++
}

// Moves returns the number of rotations applied since the level was loaded.
func (p *Puzzle) Moves() int {
	return p.moves
}

// IsSmooth reports whether every connector of the tile at (x, y) meets a
// connector on its neighbour and none points off the grid.
func (p *Puzzle) IsSmooth(x, y int) bool {
	p.index(x, y)
	return smooth(p.width, p.height, x, y, p.Mask)
}

// IsSolved reports whether every tile is smooth.
func (p *Puzzle) IsSolved() bool {
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			if !smooth(p.width, p.height, x, y, p.Mask) {
				return false
			}
		}
	}
	return true
}

// Solve sets every tile to its solved rotation.
func (p *Puzzle) Solve() {
	copy(p.current, p.solved)
}
