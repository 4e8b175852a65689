package core

// Level is a generated or loaded puzzle: a shape and a solved rotation per
// tile. Tiles are stored in row-major order: index = y*Width + x.
type Level struct {
	Width  int
	Height int
	Shapes []Shape
	Solved []Rotation
}

// NewLevel allocates an empty level of the given size.
func NewLevel(width, height int) Level {
	return Level{
		Width:  width,
		Height: height,
		Shapes: make([]Shape, width*height),
		Solved: make([]Rotation, width*height),
	}
}

func (l Level) index(x, y int) int {
	return y*l.Width + x
}

// InBounds reports whether (x, y) lies on the level.
func (l Level) InBounds(x, y int) bool {
	return x >= 0 && x < l.Width && y >= 0 && y < l.Height
}

// Shape returns the shape at (x, y).
func (l Level) Shape(x, y int) Shape {
	return l.Shapes[l.index(x, y)]
}

// SolvedRotation returns the solved rotation at (x, y).
func (l Level) SolvedRotation(x, y int) Rotation {
	return l.Solved[l.index(x, y)]
}

// Set assigns the shape and solved rotation at (x, y).
func (l Level) Set(x, y int, shape Shape, rotation Rotation) {
	i := l.index(x, y)
	l.Shapes[i] = shape
	l.Solved[i] = rotation
}

// Mask returns the solved connectors at (x, y).
func (l Level) Mask(x, y int) Mask {
	i := l.index(x, y)
	return ConnectorMask(l.Shapes[i], l.Solved[i])
}

// Clone returns a deep copy of the level.
func (l Level) Clone() Level {
	out := Level{Width: l.Width, Height: l.Height}
	out.Shapes = append([]Shape(nil), l.Shapes...)
	out.Solved = append([]Rotation(nil), l.Solved...)
	return out
}

// Consistent reports whether the level at its solved rotations has every
// connector matched by a neighbour and none pointing off the grid.
func (l Level) Consistent() bool {
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			if !smooth(l.Width, l.Height, x, y, l.Mask) {
				return false
			}
		}
	}
	return true
}

// Endpoints returns the total number of connectors at the solved rotations.
func (l Level) Endpoints() int {
	n := 0
	for i, s := range l.Shapes {
		n += ConnectorMask(s, l.Solved[i]).Count()
	}
	return n
}

// ShapeCounts returns how many tiles hold each shape.
func (l Level) ShapeCounts() map[Shape]int {
	counts := make(map[Shape]int, NumShapes)
	for _, s := range l.Shapes {
		counts[s]++
	}
	return counts
}

// EmptySides returns the grid sides whose border tiles carry no pipe at all.
func (l Level) EmptySides() []Direction {
	var used [NumDirections]bool
	for x := 0; x < l.Width; x++ {
		if l.Mask(x, 0).Count() > 0 {
			used[DirUp] = true
		}
		if l.Mask(x, l.Height-1).Count() > 0 {
			used[DirDown] = true
		}
	}
	for y := 0; y < l.Height; y++ {
		if l.Mask(0, y).Count() > 0 {
			used[DirLeft] = true
		}
		if l.Mask(l.Width-1, y).Count() > 0 {
			used[DirRight] = true
		}
	}

	var sides []Direction
	for _, d := range Directions {
		if !used[d] {
			sides = append(sides, d)
		}
	}
	return sides
}

// smooth reports whether the tile at (x, y) agrees with all four neighbours.
// mask supplies the connectors of any in-grid tile.
func smooth(width, height, x, y int, mask func(x, y int) Mask) bool {
	m := mask(x, y)
	for _, d := range Directions {
		n := C(x, y).Step(d)
		other := false
		if n.X >= 0 && n.X < width && n.Y >= 0 && n.Y < height {
			other = mask(n.X, n.Y).Has(d.Opposite())
		}
		if m.Has(d) != other {
			return false
		}
	}
	return true
}
