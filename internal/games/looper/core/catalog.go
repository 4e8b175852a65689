package core

import "fmt"

// Mask holds one connector flag per side, indexed by Direction.
type Mask [NumDirections]bool

// Has reports whether the mask has a connector toward d.
func (m Mask) Has(d Direction) bool {
	return m[d&3]
}

// Count returns the number of connectors.
func (m Mask) Count() int {
	n := 0
	for _, on := range m {
		if on {
			n++
		}
	}
	return n
}

// Shift rotates the mask clockwise by k quarter turns:
// the flag at index i moves to index (i+k) mod 4.
func (m Mask) Shift(k int) Mask {
	var out Mask
	for i, on := range m {
		out[int(ShiftRotation(Rotation(i), k))] = on
	}
	return out
}

// String renders the mask as four U/R/D/L letters, '.' for a missing side.
func (m Mask) String() string {
	letters := [NumDirections]byte{'U', 'R', 'D', 'L'}
	buf := []byte("....")
	for i, on := range m {
		if on {
			buf[i] = letters[i]
		}
	}
	return string(buf)
}

// canonicalMasks holds each shape's mask at rotation Up.
var canonicalMasks = [NumShapes]Mask{
	ShapeNone: {false, false, false, false},
	ShapeQ:    {true, false, false, false},
	ShapeI:    {true, false, true, false},
	ShapeL:    {true, true, false, false},
	ShapeT:    {true, true, true, false},
	ShapeX:    {true, true, true, true},
}

// offsets holds the (dx, dy) step per direction in screen coordinates.
var offsets = [NumDirections][2]int{
	DirUp:    {0, -1},
	DirRight: {1, 0},
	DirDown:  {0, 1},
	DirLeft:  {-1, 0},
}

// ConnectorMask returns the connectors of shape turned by rotation.
// Unknown shapes behave like ShapeNone.
func ConnectorMask(shape Shape, rotation Rotation) Mask {
	if !shape.Valid() || shape == ShapeNone {
		return Mask{}
	}
	return canonicalMasks[shape].Shift(int(rotation))
}

// DirectionOffset returns the grid step for direction d.
func DirectionOffset(d Direction) (dx, dy int, err error) {
	if !d.Valid() {
		return 0, 0, fmt.Errorf("%w: %d", ErrInvalidDirection, uint8(d))
	}
	return offsets[d][0], offsets[d][1], nil
}

// ShiftRotation returns r advanced by k quarter turns, normalised to 0..3.
func ShiftRotation(r Rotation, k int) Rotation {
	v := (int(r) + k) % NumRotations
	if v < 0 {
		v += NumRotations
	}
	return Rotation(v)
}

// ShapesEqual reports whether shape looks identical at rotations a and b.
func ShapesEqual(shape Shape, a, b Rotation) bool {
	return ConnectorMask(shape, a) == ConnectorMask(shape, b)
}

// Canonicalize finds the (shape, rotation) pair whose connectors equal m.
// The search walks shapes then rotations in ordinal order, so symmetric
// shapes resolve to their lowest matching rotation.
func Canonicalize(m Mask) (Shape, Rotation, error) {
	for _, s := range Shapes {
		for _, r := range Rotations {
			if ConnectorMask(s, r) == m {
				return s, r, nil
			}
		}
	}
	return ShapeNone, RotUp, &InternalConsistencyError{Mask: m}
}

// DistinctRotations returns how many visually distinct rotations a shape has.
func DistinctRotations(shape Shape) int {
	seen := make(map[Mask]struct{}, NumRotations)
	for _, r := range Rotations {
		seen[ConnectorMask(shape, r)] = struct{}{}
	}
	return len(seen)
}
