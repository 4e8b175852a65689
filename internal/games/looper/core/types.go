// Package core provides the puzzle engine for Looper: shape catalog, level
// generator and puzzle state. This package is UI-agnostic and deterministic
// for a given random source.
package core

import "fmt"

// Direction is one of the four sides of a tile, ordered clockwise.
type Direction uint8

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// NumDirections is the number of tile sides.
const NumDirections = 4

// Directions lists all directions in clockwise order.
var Directions = [NumDirections]Direction{DirUp, DirRight, DirDown, DirLeft}

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d < NumDirections
}

// Opposite returns the direction facing d.
func (d Direction) Opposite() Direction {
	return Direction(ShiftRotation(Rotation(d), 2))
}

// Rotation is a clockwise quarter-turn count applied to a shape.
// Rotation values share ordinals with Direction: a rotation of RotRight
// turns the shape's Up connector to face Right.
type Rotation uint8

const (
	RotUp Rotation = iota
	RotRight
	RotDown
	RotLeft
)

// NumRotations is the number of distinct rotations.
const NumRotations = 4

// Rotations lists all rotations in order.
var Rotations = [NumRotations]Rotation{RotUp, RotRight, RotDown, RotLeft}

// String returns the string representation of a rotation.
func (r Rotation) String() string {
	return Direction(r).String()
}

// Shape is a pipe segment type.
type Shape uint8

const (
	ShapeNone Shape = iota // Empty tile
	ShapeQ                 // Dead end: one connector
	ShapeI                 // Straight: two opposite connectors
	ShapeL                 // Corner: two adjacent connectors
	ShapeT                 // Tee: three connectors
	ShapeX                 // Cross: four connectors
)

// NumShapes is the number of shapes, None included.
const NumShapes = 6

// Shapes lists all shapes in ordinal order.
var Shapes = [NumShapes]Shape{ShapeNone, ShapeQ, ShapeI, ShapeL, ShapeT, ShapeX}

// String returns the string representation of a shape.
func (s Shape) String() string {
	switch s {
	case ShapeNone:
		return "None"
	case ShapeQ:
		return "Q"
	case ShapeI:
		return "I"
	case ShapeL:
		return "L"
	case ShapeT:
		return "T"
	case ShapeX:
		return "X"
	default:
		return fmt.Sprintf("Shape(%d)", uint8(s))
	}
}

// Valid reports whether s is a known shape.
func (s Shape) Valid() bool {
	return s < NumShapes
}

// Coord is a tile position. X grows to the right, Y grows downward.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Step returns the coordinate one tile away in direction d.
func (c Coord) Step(d Direction) Coord {
	dx, dy := offsets[d&3][0], offsets[d&3][1]
	return Coord{X: c.X + dx, Y: c.Y + dy}
}
