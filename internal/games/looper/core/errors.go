package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDirection is returned for a Direction outside Up..Left.
	ErrInvalidDirection = errors.New("invalid direction")

	// ErrInvalidSize is returned when a level is requested with a
	// non-positive width or height.
	ErrInvalidSize = errors.New("invalid level size")

	// ErrInvalidFill is returned when the fill fraction is outside (0, 1].
	ErrInvalidFill = errors.New("invalid fill fraction")

	// ErrGenerationStalled is returned when every growth pass opened nothing.
	ErrGenerationStalled = errors.New("level generation stalled")
)

// FormatError reports a malformed textual level encoding.
// Line and Column are 1-based; Column is 0 when the whole line is at fault.
type FormatError struct {
	Line    int
	Column  int
	Message string
}

func (e *FormatError) Error() string {
	if e.Column > 0 {
		return fmt.Sprintf("level format: line %d, cell %d: %s", e.Line, e.Column, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("level format: line %d: %s", e.Line, e.Message)
	}
	return "level format: " + e.Message
}

// InternalConsistencyError means a connector mask matched no shape.
// Only reachable through a generator defect.
type InternalConsistencyError struct {
	Mask Mask
	At   Coord
}

func (e *InternalConsistencyError) Error() string {
	return fmt.Sprintf("internal consistency: no shape matches connectors %s at %s", e.Mask, e.At)
}
