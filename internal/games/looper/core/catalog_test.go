package core_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/looper/internal/games/looper/core"
)

func TestConnectorMaskCanonical(t *testing.T) {
	tests := []struct {
		shape core.Shape
		want  core.Mask
	}{
		{core.ShapeNone, core.Mask{false, false, false, false}},
		{core.ShapeQ, core.Mask{true, false, false, false}},
		{core.ShapeI, core.Mask{true, false, true, false}},
		{core.ShapeL, core.Mask{true, true, false, false}},
		{core.ShapeT, core.Mask{true, true, true, false}},
		{core.ShapeX, core.Mask{true, true, true, true}},
	}

	for _, tt := range tests {
		t.Run(tt.shape.String(), func(t *testing.T) {
			got := core.ConnectorMask(tt.shape, core.RotUp)
			if got != tt.want {
				t.Errorf("ConnectorMask(%v, Up) = %v, want %v", tt.shape, got, tt.want)
			}
		})
	}
}

func TestConnectorMaskRotated(t *testing.T) {
	tests := []struct {
		name     string
		shape    core.Shape
		rotation core.Rotation
		want     string
	}{
		{"Q right", core.ShapeQ, core.RotRight, ".R.."},
		{"Q left", core.ShapeQ, core.RotLeft, "...L"},
		{"I right", core.ShapeI, core.RotRight, ".R.L"},
		{"L down", core.ShapeL, core.RotDown, "..DL"},
		{"L left", core.ShapeL, core.RotLeft, "U..L"},
		{"T right", core.ShapeT, core.RotRight, ".RDL"},
		{"X down", core.ShapeX, core.RotDown, "URDL"},
		{"None left", core.ShapeNone, core.RotLeft, "...."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := core.ConnectorMask(tt.shape, tt.rotation).String()
			if got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestConnectorMaskUnknownShape(t *testing.T) {
	if m := core.ConnectorMask(core.Shape(42), core.RotRight); m.Count() != 0 {
		t.Errorf("unknown shape should have no connectors, got %v", m)
	}
}

func TestRotationCycle(t *testing.T) {
	for _, s := range core.Shapes {
		for _, r := range core.Rotations {
			if core.ShiftRotation(r, 4) != r {
				t.Errorf("shift by 4 should be identity for %v", r)
			}
			if core.ConnectorMask(s, core.ShiftRotation(r, 4)) != core.ConnectorMask(s, r) {
				t.Errorf("%v at %v: mask changed after a full turn", s, r)
			}
		}
	}
}

func TestShiftRotationNegative(t *testing.T) {
	tests := []struct {
		r    core.Rotation
		k    int
		want core.Rotation
	}{
		{core.RotUp, -1, core.RotLeft},
		{core.RotRight, -2, core.RotLeft},
		{core.RotDown, -7, core.RotLeft},
		{core.RotLeft, 5, core.RotUp},
		{core.RotUp, 0, core.RotUp},
	}

	for _, tt := range tests {
		if got := core.ShiftRotation(tt.r, tt.k); got != tt.want {
			t.Errorf("ShiftRotation(%v, %d) = %v, want %v", tt.r, tt.k, got, tt.want)
		}
	}
}

func TestOpposite(t *testing.T) {
	pairs := map[core.Direction]core.Direction{
		core.DirUp:    core.DirDown,
		core.DirRight: core.DirLeft,
		core.DirDown:  core.DirUp,
		core.DirLeft:  core.DirRight,
	}
	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("%v.Opposite() = %v, want %v", d, got, want)
		}
	}
}

func TestDirectionOffset(t *testing.T) {
	tests := []struct {
		d      core.Direction
		dx, dy int
	}{
		{core.DirUp, 0, -1},
		{core.DirRight, 1, 0},
		{core.DirDown, 0, 1},
		{core.DirLeft, -1, 0},
	}
	for _, tt := range tests {
		dx, dy, err := core.DirectionOffset(tt.d)
		if err != nil {
			t.Fatalf("DirectionOffset(%v) failed: %v", tt.d, err)
		}
		if dx != tt.dx || dy != tt.dy {
			t.Errorf("DirectionOffset(%v) = (%d,%d), want (%d,%d)", tt.d, dx, dy, tt.dx, tt.dy)
		}
	}

	_, _, err := core.DirectionOffset(core.Direction(7))
	if !errors.Is(err, core.ErrInvalidDirection) {
		t.Errorf("expected ErrInvalidDirection, got %v", err)
	}
}

func TestShapesEqual(t *testing.T) {
	if !core.ShapesEqual(core.ShapeI, core.RotUp, core.RotDown) {
		t.Error("I should look the same at Up and Down")
	}
	if core.ShapesEqual(core.ShapeI, core.RotUp, core.RotRight) {
		t.Error("I should differ between Up and Right")
	}
	for _, a := range core.Rotations {
		for _, b := range core.Rotations {
			if !core.ShapesEqual(core.ShapeX, a, b) {
				t.Errorf("X should be rotation invariant (%v vs %v)", a, b)
			}
			if !core.ShapesEqual(core.ShapeNone, a, b) {
				t.Errorf("None should be rotation invariant (%v vs %v)", a, b)
			}
			if a != b && core.ShapesEqual(core.ShapeL, a, b) {
				t.Errorf("L should differ between %v and %v", a, b)
			}
		}
	}
}

func TestCanonicalizeRoundTrip(t *testing.T) {
	for _, s := range core.Shapes {
		for _, r := range core.Rotations {
			m := core.ConnectorMask(s, r)
			gotS, gotR, err := core.Canonicalize(m)
			if err != nil {
				t.Fatalf("Canonicalize(%v) failed: %v", m, err)
			}
			if gotS != s {
				t.Errorf("Canonicalize(%v) shape = %v, want %v", m, gotS, s)
			}
			if core.ConnectorMask(gotS, gotR) != m {
				t.Errorf("Canonicalize(%v) = %v/%v does not reproduce the mask", m, gotS, gotR)
			}
		}
	}
}

func TestCanonicalizeLowestRotation(t *testing.T) {
	tests := []struct {
		mask  core.Mask
		shape core.Shape
		rot   core.Rotation
	}{
		{core.Mask{true, false, true, false}, core.ShapeI, core.RotUp},
		{core.Mask{false, true, false, true}, core.ShapeI, core.RotRight},
		{core.Mask{true, true, true, true}, core.ShapeX, core.RotUp},
		{core.Mask{}, core.ShapeNone, core.RotUp},
	}
	for _, tt := range tests {
		s, r, err := core.Canonicalize(tt.mask)
		if err != nil {
			t.Fatalf("Canonicalize(%v) failed: %v", tt.mask, err)
		}
		if s != tt.shape || r != tt.rot {
			t.Errorf("Canonicalize(%v) = %v/%v, want %v/%v", tt.mask, s, r, tt.shape, tt.rot)
		}
	}
}

func TestDistinctRotations(t *testing.T) {
	want := map[core.Shape]int{
		core.ShapeNone: 1,
		core.ShapeQ:    4,
		core.ShapeI:    2,
		core.ShapeL:    4,
		core.ShapeT:    4,
		core.ShapeX:    1,
	}
	for s, n := range want {
		if got := core.DistinctRotations(s); got != n {
			t.Errorf("DistinctRotations(%v) = %d, want %d", s, got, n)
		}
	}
}
