package core_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/looper/internal/games/looper/core"
)

func TestParseLevel(t *testing.T) {
	text := "1 1|1 3\n"

	lvl, err := core.ParseLevel(text)
	if err != nil {
		t.Fatalf("ParseLevel failed: %v", err)
	}
	if lvl.Width != 2 || lvl.Height != 1 {
		t.Fatalf("expected 2x1, got %dx%d", lvl.Width, lvl.Height)
	}
	if lvl.Shape(0, 0) != core.ShapeQ || lvl.SolvedRotation(0, 0) != core.RotRight {
		t.Errorf("cell (0,0) = %v/%v, want Q/Right", lvl.Shape(0, 0), lvl.SolvedRotation(0, 0))
	}
	if lvl.Shape(1, 0) != core.ShapeQ || lvl.SolvedRotation(1, 0) != core.RotLeft {
		t.Errorf("cell (1,0) = %v/%v, want Q/Left", lvl.Shape(1, 0), lvl.SolvedRotation(1, 0))
	}
	if !lvl.Consistent() {
		t.Error("parsed level should be consistent")
	}
}

func TestParseLevelCRLF(t *testing.T) {
	lvl, err := core.ParseLevel("3 1|3 2\r\n3 0|3 3\r\n")
	if err != nil {
		t.Fatalf("ParseLevel failed: %v", err)
	}
	if lvl.Width != 2 || lvl.Height != 2 {
		t.Fatalf("expected 2x2, got %dx%d", lvl.Width, lvl.Height)
	}
	if !lvl.Consistent() {
		t.Error("four corners forming a ring should be consistent")
	}
}

func TestParseLevelErrors(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		line   int
		column int
	}{
		{"empty", "", 0, 0},
		{"short row", "0 0|0 0\n0 0\n", 2, 0},
		{"long row", "0 0\n0 0|0 0\n", 2, 0},
		{"missing rotation", "0 0|1\n", 1, 2},
		{"shape out of range", "6 0\n", 1, 1},
		{"rotation out of range", "1 4\n", 1, 1},
		{"not a number", "0 0|a b\n", 1, 2},
		{"extra field", "1 1 1\n", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := core.ParseLevel(tt.text)
			var fe *core.FormatError
			if !errors.As(err, &fe) {
				t.Fatalf("expected *FormatError, got %v", err)
			}
			if fe.Line != tt.line || fe.Column != tt.column {
				t.Errorf("error at line %d cell %d, want line %d cell %d (%v)",
					fe.Line, fe.Column, tt.line, tt.column, err)
			}
		})
	}
}

func TestFormatLevelRoundTrip(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		g := core.NewGenerator(rand.New(rand.NewSource(seed)))
		lvl, err := g.GenerateLevel(7, 13, 0.7)
		if err != nil {
			t.Fatalf("GenerateLevel failed: %v", err)
		}

		text := core.FormatLevel(lvl)
		back, err := core.ParseLevel(text)
		if err != nil {
			t.Fatalf("ParseLevel failed: %v", err)
		}
		if core.FormatLevel(back) != text {
			t.Errorf("seed %d: round trip changed the level", seed)
		}
		if back.Width != lvl.Width || back.Height != lvl.Height {
			t.Errorf("seed %d: size changed to %dx%d", seed, back.Width, back.Height)
		}
	}
}

func TestFormatLevel(t *testing.T) {
	lvl := core.NewLevel(2, 2)
	lvl.Set(0, 0, core.ShapeL, core.RotRight)
	lvl.Set(1, 0, core.ShapeL, core.RotDown)
	lvl.Set(0, 1, core.ShapeL, core.RotUp)
	lvl.Set(1, 1, core.ShapeL, core.RotLeft)

	want := "3 1|3 2\n3 0|3 3\n"
	if got := core.FormatLevel(lvl); got != want {
		t.Errorf("FormatLevel = %q, want %q", got, want)
	}
}
