package core_test

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/looper/internal/games/looper/core"
)

func loadPuzzle(t *testing.T, text string) *core.Puzzle {
	t.Helper()
	lvl, err := core.ParseLevel(text)
	if err != nil {
		t.Fatalf("ParseLevel failed: %v", err)
	}
	p := core.NewPuzzle(rand.New(rand.NewSource(1)), core.DefaultGenParams())
	p.Load(lvl)
	p.Solve()
	return p
}

func TestAnalyzeSolvedRing(t *testing.T) {
	p := loadPuzzle(t, "3 1|3 2\n3 0|3 3\n")

	a := core.Analyze(p)
	if len(a.Networks) != 1 {
		t.Fatalf("expected 1 network, got %d", len(a.Networks))
	}
	if !a.Networks[0].Closed() {
		t.Errorf("ring should be closed, has %d loose ends", a.Networks[0].LooseEnds)
	}
	if a.Progress() != 1 {
		t.Errorf("expected progress 1, got %v", a.Progress())
	}
	if len(a.Networks[0].Tiles) != 4 {
		t.Errorf("expected 4 tiles, got %d", len(a.Networks[0].Tiles))
	}
}

func TestAnalyzeBrokenRing(t *testing.T) {
	p := loadPuzzle(t, "3 1|3 2\n3 0|3 3\n")
	p.Rotate(1, 1)

	a := core.Analyze(p)
	if a.LooseEnds == 0 {
		t.Error("expected loose ends after turning a corner away")
	}
	if a.IsSmooth(core.C(1, 1)) {
		t.Error("turned tile should not be smooth")
	}
	if a.Smooth >= a.Tiles {
		t.Errorf("expected some rough tiles, smooth %d of %d", a.Smooth, a.Tiles)
	}
	if a.Progress() >= 1 {
		t.Errorf("progress should drop below 1, got %v", a.Progress())
	}
}

func TestAnalyzeSeparateNetworks(t *testing.T) {
	// Two facing Q pairs separated by an empty column.
	p := loadPuzzle(t, "1 1|1 3|0 0|1 1|1 3\n")

	a := core.Analyze(p)
	if len(a.Networks) != 2 {
		t.Fatalf("expected 2 networks, got %d", len(a.Networks))
	}
	if !a.InNetwork(core.C(0, 0), core.C(1, 0)) {
		t.Error("(0,0) and (1,0) should share a network")
	}
	if a.InNetwork(core.C(1, 0), core.C(3, 0)) {
		t.Error("(1,0) and (3,0) should be in different networks")
	}
	if _, ok := a.NetworkAt(core.C(2, 0)); ok {
		t.Error("empty tile should belong to no network")
	}
	if !a.IsSmooth(core.C(2, 0)) {
		t.Error("empty tile with no incoming connectors is smooth")
	}
}

func TestAnalyzeMatchesIsSolved(t *testing.T) {
	for seed := int64(1); seed <= 15; seed++ {
		p := core.NewPuzzle(rand.New(rand.NewSource(seed)), core.GenParams{Width: 6, Height: 5, Fill: 0.8})
		if err := p.NewLevel(); err != nil {
			t.Fatalf("NewLevel failed: %v", err)
		}

		a := core.Analyze(p)
		if p.IsSolved() != (a.Smooth == a.Tiles) {
			t.Errorf("seed %d: IsSolved=%v but smooth %d of %d", seed, p.IsSolved(), a.Smooth, a.Tiles)
		}

		p.Solve()
		a = core.Analyze(p)
		if a.LooseEnds != 0 || a.Smooth != a.Tiles {
			t.Errorf("seed %d: solved board has %d loose ends, smooth %d of %d",
				seed, a.LooseEnds, a.Smooth, a.Tiles)
		}
	}
}
