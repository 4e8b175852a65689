package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/looper/internal/core"
)

type fakeGame struct{ id string }

func (g *fakeGame) ID() string                           { return g.id }
func (g *fakeGame) Title() string                        { return "Fake " + g.id }
func (g *fakeGame) Reset(core.RuntimeConfig)             {}
func (g *fakeGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *fakeGame) Render(*core.Screen)                  {}
func (g *fakeGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("fake_a", func() Game { return &fakeGame{id: "fake_a"} })
	Register("fake_b", func() Game { return &fakeGame{id: "fake_b"} })

	if !Exists("fake_a") || !Exists("fake_b") {
		t.Fatal("registered games should exist")
	}

	g, err := Create("fake_a")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID() != "fake_a" {
		t.Errorf("Create returned %q", g.ID())
	}
	other, _ := Create("fake_a")
	if other == g {
		t.Error("Create should return a fresh instance each call")
	}

	var a, b *GameInfo
	list := List()
	for i := range list {
		if i > 0 && list[i-1].ID >= list[i].ID {
			t.Errorf("List not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
		switch list[i].ID {
		case "fake_a":
			a = &list[i]
		case "fake_b":
			b = &list[i]
		}
	}
	if a == nil || b == nil {
		t.Fatal("List is missing registered games")
	}
	if a.Title != "Fake fake_a" || b.Title != "Fake fake_b" {
		t.Errorf("unexpected titles %q, %q", a.Title, b.Title)
	}
}

func TestCreateUnknown(t *testing.T) {
	if Exists("no_such_game") {
		t.Fatal("unexpected game")
	}
	if _, err := Create("no_such_game"); !errors.Is(err, ErrUnknownGame) {
		t.Errorf("expected ErrUnknownGame, got %v", err)
	}
}

func TestRegisterPanics(t *testing.T) {
	tests := []struct {
		name string
		id   string
		f    Factory
	}{
		{"duplicate", "fake_dup", func() Game { return &fakeGame{id: "fake_dup"} }},
		{"mismatched id", "fake_wrong", func() Game { return &fakeGame{id: "other"} }},
	}
	Register("fake_dup", func() Game { return &fakeGame{id: "fake_dup"} })

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			Register(tt.id, tt.f)
		})
	}
}
