package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/looper/internal/core"
	"github.com/vovakirdan/looper/internal/storage"
)

// stubGame solves on the first Rotate and counts resizes.
type stubGame struct {
	solved  bool
	resets  int
	resized [2]int
}

func (g *stubGame) ID() string { return "stub" }
func (g *stubGame) Title() string { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) { g.resets++; g.solved = false }
func (g *stubGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "stub") }
func (g *stubGame) Resize(w, h int) { g.resized = [2]int{w, h} }
func (g *stubGame) State() core.GameState { return core.GameState{Score: g.score(), GameOver: g.solved} }
func (g *stubGame) score() int {
	if g.solved {
		return 50
	}
	return 0
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionNewLevel) {
		g.solved = false
	}
	if in.Has(core.ActionRotate) && !g.solved {
		g.solved = true
		return core.StepResult{
			State: g.State(),
			Solved: &core.SolveReport{
				Width: 3, Height: 2, Fill: 1, Seed: 77, Moves: 4,
				Duration: 2 * time.Second, Score: 50,
			},
		}
	}
	return core.StepResult{State: g.State()}
}

func newTestModel(t *testing.T) (GameModel, *stubGame, *storage.Store) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	game := &stubGame{}
	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 30, Seed: 1, Player: "alice"}
	m := NewGameModel(game, store, nil, cfg)
	m.Init()
	return m, game, store
}

func update(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm
}

func TestGameModelRecordsSolve(t *testing.T) {
	m, _, store := newTestModel(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, TickMsg(time.Now()))
	// Further ticks while the level is over must not save again.
	m = update(t, m, TickMsg(time.Now()))

	scores, err := store.TopScores("stub", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 50 {
		t.Errorf("expected one score of 50, got %+v", scores)
	}

	solves, err := store.RecentSolves("stub", 10)
	if err != nil {
		t.Fatalf("RecentSolves() failed: %v", err)
	}
	if len(solves) != 1 {
		t.Fatalf("expected one solve, got %d", len(solves))
	}
	s := solves[0]
	if s.Player != "alice" || s.Seed != 77 || s.Moves != 4 || s.Duration != 2*time.Second {
		t.Errorf("unexpected solve %+v", s)
	}

	// A new level re-arms score saving.
	m = update(t, m, runeKey('n'))
	m = update(t, m, TickMsg(time.Now()))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	update(t, m, TickMsg(time.Now()))

	scores, _ = store.TopScores("stub", 10)
	if len(scores) != 2 {
		t.Errorf("expected two scores after second solve, got %d", len(scores))
	}
}

func TestGameModelBackAndQuit(t *testing.T) {
	m, _, _ := newTestModel(t)

	back := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !back.BackToMenu() || back.IsQuitting() {
		t.Error("esc should go back to the menu")
	}

	quit := update(t, m, runeKey('q'))
	if !quit.IsQuitting() {
		t.Error("q should quit")
	}
	if quit.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestGameModelResizeKeepsGame(t *testing.T) {
	m, game, _ := newTestModel(t)
	resets := game.resets

	update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if game.resized != [2]int{100, 30} {
		t.Errorf("game not resized: %v", game.resized)
	}
	if game.resets != resets {
		t.Error("resizable game should not be reset")
	}
}

func TestStandaloneBackQuits(t *testing.T) {
	m, _, _ := newTestModel(t)
	sm := standaloneModel{m}

	next, cmd := sm.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("back in a standalone game should quit the program")
	}
	if !next.(standaloneModel).BackToMenu() {
		t.Error("expected back flag")
	}
}
