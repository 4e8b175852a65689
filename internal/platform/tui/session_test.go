package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/looper/internal/core"
	"github.com/vovakirdan/looper/internal/games/looper"
)

func newSession(t *testing.T) SessionModel {
	t.Helper()
	cfg := core.RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 30, Player: "bob"}
	return NewSessionModel(nil, nil, cfg)
}

func send(t *testing.T, m SessionModel, msgs ...tea.Msg) SessionModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		sm, ok := next.(SessionModel)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
		m = sm
	}
	return m
}

func TestSessionMenuListsModes(t *testing.T) {
	m := newSession(t)

	view := m.View()
	for _, title := range []string{"Looper", "Looper: Level Pack"} {
		if !strings.Contains(view, title) {
			t.Errorf("menu missing %q", title)
		}
	}
}

func TestSessionScoreboardRoundTrip(t *testing.T) {
	m := newSession(t)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScoreboard {
		t.Fatalf("tab should open the scoreboard, screen = %v", m.screen)
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Error("scoreboard view missing title")
	}

	m = send(t, m, runeKey('v'))
	if !strings.Contains(m.View(), "SOLVE HISTORY") {
		t.Error("v should switch to solve history")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Errorf("esc should return to the menu, screen = %v", m.screen)
	}
	if m.quitting {
		t.Error("going back must not quit the session")
	}
}

func TestSessionPackPickerStartsLevel(t *testing.T) {
	m := newSession(t)

	// Menu is sorted by ID: looper, looper_pack.
	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenPack {
		t.Fatalf("selecting the pack should open the level picker, screen = %v", m.screen)
	}
	if !strings.Contains(m.View(), "Ring") {
		t.Error("level picker missing built-in level names")
	}

	// Row 0 starts from the beginning; row 2 is the second level.
	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame || m.gameModel == nil {
		t.Fatalf("expected a running game, screen = %v", m.screen)
	}

	g, ok := m.gameModel.game.(*looper.Game)
	if !ok {
		t.Fatalf("unexpected game type %T", m.gameModel.game)
	}
	if g.ID() != looper.PackID {
		t.Errorf("game = %q, expected %q", g.ID(), looper.PackID)
	}
	if p := g.Puzzle(); p == nil || p.Width() != 2 || p.Height() != 2 {
		t.Error("expected the 2x2 ring level")
	}

	m = send(t, m, runeKey('b'))
	if m.screen != screenMenu {
		t.Errorf("b should return to the menu, screen = %v", m.screen)
	}
}

func TestSessionQuit(t *testing.T) {
	m := newSession(t)
	m = send(t, m, runeKey('q'))
	if !m.quitting || m.View() != "" {
		t.Error("q should end the session")
	}
}

func TestMenuWrapsAndDescribesModes(t *testing.T) {
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 100, ScreenH: 30})

	if !strings.Contains(m.View(), modeBlurbs[looper.EndlessID]) {
		t.Error("menu should describe the highlighted mode")
	}
	if !strings.Contains(m.View(), "scores") {
		t.Error("menu help should list the scoreboard key")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(MenuModel)
	if got := m.items[m.cursor].GameID; got != looper.PackID {
		t.Errorf("up from the first item should wrap to the last, got %q", got)
	}
	if !strings.Contains(m.View(), modeBlurbs[looper.PackID]) {
		t.Error("description should follow the cursor")
	}
}
