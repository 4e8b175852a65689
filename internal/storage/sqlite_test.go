package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore("looper", 42); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("looper")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 42 {
		t.Errorf("Expected 42 after reopen, got %d", high)
	}
}

func TestStoreTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 50, 200} {
		if _, err := store.SaveScore("looper", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("looper_pack", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("looper", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	want := []int{200, 100, 50}
	if len(scores) != len(want) {
		t.Fatalf("Expected %d scores, got %d", len(want), len(scores))
	}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, w)
		}
		if scores[i].GameID != "looper" {
			t.Errorf("scores[%d] belongs to %q", i, scores[i].GameID)
		}
	}

	limited, err := store.TopScores("looper", 2)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("Expected 2 scores with limit, got %d", len(limited))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("looper")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty table, got %d", high)
	}

	store.SaveScore("looper", 30)
	store.SaveScore("looper", 70)

	high, err = store.HighScore("looper")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 70 {
		t.Errorf("Expected 70, got %d", high)
	}
}

func TestStoreSolves(t *testing.T) {
	store := openTestStore(t)

	solves := []Solve{
		{GameID: "looper", Width: 7, Height: 13, Fill: 1, Seed: 1, Moves: 80, Duration: 95 * time.Second, Score: 900},
		{GameID: "looper_pack", LevelID: "02_ring", Width: 2, Height: 2, Fill: 1, Moves: 4, Duration: 3 * time.Second, Score: 36},
		{GameID: "looper", Player: "alice", Width: 5, Height: 5, Fill: 0.6, Seed: 9, Moves: 20, Duration: 1500 * time.Millisecond, Score: 150},
	}
	for _, s := range solves {
		if _, err := store.SaveSolve(s); err != nil {
			t.Fatalf("SaveSolve() failed: %v", err)
		}
	}

	recent, err := store.RecentSolves("looper", 10)
	if err != nil {
		t.Fatalf("RecentSolves() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 looper solves, got %d", len(recent))
	}
	// Newest first
	if recent[0].Player != "alice" || recent[0].Seed != 9 {
		t.Errorf("unexpected newest solve %+v", recent[0])
	}
	if recent[0].Duration != 1500*time.Millisecond {
		t.Errorf("Duration = %v, expected 1.5s", recent[0].Duration)
	}
	if recent[0].Fill != 0.6 {
		t.Errorf("Fill = %v, expected 0.6", recent[0].Fill)
	}

	all, err := store.RecentSolves("", 10)
	if err != nil {
		t.Fatalf("RecentSolves() failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Expected 3 solves across games, got %d", len(all))
	}
	if all[1].LevelID != "02_ring" {
		t.Errorf("Expected pack solve in the middle, got %+v", all[1])
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("looper", 100)
	store.SaveScore("looper", 300)
	store.SaveSolve(Solve{GameID: "looper", Width: 3, Height: 3, Fill: 1, Moves: 10, Duration: 20 * time.Second, Score: 100})
	store.SaveSolve(Solve{GameID: "looper", Width: 3, Height: 3, Fill: 1, Moves: 30, Duration: 8 * time.Second, Score: 300})

	stats, err := store.GetGameStats("looper")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.TotalScore != 400 {
		t.Errorf("unexpected score stats %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, expected 200", stats.AvgScore)
	}
	if stats.Solves != 2 || stats.AvgMoves != 20 {
		t.Errorf("unexpected solve stats %+v", stats)
	}
	if stats.Fastest != 8*time.Second {
		t.Errorf("Fastest = %v, expected 8s", stats.Fastest)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 1 || all["looper"] == nil {
		t.Errorf("unexpected all-games stats %v", all)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("looper", 100)
	store.SaveScore("looper_pack", 50)
	store.SaveSolve(Solve{GameID: "looper", Width: 2, Height: 1, Fill: 1, Moves: 2, Score: 100})

	if err := store.ClearScores("looper"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("looper", 10)
	if len(scores) != 0 {
		t.Errorf("Expected no looper scores, got %d", len(scores))
	}
	solves, _ := store.RecentSolves("looper", 10)
	if len(solves) != 0 {
		t.Errorf("Expected no looper solves, got %d", len(solves))
	}

	other, _ := store.TopScores("looper_pack", 10)
	if len(other) != 1 {
		t.Errorf("ClearScores touched another game: %d scores left", len(other))
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.looper/test.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".looper", "test.db")); err != nil {
		t.Errorf("Database not created under home: %v", err)
	}
}
