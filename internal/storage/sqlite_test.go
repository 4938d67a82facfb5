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
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	if err := store.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	// Reopening runs migrations against the existing schema
	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	store.Close()
}

func TestStoreSaveAndRetrieveScores(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 200, 50} {
		if _, err := store.SaveScore("corgi", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	store.SaveScore("other", 150)

	scores, err := store.TopScores("corgi", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, w)
		}
		if scores[i].Player != DefaultPlayer {
			t.Errorf("scores[%d].Player = %q, want %q", i, scores[i].Player, DefaultPlayer)
		}
	}

	other, err := store.TopScores("other", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("Expected 1 score for other game, got %d", len(other))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("corgi", (i+1)*10)
	}

	scores, err := store.TopScores("corgi", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 50 || scores[1].Score != 40 || scores[2].Score != 30 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limit falls back to the default
	all, err := store.TopScores("corgi", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected 5 scores with default limit, got %d", len(all))
	}
}

func TestStoreSaveRun(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{
		GameID:    "corgi",
		Player:    "alice",
		Score:     60,
		LivesLeft: 2,
		Won:       true,
		Duration:  42500 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("Expected positive ID, got %d", id)
	}

	runs, err := store.RecentRuns("corgi", 5)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected 1 run, got %d", len(runs))
	}

	r := runs[0]
	if r.ID != id || r.Player != "alice" || r.Score != 60 || r.LivesLeft != 2 || !r.Won {
		t.Errorf("unexpected run: %+v", r)
	}
	if r.Duration != 42500*time.Millisecond {
		t.Errorf("Duration = %v, want 42.5s", r.Duration)
	}
	if r.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreRecentRunsOrder(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{30, 10, 20} {
		store.SaveRun(Run{GameID: "corgi", Score: score})
	}

	runs, err := store.RecentRuns("corgi", 2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}
	// Newest first
	if runs[0].Score != 20 || runs[1].Score != 10 {
		t.Errorf("Runs not newest first: %d, %d", runs[0].Score, runs[1].Score)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("corgi")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("corgi", 10)
	store.SaveScore("corgi", 35)
	store.SaveScore("corgi", 20)

	high, err = store.HighScore("corgi")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 35 {
		t.Errorf("Expected high score of 35, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("corgi", 100)
	store.SaveScore("corgi", 200)
	store.SaveScore("other", 300)

	if err := store.ClearScores("corgi"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	corgiScores, _ := store.TopScores("corgi", 10)
	if len(corgiScores) != 0 {
		t.Errorf("Expected 0 corgi scores after clear, got %d", len(corgiScores))
	}

	otherScores, _ := store.TopScores("other", 10)
	if len(otherScores) != 1 {
		t.Errorf("Other scores should not be affected by clearing corgi")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("corgi", i*10)
	}

	scores, err := store.AllScores("corgi")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("corgi")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("unexpected stats for empty game: %+v", empty)
	}

	store.SaveRun(Run{GameID: "corgi", Score: 60, Won: true})
	store.SaveRun(Run{GameID: "corgi", Score: 20})
	store.SaveRun(Run{GameID: "corgi", Score: 40})

	stats, err := store.GetGameStats("corgi")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 {
		t.Errorf("GamesCount = %d, want 3", stats.GamesCount)
	}
	if stats.Wins != 1 {
		t.Errorf("Wins = %d, want 1", stats.Wins)
	}
	if stats.HighScore != 60 {
		t.Errorf("HighScore = %d, want 60", stats.HighScore)
	}
	if stats.AvgScore != 40 {
		t.Errorf("AvgScore = %v, want 40", stats.AvgScore)
	}
	if stats.TotalScore != 120 {
		t.Errorf("TotalScore = %d, want 120", stats.TotalScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
