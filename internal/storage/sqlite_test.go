package storage

import (
	"os"
	"path/filepath"
	"testing"
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
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore("classic", 7, "no_movement"); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 7 {
		t.Errorf("Expected high score 7 after reopen, got %d", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	saves := []struct {
		variant string
		score   int
		reason  string
	}{
		{"classic", 10, "out_of_bounds"},
		{"classic", 5, "no_movement"},
		{"classic", 20, "out_of_bounds"},
		{"strict", 50, "self_collision"},
	}
	for _, s := range saves {
		if _, err := store.SaveScore(s.variant, s.score, s.reason); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("classic", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 20 || scores[1].Score != 10 || scores[2].Score != 5 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	if scores[2].Reason != "no_movement" || scores[0].Variant != "classic" {
		t.Errorf("Unexpected entry fields: %+v", scores[2])
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	strict, err := store.TopScores("strict", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(strict) != 1 || strict[0].Reason != "self_collision" {
		t.Errorf("Expected 1 strict score, got %v", strict)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveScore("classic", (i+1)*10, "out_of_bounds")
	}

	scores, err := store.TopScores("classic", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 50 || scores[1].Score != 40 || scores[2].Score != 30 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limit falls back to 10
	all, err := store.TopScores("classic", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected 5 scores with default limit, got %d", len(all))
	}
}

func TestStoreTopScoresTiesKeepInsertOrder(t *testing.T) {
	store := openTestStore(t)

	first, _ := store.SaveScore("classic", 3, "no_movement")
	second, _ := store.SaveScore("classic", 3, "out_of_bounds")

	scores, err := store.TopScores("classic", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 || scores[0].ID != first || scores[1].ID != second {
		t.Errorf("Tied scores out of insert order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty variant, got %d", high)
	}

	store.SaveScore("classic", 10, "out_of_bounds")
	store.SaveScore("classic", 30, "out_of_bounds")
	store.SaveScore("classic", 20, "no_movement")

	high, err = store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 30 {
		t.Errorf("Expected high score of 30, got %d", high)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("steady")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected zero stats, got %+v", empty)
	}

	store.SaveScore("steady", 2, "no_movement")
	store.SaveScore("steady", 4, "out_of_bounds")
	store.SaveScore("classic", 100, "out_of_bounds")

	stats, err := store.Stats("steady")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 4 || stats.TotalScore != 6 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 3 {
		t.Errorf("Expected average 3, got %v", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreVariants(t *testing.T) {
	store := openTestStore(t)

	variants, err := store.Variants()
	if err != nil {
		t.Fatalf("Variants() failed: %v", err)
	}
	if len(variants) != 0 {
		t.Errorf("Expected no variants, got %v", variants)
	}

	store.SaveScore("strict", 1, "self_collision")
	store.SaveScore("classic", 2, "out_of_bounds")
	store.SaveScore("strict", 3, "out_of_bounds")

	variants, err = store.Variants()
	if err != nil {
		t.Fatalf("Variants() failed: %v", err)
	}
	if len(variants) != 2 || variants[0] != "classic" || variants[1] != "strict" {
		t.Errorf("Expected [classic strict], got %v", variants)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("classic", 10, "out_of_bounds")
	store.SaveScore("classic", 20, "out_of_bounds")
	store.SaveScore("strict", 30, "self_collision")

	if err := store.ClearScores("classic"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	classic, _ := store.TopScores("classic", 10)
	if len(classic) != 0 {
		t.Errorf("Expected 0 classic scores after clear, got %d", len(classic))
	}
	strict, _ := store.TopScores("strict", 10)
	if len(strict) != 1 {
		t.Error("Strict scores should not be affected by clearing classic")
	}

	if err := store.ClearScores(""); err != nil {
		t.Fatalf("ClearScores(\"\") failed: %v", err)
	}
	variants, _ := store.Variants()
	if len(variants) != 0 {
		t.Errorf("Expected every variant cleared, got %v", variants)
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
