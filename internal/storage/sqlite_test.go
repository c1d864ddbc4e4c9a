package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
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
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	// Save some scores
	if _, err := store.SaveScore("fishing", 100, true); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err := store.SaveScore("fishing", 50, false); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err := store.SaveScore("fishing", 200, true); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Different game
	if _, err := store.SaveScore("shapes", 500, true); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Retrieve top scores for fishing
	scores, err := store.TopScores("fishing", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in descending order: %v", scores)
	}
	if !scores[0].Won || scores[2].Won {
		t.Errorf("Won flags not preserved: %v", scores)
	}

	shapesScores, err := store.TopScores("shapes", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(shapesScores) != 1 {
		t.Errorf("Expected 1 shapes score, got %d", len(shapesScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100, false)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore("fishing")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("fishing", 100, false)
	store.SaveScore("fishing", 300, true)
	store.SaveScore("fishing", 200, false)

	high, err = store.HighScore("fishing")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("fishing", 100, false)
	store.SaveScore("fishing", 200, true)
	store.SaveScore("shapes", 300, true)

	if err := store.ClearScores("fishing"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	fishingScores, _ := store.TopScores("fishing", 10)
	if len(fishingScores) != 0 {
		t.Errorf("Expected 0 fishing scores after clear, got %d", len(fishingScores))
	}

	shapesScores, _ := store.TopScores("shapes", 10)
	if len(shapesScores) != 1 {
		t.Errorf("Shapes scores should not be affected by clearing fishing")
	}
}

func TestStoreSubmissions(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveSubmission(Submission{
		BankID:  "arithmetic-1",
		Score:   80,
		Correct: 8,
		Total:   10,
	})
	if err != nil {
		t.Fatalf("SaveSubmission() failed: %v", err)
	}

	sub, err := store.SubmissionByID(id)
	if err != nil {
		t.Fatalf("SubmissionByID() failed: %v", err)
	}
	if sub.BankID != "arithmetic-1" || sub.Score != 80 || sub.Correct != 8 || sub.Total != 10 {
		t.Errorf("submission round trip mismatch: %+v", sub)
	}

	subs, err := store.Submissions("arithmetic-1", 10)
	if err != nil {
		t.Fatalf("Submissions() failed: %v", err)
	}
	if len(subs) != 1 {
		t.Errorf("Expected 1 submission, got %d", len(subs))
	}
}

func TestStoreSubmissionNotFound(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SubmissionByID(12345)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("SubmissionByID(missing) error = %v, want ErrNotFound", err)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("fishing", 100, true)
	store.SaveScore("fishing", 50, false)
	store.SaveScore("fishing", 150, true)

	stats, err := store.GetGameStats("fishing")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 {
		t.Errorf("GamesCount = %d, want 3", stats.GamesCount)
	}
	if stats.Wins != 2 {
		t.Errorf("Wins = %d, want 2", stats.Wins)
	}
	if stats.HighScore != 150 {
		t.Errorf("HighScore = %d, want 150", stats.HighScore)
	}
	if stats.TotalScore != 300 {
		t.Errorf("TotalScore = %d, want 300", stats.TotalScore)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if _, ok := all["fishing"]; !ok {
		t.Error("GetAllGamesStats() missing fishing entry")
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	// Just verify nested directory creation works
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
