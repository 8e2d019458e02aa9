package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveRun(RunRecord{Chapter: 1, Grade: "F", Runner1: "A", Runner2: "B"}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("Expected 1 run after reopen, got %d", len(runs))
	}
}

func TestSaveAndRecentRuns(t *testing.T) {
	store := openTestStore(t)

	records := []RunRecord{
		{Chapter: 1, Grade: "F", GradeRank: 0, ElapsedSecs: 12, Score: 3, Runner1: "A", Runner2: "B", FinishedBy: "B"},
		{Chapter: 1, Grade: "A", GradeRank: 5, Cleared: true, ElapsedSecs: 46, Score: 20, Runner1: "A", Runner2: "B", FinishedBy: "A"},
		{Chapter: 2, Grade: "D", GradeRank: 1, ElapsedSecs: 8, Score: 1, Runner1: "C", Runner2: "F", FinishedBy: "F"},
	}
	for _, r := range records {
		id, err := store.SaveRun(r)
		if err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
		if id <= 0 {
			t.Errorf("SaveRun() returned id %d", id)
		}
	}

	runs, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}
	if runs[0].Chapter != 2 || runs[0].Runner1 != "C" || runs[0].FinishedBy != "F" {
		t.Errorf("Expected newest run first, got %+v", runs[0])
	}
	if !runs[1].Cleared || runs[1].Grade != "A" || runs[1].ElapsedSecs != 46 {
		t.Errorf("Unexpected second run: %+v", runs[1])
	}
	if runs[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not populated")
	}
}

func TestBestRuns(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []RunRecord{
		{Chapter: 3, Grade: "B", GradeRank: 3, Score: 50, ElapsedSecs: 20, Runner1: "A", Runner2: "B"},
		{Chapter: 3, Grade: "A+", GradeRank: 6, Score: 10, ElapsedSecs: 46, Cleared: true, Runner1: "A", Runner2: "B"},
		{Chapter: 3, Grade: "B", GradeRank: 3, Score: 70, ElapsedSecs: 25, Runner1: "A", Runner2: "B"},
		{Chapter: 1, Grade: "A", GradeRank: 5, Score: 99, ElapsedSecs: 46, Cleared: true, Runner1: "A", Runner2: "B"},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.BestRuns(3, 10)
	if err != nil {
		t.Fatalf("BestRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs for chapter 3, got %d", len(runs))
	}
	expected := []struct {
		grade string
		score int
	}{{"A+", 10}, {"B", 70}, {"B", 50}}
	for i, e := range expected {
		if runs[i].Grade != e.grade || runs[i].Score != e.score {
			t.Errorf("runs[%d] = %s/%d, expected %s/%d", i, runs[i].Grade, runs[i].Score, e.grade, e.score)
		}
	}

	empty, err := store.BestRuns(2, 10)
	if err != nil {
		t.Fatalf("BestRuns() failed: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("Expected no runs for chapter 2, got %d", len(empty))
	}
}

func TestChapterStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.ChapterStats(1)
	if err != nil {
		t.Fatalf("ChapterStats() failed: %v", err)
	}
	if stats.Attempts != 0 || stats.BestGrade != "" || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	for _, r := range []RunRecord{
		{Chapter: 1, Grade: "F", GradeRank: 0, Score: 4, ElapsedSecs: 30, Runner1: "A", Runner2: "B"},
		{Chapter: 1, Grade: "A", GradeRank: 5, Score: 9, ElapsedSecs: 46, Cleared: true, Runner1: "A", Runner2: "B"},
		{Chapter: 1, Grade: "F", GradeRank: 0, Score: 12, ElapsedSecs: 5, Runner1: "A", Runner2: "B"},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	stats, err = store.ChapterStats(1)
	if err != nil {
		t.Fatalf("ChapterStats() failed: %v", err)
	}
	if stats.Attempts != 3 {
		t.Errorf("Attempts = %d, expected 3", stats.Attempts)
	}
	if stats.Clears != 1 {
		t.Errorf("Clears = %d, expected 1", stats.Clears)
	}
	if stats.BestGrade != "A" {
		t.Errorf("BestGrade = %q, expected A", stats.BestGrade)
	}
	if stats.HighScore != 12 {
		t.Errorf("HighScore = %d, expected 12", stats.HighScore)
	}
	if stats.LongestRun != 46 {
		t.Errorf("LongestRun = %d, expected 46", stats.LongestRun)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed was not populated")
	}
}

func TestClearRuns(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveRun(RunRecord{Chapter: 1, Grade: "F", Runner1: "A", Runner2: "B"}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("Expected no runs after clear, got %d", len(runs))
	}
}
