package resultstore

import (
	"testing"
	"time"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	// Use in-memory database for tests
	database := &DB{path: ":memory:"}
	var err error
	database.DB, err = openDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := database.InitSchema(); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}

	return database
}

func TestRecordRun(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	runID, err := db.RecordRun(Run{
		AnalysisType:  "sentiment",
		Duration:      1200 * time.Millisecond,
		FilesWalked:   12,
		FilesFailed:   1,
		RecordsSeen:   480,
		RecordsMapped: 455,
		OutputPath:    "analysis_results/sentiment_analysis.json",
		Summary:       "41 days analyzed",
	})
	if err != nil {
		t.Fatalf("RecordRun() error = %v", err)
	}
	if runID == 0 {
		t.Fatal("RecordRun() returned 0 run ID")
	}

	got, err := db.GetRun(runID)
	if err != nil {
		t.Fatalf("GetRun() error = %v", err)
	}
	if got.AnalysisType != "sentiment" {
		t.Errorf("run.AnalysisType = %q, want %q", got.AnalysisType, "sentiment")
	}
	if got.Duration != 1200*time.Millisecond {
		t.Errorf("run.Duration = %v, want 1.2s", got.Duration)
	}
	if got.FilesWalked != 12 || got.FilesFailed != 1 {
		t.Errorf("run file counts = %d/%d, want 12/1", got.FilesWalked, got.FilesFailed)
	}
	if got.RecordsSeen != 480 || got.RecordsMapped != 455 {
		t.Errorf("run record counts = %d/%d, want 480/455", got.RecordsSeen, got.RecordsMapped)
	}
	if got.Summary != "41 days analyzed" {
		t.Errorf("run.Summary = %q", got.Summary)
	}
}

func TestGetRunNotFound(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if _, err := db.GetRun(99); err == nil {
		t.Error("GetRun() expected error for missing run")
	}
}

func TestListRuns(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	for _, typ := range []string{"sentiment", "hashtags", "geography"} {
		if _, err := db.RecordRun(Run{AnalysisType: typ, OutputPath: "out.json"}); err != nil {
			t.Fatalf("RecordRun() error = %v", err)
		}
	}

	runs, err := db.ListRuns(0)
	if err != nil {
		t.Fatalf("ListRuns() error = %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("ListRuns() returned %d runs, want 3", len(runs))
	}
	if runs[0].AnalysisType != "geography" {
		t.Errorf("most recent run = %q, want %q", runs[0].AnalysisType, "geography")
	}
}

func TestListRunsLimit(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	for i := 0; i < 5; i++ {
		if _, err := db.RecordRun(Run{AnalysisType: "all", OutputPath: "out.json"}); err != nil {
			t.Fatalf("RecordRun() error = %v", err)
		}
	}

	runs, err := db.ListRuns(2)
	if err != nil {
		t.Fatalf("ListRuns() error = %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("ListRuns(2) returned %d runs, want 2", len(runs))
	}
}
