package resultstore

import (
	"database/sql"
	"fmt"
	"time"
)

// Run records one analysis invocation
type Run struct {
	RunID         int64
	AnalysisType  string
	StartedAt     time.Time
	Duration      time.Duration
	FilesWalked   int
	FilesFailed   int
	RecordsSeen   int
	RecordsMapped int
	OutputPath    string
	Summary       string
}

// RecordRun inserts a run record and returns its ID
func (db *DB) RecordRun(r Run) (int64, error) {
	result, err := db.Exec(`
		INSERT INTO runs (analysis_type, duration_ms, files_walked, files_failed,
		                  records_seen, records_mapped, output_path, summary)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, r.AnalysisType, r.Duration.Milliseconds(), r.FilesWalked, r.FilesFailed,
		r.RecordsSeen, r.RecordsMapped, r.OutputPath, r.Summary)
	if err != nil {
		return 0, fmt.Errorf("failed to record run: %w", err)
	}

	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}

	return runID, nil
}

// GetRun retrieves a run by its ID
func (db *DB) GetRun(runID int64) (*Run, error) {
	var r Run
	var durationMs int64
	var summary sql.NullString
	err := db.QueryRow(`
		SELECT run_id, analysis_type, started_at, duration_ms, files_walked,
		       files_failed, records_seen, records_mapped, output_path, summary
		FROM runs
		WHERE run_id = ?
	`, runID).Scan(
		&r.RunID,
		&r.AnalysisType,
		&r.StartedAt,
		&durationMs,
		&r.FilesWalked,
		&r.FilesFailed,
		&r.RecordsSeen,
		&r.RecordsMapped,
		&r.OutputPath,
		&summary,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run %d not found", runID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	r.Duration = time.Duration(durationMs) * time.Millisecond
	if summary.Valid {
		r.Summary = summary.String
	}
	return &r, nil
}

// ListRuns retrieves runs ordered by most recent first
func (db *DB) ListRuns(limit int) ([]Run, error) {
	query := `
		SELECT run_id, analysis_type, started_at, duration_ms, files_walked,
		       files_failed, records_seen, records_mapped, output_path, summary
		FROM runs
		ORDER BY started_at DESC, run_id DESC
	`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var durationMs int64
		var summary sql.NullString
		if err := rows.Scan(&r.RunID, &r.AnalysisType, &r.StartedAt, &durationMs,
			&r.FilesWalked, &r.FilesFailed, &r.RecordsSeen, &r.RecordsMapped,
			&r.OutputPath, &summary); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		r.Duration = time.Duration(durationMs) * time.Millisecond
		if summary.Valid {
			r.Summary = summary.String
		}
		runs = append(runs, r)
	}

	return runs, nil
}
