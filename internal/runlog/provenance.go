package runlog

import (
	"fmt"
	"time"
)

// #region types
// StageEntry is one provenance row: which pipeline stage ran for a run and
// how it ended.
type StageEntry struct {
	RunID     string
	Stage     string // "fit" | "predict" | "reweight" | "encode" | "sample" | "probe"
	Decision  string // "ok" | "error" | "leakage_detected"
	Reason    string
	CreatedAt time.Time
}

// #endregion types

// #region log-stage
// LogStage appends a provenance entry for a run.
func (s *Store) LogStage(entry StageEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.Exec(
		`INSERT INTO provenance_log (run_id, stage, decision, reason, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		entry.RunID,
		entry.Stage,
		entry.Decision,
		nullIfEmpty(entry.Reason),
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log stage: %w", err)
	}
	return nil
}

// ListStages returns a run's provenance entries in insertion order.
func (s *Store) ListStages(runID string) ([]StageEntry, error) {
	rows, err := s.db.Query(
		`SELECT run_id, stage, decision, reason, created_at
		 FROM provenance_log WHERE run_id = ? ORDER BY id`, runID,
	)
	if err != nil {
		return nil, fmt.Errorf("list stages: %w", err)
	}
	defer rows.Close()

	var entries []StageEntry
	for rows.Next() {
		var e StageEntry
		var reason *string
		var createdStr string
		if err := rows.Scan(&e.RunID, &e.Stage, &e.Decision, &reason, &createdStr); err != nil {
			return nil, fmt.Errorf("scan stage: %w", err)
		}
		if reason != nil {
			e.Reason = *reason
		}
		if t, err := time.Parse(time.RFC3339Nano, createdStr); err == nil {
			e.CreatedAt = t
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// #endregion log-stage

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
