// Package runlog persists evaluation runs: the encoded record matrix each
// prediction pass produced, plus a provenance trail of pipeline stages.
package runlog

import (
	"database/sql"
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/mat"
	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id      TEXT PRIMARY KEY,
	n_targets   INTEGER NOT NULL,
	components  INTEGER NOT NULL,
	created_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS records (
	run_id      TEXT PRIMARY KEY,
	rows        INTEGER NOT NULL,
	cols        INTEGER NOT NULL,
	data        BLOB NOT NULL,
	FOREIGN KEY (run_id) REFERENCES runs(run_id)
);

CREATE TABLE IF NOT EXISTS provenance_log (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id      TEXT NOT NULL,
	stage       TEXT NOT NULL,
	decision    TEXT NOT NULL,
	reason      TEXT,
	created_at  TEXT NOT NULL,
	FOREIGN KEY (run_id) REFERENCES runs(run_id)
);
`

// #endregion schema

// #region types
// RunRecord identifies one evaluation run.
type RunRecord struct {
	RunID      string
	NTargets   int
	Components int
	CreatedAt  time.Time
}

// #endregion types

// #region store-struct
// Store manages evaluation runs in SQLite.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// #endregion constructor

// #region close
// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// #endregion close

// #region create-run
// CreateRun registers a new evaluation run and returns its record.
func (s *Store) CreateRun(nTargets, components int) (RunRecord, error) {
	rec := RunRecord{
		RunID:      uuid.New().String(),
		NTargets:   nTargets,
		Components: components,
		CreatedAt:  time.Now().UTC(),
	}
	_, err := s.db.Exec(
		`INSERT INTO runs (run_id, n_targets, components, created_at) VALUES (?, ?, ?, ?)`,
		rec.RunID, rec.NTargets, rec.Components, rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return RunRecord{}, fmt.Errorf("insert run: %w", err)
	}
	return rec, nil
}

// GetRun returns one run by id.
func (s *Store) GetRun(runID string) (RunRecord, error) {
	var rec RunRecord
	var createdStr string
	err := s.db.QueryRow(
		`SELECT run_id, n_targets, components, created_at FROM runs WHERE run_id = ?`, runID,
	).Scan(&rec.RunID, &rec.NTargets, &rec.Components, &createdStr)
	if err != nil {
		return RunRecord{}, fmt.Errorf("get run %s: %w", runID, err)
	}
	if t, err := time.Parse(time.RFC3339Nano, createdStr); err == nil {
		rec.CreatedAt = t
	}
	return rec, nil
}

// #endregion create-run

// #region records
// SaveRecords stores the encoded record matrix of a run.
func (s *Store) SaveRecords(runID string, rec *mat.Dense) error {
	rows, cols := rec.Dims()
	_, err := s.db.Exec(
		`INSERT INTO records (run_id, rows, cols, data) VALUES (?, ?, ?, ?)
		 ON CONFLICT(run_id) DO UPDATE SET rows = excluded.rows, cols = excluded.cols, data = excluded.data`,
		runID, rows, cols, encodeMatrix(rec),
	)
	if err != nil {
		return fmt.Errorf("save records: %w", err)
	}
	return nil
}

// LoadRecords restores the record matrix of a run.
func (s *Store) LoadRecords(runID string) (*mat.Dense, error) {
	var rows, cols int
	var blob []byte
	err := s.db.QueryRow(
		`SELECT rows, cols, data FROM records WHERE run_id = ?`, runID,
	).Scan(&rows, &cols, &blob)
	if err != nil {
		return nil, fmt.Errorf("load records: %w", err)
	}
	if len(blob) != rows*cols*8 {
		return nil, fmt.Errorf("load records: blob holds %d bytes, want %d", len(blob), rows*cols*8)
	}
	return decodeMatrix(rows, cols, blob), nil
}

// #endregion records

// #region list-runs
// ListRuns returns the most recent runs.
func (s *Store) ListRuns(limit int) ([]RunRecord, error) {
	rows, err := s.db.Query(
		`SELECT run_id, n_targets, components, created_at FROM runs ORDER BY created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var rec RunRecord
		var createdStr string
		if err := rows.Scan(&rec.RunID, &rec.NTargets, &rec.Components, &createdStr); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if t, err := time.Parse(time.RFC3339Nano, createdStr); err == nil {
			rec.CreatedAt = t
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// #endregion list-runs

// #region matrix-encoding
func encodeMatrix(m *mat.Dense) []byte {
	rows, cols := m.Dims()
	buf := make([]byte, rows*cols*8)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			binary.LittleEndian.PutUint64(buf[(r*cols+c)*8:], math.Float64bits(m.At(r, c)))
		}
	}
	return buf
}

func decodeMatrix(rows, cols int, b []byte) *mat.Dense {
	m := mat.NewDense(rows, cols, nil)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			m.Set(r, c, math.Float64frombits(binary.LittleEndian.Uint64(b[(r*cols+c)*8:])))
		}
	}
	return m
}

// #endregion matrix-encoding
