// Package recorder persists training history for later inspection.
package recorder

import (
	"database/sql"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"

	"StockCast/internal/domain/models"
	"StockCast/internal/domain/repository"
)

// SQLiteRecorder persists training runs and their input series to SQLite.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so reads do not block the writer.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS training_runs (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			ticker     TEXT NOT NULL,
			start_date INTEGER NOT NULL,
			end_date   INTEGER NOT NULL,
			points     INTEGER NOT NULL,
			trained_at INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ticker ON training_runs(ticker)`,

		`CREATE TABLE IF NOT EXISTS training_prices (
			run_id INTEGER NOT NULL,
			date   INTEGER NOT NULL,
			close  REAL NOT NULL,
			FOREIGN KEY(run_id) REFERENCES training_runs(id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_prices_run ON training_prices(run_id)`,
	}
	for _, stmt := range stmts {
		if _, err := r.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// RecordTraining stores one run and the closes it was fitted on.
func (r *SQLiteRecorder) RecordTraining(run *repository.TrainingRun, series models.PriceSeries) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("record training: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO training_runs (ticker, start_date, end_date, points, trained_at) VALUES (?, ?, ?, ?, ?)`,
		run.Ticker, run.Start.Unix(), run.End.Unix(), run.Points, run.TrainedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("record training run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("record training run id: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO training_prices (run_id, date, close) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("record training prices: %w", err)
	}
	defer stmt.Close()
	for _, p := range series {
		if _, err := stmt.Exec(runID, p.Date.Unix(), p.Close); err != nil {
			return fmt.Errorf("record training price: %w", err)
		}
	}

	return tx.Commit()
}

// Close closes the database.
func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}

var _ repository.HistoryRecorder = (*SQLiteRecorder)(nil)
