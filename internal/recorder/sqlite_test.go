package recorder

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"StockCast/internal/domain/models"
	"StockCast/internal/domain/repository"
)

func TestSQLiteRecorderRecordTraining(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")
	rec, err := NewSQLiteRecorder(dbPath)
	if err != nil {
		t.Fatalf("open recorder: %v", err)
	}
	defer rec.Close()

	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	series := models.PriceSeries{
		{Date: start, Close: 100},
		{Date: start.AddDate(0, 0, 1), Close: 101},
		{Date: start.AddDate(0, 0, 2), Close: 102},
	}
	run := &repository.TrainingRun{
		Ticker:    "AAPL",
		Start:     start,
		End:       start.AddDate(0, 0, 2),
		Points:    len(series),
		TrainedAt: time.Now().UTC(),
	}

	if err := rec.RecordTraining(run, series); err != nil {
		t.Fatalf("record training: %v", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("reopen db: %v", err)
	}
	defer db.Close()

	var runs, prices int
	if err := db.QueryRow(`SELECT COUNT(*) FROM training_runs WHERE ticker = ?`, "AAPL").Scan(&runs); err != nil {
		t.Fatalf("count runs: %v", err)
	}
	if err := db.QueryRow(`SELECT COUNT(*) FROM training_prices`).Scan(&prices); err != nil {
		t.Fatalf("count prices: %v", err)
	}
	if runs != 1 || prices != 3 {
		t.Fatalf("expected 1 run / 3 prices, got %d / %d", runs, prices)
	}
}
