package repository

import (
	"context"
	"errors"
	"time"

	"StockCast/internal/domain/models"
)

// ErrDataUnavailable is returned when the market-data provider cannot produce
// a series for a ticker (invalid symbol, no network, empty response).
var ErrDataUnavailable = errors.New("market data unavailable")

// MarketData fetches historical daily prices for a ticker.
type MarketData interface {
	Fetch(ctx context.Context, ticker string, start, end time.Time) (models.PriceSeries, error)
}

// ArtifactStore persists encoded model artifacts keyed by ticker symbol.
// One artifact per key; Write overwrites, latest write wins.
type ArtifactStore interface {
	Exists(key string) bool
	Write(key string, data []byte) error
	Read(key string) ([]byte, error)
}

// TrainingRun describes one completed training pass over a price series.
type TrainingRun struct {
	Ticker    string
	Start     time.Time
	End       time.Time
	Points    int
	TrainedAt time.Time
}

// HistoryRecorder persists training runs and the series they consumed.
type HistoryRecorder interface {
	RecordTraining(run *TrainingRun, series models.PriceSeries) error
	Close() error
}

// Metrics records domain-level observability signals.
type Metrics interface {
	RecordTrain(ticker string, points int, seconds float64)
	RecordPredict(ticker, outcome string, seconds float64)
	RecordError(kind string)
}
