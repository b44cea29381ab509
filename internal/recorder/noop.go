package recorder

import (
	"StockCast/internal/domain/models"
	"StockCast/internal/domain/repository"
)

// NoopRecorder is a no-op implementation used when history is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordTraining(_ *repository.TrainingRun, _ models.PriceSeries) error {
	return nil
}
func (n *NoopRecorder) Close() error { return nil }

var _ repository.HistoryRecorder = (*NoopRecorder)(nil)
