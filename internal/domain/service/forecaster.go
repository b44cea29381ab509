package service

import (
	"time"

	"StockCast/internal/domain/models"
)

// FittedModel is a trained forecasting artifact. Implementations carry the
// minimal sufficient state and are stable under Encode/Decode round trips.
type FittedModel interface {
	// PredictRange predicts one point per input date, in input order.
	PredictRange(dates []time.Time) []models.ForecastPoint
	// TrainStart returns the first date of the training series.
	TrainStart() time.Time
	// Encode serializes the artifact for persistence.
	Encode() ([]byte, error)
}

// Forecaster is the forecasting capability: fit a series, or revive a
// persisted artifact. Implementations must be deterministic: fitting the
// same series twice yields models with identical predictions.
type Forecaster interface {
	Fit(series models.PriceSeries) (FittedModel, error)
	Decode(data []byte) (FittedModel, error)
}
