package forecast

import (
	"encoding/json"
	"time"

	"StockCast/internal/domain/models"
	"StockCast/pkg/util"
)

// Model is the persisted forecasting artifact: a least-squares linear trend
// plus additive day-of-week offsets, all relative to the training start date.
type Model struct {
	Ticker    string     `json:"ticker,omitempty"`
	Start     time.Time  `json:"train_start"`
	Intercept float64    `json:"intercept"`
	Slope     float64    `json:"slope"`
	Weekly    [7]float64 `json:"weekly"`
	Points    int        `json:"points"`
	TrainedAt time.Time  `json:"trained_at"`
}

// TrainStart returns the first date of the training series.
func (m *Model) TrainStart() time.Time {
	return m.Start
}

// trendAt evaluates the fitted trend at a date.
func (m *Model) trendAt(date time.Time) float64 {
	x := float64(util.DaysBetween(m.Start, date))
	return m.Intercept + m.Slope*x
}

// PredictRange predicts one point per input date, in input order.
func (m *Model) PredictRange(dates []time.Time) []models.ForecastPoint {
	out := make([]models.ForecastPoint, 0, len(dates))
	for _, d := range dates {
		d = util.Day(d)
		trend := m.trendAt(d)
		out = append(out, models.ForecastPoint{
			Date:  d,
			Trend: trend,
			Value: trend + m.Weekly[int(d.Weekday())],
		})
	}
	return out
}

// Encode serializes the artifact as JSON.
func (m *Model) Encode() ([]byte, error) {
	return json.Marshal(m)
}
