package models

import "time"

// ForecastPoint is one predicted day. Trend is the de-seasonalized value the
// API serves; Value adds the day-of-week seasonal offset back in.
type ForecastPoint struct {
	Date  time.Time `json:"date"`
	Trend float64   `json:"trend"`
	Value float64   `json:"value"`
}

// ForecastResult is an ordered forecast for a ticker: exactly Horizon points,
// contiguous and strictly increasing, starting the day after generation.
type ForecastResult struct {
	Ticker      string          `json:"ticker"`
	Horizon     int             `json:"horizon"`
	GeneratedAt time.Time       `json:"generated_at"`
	Points      []ForecastPoint `json:"points"`
}
