// Package forecast implements an additive daily forecasting model: a linear
// trend fit by ordinary least squares plus day-of-week seasonal offsets
// estimated from the trend residuals. The fit is deterministic and the
// artifact is a small typed struct, so persistence stays stable even if the
// underlying estimation changes.
package forecast

import (
	"encoding/json"
	"fmt"
	"time"

	"gonum.org/v1/gonum/stat"

	"StockCast/internal/domain/models"
	"StockCast/internal/domain/service"
	"StockCast/pkg/util"
)

// DefaultMinPoints is the smallest series the engine will fit. Four weeks of
// daily observations keeps every weekday represented in the seasonal pass.
const DefaultMinPoints = 28

// ErrInsufficientData is returned when a series is too short to fit.
var ErrInsufficientData = fmt.Errorf("forecast: insufficient data points")

// Engine fits and revives additive models.
type Engine struct {
	minPoints int
}

// NewEngine creates an engine with the default minimum series length.
func NewEngine() *Engine {
	return &Engine{minPoints: DefaultMinPoints}
}

// NewEngineWithMinPoints overrides the minimum series length.
func NewEngineWithMinPoints(minPoints int) *Engine {
	if minPoints < 2 {
		minPoints = 2
	}
	return &Engine{minPoints: minPoints}
}

// Fit trains a model on an ordered price series.
func (e *Engine) Fit(series models.PriceSeries) (service.FittedModel, error) {
	if len(series) < e.minPoints {
		return nil, fmt.Errorf("%w: got %d, need %d", ErrInsufficientData, len(series), e.minPoints)
	}
	if err := series.Validate(); err != nil {
		return nil, fmt.Errorf("forecast fit: %w", err)
	}

	start := util.Day(series[0].Date)

	xs := make([]float64, len(series))
	ys := make([]float64, len(series))
	for i, p := range series {
		xs[i] = float64(util.DaysBetween(start, p.Date))
		ys[i] = p.Close
	}

	intercept, slope := stat.LinearRegression(xs, ys, nil, false)

	// Seasonal pass: mean trend residual per weekday.
	var sums [7]float64
	var counts [7]int
	for i, p := range series {
		wd := int(util.Day(p.Date).Weekday())
		sums[wd] += ys[i] - (intercept + slope*xs[i])
		counts[wd]++
	}
	var weekly [7]float64
	for wd := range weekly {
		if counts[wd] > 0 {
			weekly[wd] = sums[wd] / float64(counts[wd])
		}
	}

	return &Model{
		Start:     start,
		Intercept: intercept,
		Slope:     slope,
		Weekly:    weekly,
		Points:    len(series),
		TrainedAt: time.Now().UTC(),
	}, nil
}

// Decode revives a persisted artifact.
func (e *Engine) Decode(data []byte) (service.FittedModel, error) {
	var m Model
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("forecast decode: %w", err)
	}
	if m.Start.IsZero() {
		return nil, fmt.Errorf("forecast decode: artifact missing train start")
	}
	return &m, nil
}

var _ service.Forecaster = (*Engine)(nil)
