package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockCast/internal/artifact"
	"StockCast/internal/domain/models"
	"StockCast/internal/domain/repository"
	"StockCast/internal/forecast"
	"StockCast/internal/recorder"
	"StockCast/pkg/cache"
	"StockCast/pkg/util"
)

// testToday is the injected "today" for all lifecycle tests.
var testToday = time.Date(2025, 6, 30, 14, 0, 0, 0, time.UTC)

type fakeProvider struct {
	series models.PriceSeries
	err    error
	calls  int
}

func (f *fakeProvider) Fetch(_ context.Context, _ string, _, _ time.Time) (models.PriceSeries, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.series, nil
}

type stubMetrics struct{}

func (stubMetrics) RecordTrain(string, int, float64)      {}
func (stubMetrics) RecordPredict(string, string, float64) {}
func (stubMetrics) RecordError(string)                    {}

// linearSeries builds n daily points ending on the injected "today".
func linearSeries(n int, intercept, slope float64) models.PriceSeries {
	end := util.Day(testToday)
	series := make(models.PriceSeries, 0, n)
	for i := 0; i < n; i++ {
		series = append(series, models.PricePoint{
			Date:  end.AddDate(0, 0, i-n+1),
			Close: intercept + slope*float64(i),
		})
	}
	return series
}

type fixture struct {
	manager  *ModelLifecycleManager
	provider *fakeProvider
	store    *artifact.MemoryStore
	cache    *cache.MemoryCache
	clock    time.Time
}

func newFixture(t *testing.T, provider *fakeProvider) *fixture {
	t.Helper()
	store := artifact.NewMemoryStore()
	mem := cache.NewMemoryCache()
	t.Cleanup(func() { _ = mem.Close() })

	f := &fixture{provider: provider, store: store, cache: mem, clock: testToday}
	f.manager = NewModelLifecycleManager(
		provider,
		store,
		forecast.NewEngine(),
		recorder.NewNoopRecorder(),
		stubMetrics{},
		mem,
		WithClock(func() time.Time { return f.clock }),
	)
	return f
}

func trainTicker(t *testing.T, f *fixture, ticker string) {
	t.Helper()
	_, err := f.manager.Train(context.Background(), ticker, time.Time{}, time.Time{})
	require.NoError(t, err)
}

func TestPredictHorizonContiguousFromTomorrow(t *testing.T) {
	f := newFixture(t, &fakeProvider{series: linearSeries(900, 100, 0.5)})
	trainTicker(t, f, "AAPL")

	res, err := f.manager.Predict(context.Background(), "AAPL", 7)
	require.NoError(t, err)
	require.Len(t, res.Points, 7)

	tomorrow := util.Day(testToday).AddDate(0, 0, 1)
	for i, p := range res.Points {
		assert.True(t, p.Date.Equal(tomorrow.AddDate(0, 0, i)),
			"point %d: got %s", i, p.Date.Format("2006-01-02"))
	}
}

func TestPredictExtrapolatesLinearTrend(t *testing.T) {
	f := newFixture(t, &fakeProvider{series: linearSeries(900, 100, 0.5)})
	trainTicker(t, f, "AAPL")

	res, err := f.manager.Predict(context.Background(), "AAPL", 7)
	require.NoError(t, err)

	// Training series ends at index 899 == today; day after tomorrow is 901...
	for i, p := range res.Points {
		want := 100 + 0.5*float64(899+i+1)
		assert.InDelta(t, want, p.Trend, 1e-3, "day %d", i+1)
	}
}

func TestPredictNotFoundNoSideEffects(t *testing.T) {
	provider := &fakeProvider{series: linearSeries(900, 100, 0.5)}
	f := newFixture(t, provider)

	_, err := f.manager.Predict(context.Background(), "ZZZZ", 7)
	require.ErrorIs(t, err, ErrModelNotFound)

	assert.Zero(t, provider.calls, "predict must not fetch market data")
	assert.Zero(t, f.store.Len(), "predict must not create artifacts")
	key := cache.GenerateKeyWithParams("forecast", "ZZZZ", 7, util.Day(testToday).Format(util.DateLayout))
	ok, _ := f.cache.Exists(context.Background(), key)
	assert.False(t, ok, "predict must not cache a missing model")
}

func TestTrainIdempotent(t *testing.T) {
	f := newFixture(t, &fakeProvider{series: linearSeries(900, 100, 0.5)})

	trainTicker(t, f, "AAPL")
	first, err := f.manager.Predict(context.Background(), "AAPL", 7)
	require.NoError(t, err)

	trainTicker(t, f, "AAPL")
	second, err := f.manager.Predict(context.Background(), "AAPL", 7)
	require.NoError(t, err)

	require.Equal(t, len(first.Points), len(second.Points))
	for i := range first.Points {
		assert.Equal(t, first.Points[i].Trend, second.Points[i].Trend)
		assert.True(t, first.Points[i].Date.Equal(second.Points[i].Date))
	}
}

func TestHorizonOneIsTomorrow(t *testing.T) {
	f := newFixture(t, &fakeProvider{series: linearSeries(900, 100, 0.5)})
	trainTicker(t, f, "AAPL")

	res, err := f.manager.Predict(context.Background(), "AAPL", 1)
	require.NoError(t, err)
	require.Len(t, res.Points, 1)
	assert.True(t, res.Points[0].Date.Equal(util.Day(testToday).AddDate(0, 0, 1)))
}

func TestRetrainInvalidatesCachedForecast(t *testing.T) {
	provider := &fakeProvider{series: linearSeries(900, 100, 0.5)}
	f := newFixture(t, provider)
	trainTicker(t, f, "AAPL")

	first, err := f.manager.Predict(context.Background(), "AAPL", 7)
	require.NoError(t, err)

	// Retrain on a different trend; the cached forecast must not survive.
	provider.series = linearSeries(900, 100, 2.0)
	trainTicker(t, f, "AAPL")

	second, err := f.manager.Predict(context.Background(), "AAPL", 7)
	require.NoError(t, err)
	assert.NotEqual(t, first.Points[0].Trend, second.Points[0].Trend)
}

func TestTrainDataUnavailable(t *testing.T) {
	f := newFixture(t, &fakeProvider{
		err: fmt.Errorf("%w: BOGUS: no data returned", repository.ErrDataUnavailable),
	})

	_, err := f.manager.Train(context.Background(), "BOGUS", time.Time{}, time.Time{})
	require.ErrorIs(t, err, repository.ErrDataUnavailable)
	assert.Zero(t, f.store.Len())
}

func TestPredictRejectsNonPositiveHorizon(t *testing.T) {
	f := newFixture(t, &fakeProvider{series: linearSeries(900, 100, 0.5)})
	trainTicker(t, f, "AAPL")

	_, err := f.manager.Predict(context.Background(), "AAPL", 0)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrModelNotFound))
}

func TestTickerNormalized(t *testing.T) {
	f := newFixture(t, &fakeProvider{series: linearSeries(900, 100, 0.5)})
	trainTicker(t, f, " aapl ")

	res, err := f.manager.Predict(context.Background(), "AAPL", 3)
	require.NoError(t, err)
	assert.Equal(t, "AAPL", res.Ticker)
}

func TestTrainReportsRun(t *testing.T) {
	f := newFixture(t, &fakeProvider{series: linearSeries(900, 100, 0.5)})

	run, err := f.manager.Train(context.Background(), " aapl ", time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, "AAPL", run.Ticker)
	assert.Equal(t, 900, run.Points)
	assert.True(t, run.TrainedAt.Equal(testToday.UTC()), "trained-at must come from the injected clock")
}

func TestPredictRecomputesAfterMidnight(t *testing.T) {
	f := newFixture(t, &fakeProvider{series: linearSeries(900, 100, 0.5)})
	trainTicker(t, f, "AAPL")

	first, err := f.manager.Predict(context.Background(), "AAPL", 7)
	require.NoError(t, err)
	require.True(t, first.Points[0].Date.Equal(util.Day(testToday).AddDate(0, 0, 1)))

	// A few hours later it is the next UTC day. The result cached before the
	// rollover starts on what is now today; it must not be replayed.
	f.clock = testToday.Add(11 * time.Hour)
	require.Equal(t, util.Day(testToday).AddDate(0, 0, 1), util.Day(f.clock))

	second, err := f.manager.Predict(context.Background(), "AAPL", 7)
	require.NoError(t, err)
	wantFirst := util.Day(f.clock).AddDate(0, 0, 1)
	assert.True(t, second.Points[0].Date.Equal(wantFirst),
		"first point must be the day after today: want %s got %s",
		wantFirst.Format("2006-01-02"), second.Points[0].Date.Format("2006-01-02"))
}

func TestConvertPreservesOrder(t *testing.T) {
	f := newFixture(t, &fakeProvider{series: linearSeries(900, 100, 0.5)})
	trainTicker(t, f, "AAPL")

	res, err := f.manager.Predict(context.Background(), "AAPL", 7)
	require.NoError(t, err)

	mapping := f.manager.Convert(res)
	require.Equal(t, 7, mapping.Len())

	keys := mapping.Keys()
	for i, p := range res.Points {
		assert.Equal(t, util.FormatMDY(p.Date), keys[i])
		v, ok := mapping.Get(keys[i])
		require.True(t, ok)
		assert.Equal(t, p.Trend, v)
	}
}
