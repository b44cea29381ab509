// Package usecase implements the model lifecycle: train a per-ticker
// forecasting model, persist it, and serve predictions from it.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"StockCast/internal/domain/models"
	"StockCast/internal/domain/repository"
	"StockCast/internal/domain/service"
	"StockCast/pkg/cache"
	"StockCast/pkg/util"
)

// ErrModelNotFound is returned by Predict when no artifact has been trained
// for the requested ticker. Recoverable; mapped to 404 at the HTTP boundary.
var ErrModelNotFound = errors.New("no trained model")

// ModelLifecycleManager owns the ticker -> trained artifact mapping.
// Per-ticker state machine: Absent -> Trained (Train), Trained -> Trained
// (re-train overwrites). Predict reads without changing state; there is no
// delete.
type ModelLifecycleManager struct {
	provider repository.MarketData
	store    repository.ArtifactStore
	engine   service.Forecaster
	history  repository.HistoryRecorder
	metrics  repository.Metrics
	cache    cache.Service

	cacheTTL     time.Duration
	defaultStart time.Time
	now          func() time.Time

	// Per-ticker mutual exclusion: Train's fit-then-write and Predict's
	// read-then-compute race under concurrent requests otherwise.
	locks sync.Map // ticker -> *sync.Mutex
}

// LifecycleOption configures the manager.
type LifecycleOption func(*ModelLifecycleManager)

// WithClock overrides the "today" clock.
func WithClock(now func() time.Time) LifecycleOption {
	return func(m *ModelLifecycleManager) { m.now = now }
}

// WithCacheTTL sets the forecast cache TTL.
func WithCacheTTL(ttl time.Duration) LifecycleOption {
	return func(m *ModelLifecycleManager) { m.cacheTTL = ttl }
}

// WithDefaultStart sets the default training start date.
func WithDefaultStart(start time.Time) LifecycleOption {
	return func(m *ModelLifecycleManager) { m.defaultStart = util.Day(start) }
}

// NewModelLifecycleManager creates a manager. All collaborators are required;
// pass the noop recorder and a memory cache when those concerns are disabled.
func NewModelLifecycleManager(
	provider repository.MarketData,
	store repository.ArtifactStore,
	engine service.Forecaster,
	history repository.HistoryRecorder,
	metrics repository.Metrics,
	cacheSvc cache.Service,
	opts ...LifecycleOption,
) *ModelLifecycleManager {
	m := &ModelLifecycleManager{
		provider:     provider,
		store:        store,
		engine:       engine,
		history:      history,
		metrics:      metrics,
		cache:        cacheSvc,
		cacheTTL:     15 * time.Minute,
		defaultStart: time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *ModelLifecycleManager) lockFor(ticker string) *sync.Mutex {
	mu, _ := m.locks.LoadOrStore(ticker, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

func (m *ModelLifecycleManager) today() time.Time {
	return util.Day(m.now())
}

// Train fetches the price series for [start, end], fits a model, persists it
// keyed by ticker overwriting any previous artifact, and returns the run it
// recorded. Zero start and end default to the configured start date and
// "today". A failed fetch surfaces as repository.ErrDataUnavailable.
func (m *ModelLifecycleManager) Train(ctx context.Context, ticker string, start, end time.Time) (*repository.TrainingRun, error) {
	ticker = models.NormalizeTicker(ticker)
	if ticker == "" {
		return nil, fmt.Errorf("train: ticker is required")
	}
	if start.IsZero() {
		start = m.defaultStart
	}
	if end.IsZero() {
		end = m.today()
	}

	began := time.Now()

	mu := m.lockFor(ticker)
	mu.Lock()
	defer mu.Unlock()

	series, err := m.provider.Fetch(ctx, ticker, start, end)
	if err != nil {
		m.metrics.RecordError("data_unavailable")
		return nil, fmt.Errorf("train %s: %w", ticker, err)
	}

	model, err := m.engine.Fit(series)
	if err != nil {
		m.metrics.RecordError("fit")
		return nil, fmt.Errorf("train %s: %w", ticker, err)
	}

	data, err := model.Encode()
	if err != nil {
		return nil, fmt.Errorf("train %s: encode artifact: %w", ticker, err)
	}
	if err := m.store.Write(ticker, data); err != nil {
		m.metrics.RecordError("artifact_write")
		return nil, fmt.Errorf("train %s: %w", ticker, err)
	}

	// History is best-effort: a recorder failure must not lose the artifact.
	run := &repository.TrainingRun{
		Ticker:    ticker,
		Start:     util.Day(series[0].Date),
		End:       util.Day(series[len(series)-1].Date),
		Points:    len(series),
		TrainedAt: m.now().UTC(),
	}
	if err := m.history.RecordTraining(run, series); err != nil {
		m.metrics.RecordError("history")
	}

	// Retraining invalidates any cached forecasts for the ticker.
	_ = m.cache.DeleteByPattern(ctx, cache.GenerateKey("forecast", ticker)+":*")

	m.metrics.RecordTrain(ticker, len(series), time.Since(began).Seconds())
	return run, nil
}

// Predict returns a forecast of exactly `horizon` days, contiguous and
// strictly increasing, starting the day after "today". When no artifact
// exists for the ticker it returns ErrModelNotFound without side effects.
//
// The forecast is recomputed over the full range from the model's training
// start: the additive decomposition is anchored there, and the tail of the
// full-range output is what the API serves. Results are cached per
// (ticker, horizon, date) with a short TTL to absorb repeated requests.
func (m *ModelLifecycleManager) Predict(ctx context.Context, ticker string, horizon int) (*models.ForecastResult, error) {
	ticker = models.NormalizeTicker(ticker)
	if ticker == "" {
		return nil, fmt.Errorf("predict: ticker is required")
	}
	if horizon < 1 {
		return nil, fmt.Errorf("predict %s: horizon must be positive, got %d", ticker, horizon)
	}

	began := time.Now()

	// The result is anchored to "today": its first point is tomorrow. Keying
	// the cache by date keeps entries from surviving a UTC day rollover.
	today := m.today()
	key := cache.GenerateKeyWithParams("forecast", ticker, horizon, today.Format(util.DateLayout))

	var cached models.ForecastResult
	if err := m.cache.Get(ctx, key, &cached); err == nil {
		m.metrics.RecordPredict(ticker, "cache_hit", time.Since(began).Seconds())
		return &cached, nil
	}

	mu := m.lockFor(ticker)
	mu.Lock()
	defer mu.Unlock()

	if !m.store.Exists(ticker) {
		m.metrics.RecordPredict(ticker, "not_found", time.Since(began).Seconds())
		return nil, fmt.Errorf("%w for %s", ErrModelNotFound, ticker)
	}

	data, err := m.store.Read(ticker)
	if err != nil {
		m.metrics.RecordError("artifact_read")
		return nil, fmt.Errorf("predict %s: %w", ticker, err)
	}
	model, err := m.engine.Decode(data)
	if err != nil {
		m.metrics.RecordError("artifact_decode")
		return nil, fmt.Errorf("predict %s: %w", ticker, err)
	}

	end := today.AddDate(0, 0, horizon)
	dates := util.DateSequence(model.TrainStart(), end)
	if len(dates) < horizon {
		dates = util.DateSequence(today.AddDate(0, 0, 1), end)
	}

	points := model.PredictRange(dates)
	points = points[len(points)-horizon:]

	res := &models.ForecastResult{
		Ticker:      ticker,
		Horizon:     horizon,
		GeneratedAt: m.now().UTC(),
		Points:      points,
	}

	_ = m.cache.Set(ctx, key, res, m.cacheTTL)

	m.metrics.RecordPredict(ticker, "ok", time.Since(began).Seconds())
	return res, nil
}

// Convert is a pure transform from an ordered forecast to an ordered
// date (MM/DD/YYYY) -> trend mapping. Key order matches point order.
func (m *ModelLifecycleManager) Convert(res *models.ForecastResult) *models.DateValueMap {
	if res == nil {
		return models.NewDateValueMap(0)
	}
	out := models.NewDateValueMap(len(res.Points))
	for _, p := range res.Points {
		out.Put(util.FormatMDY(p.Date), p.Trend)
	}
	return out
}

// DefaultStart returns the configured default training start date.
func (m *ModelLifecycleManager) DefaultStart() time.Time {
	return m.defaultStart
}
