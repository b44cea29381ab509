package di

import (
	"fmt"

	"StockCast/internal/artifact"
	"StockCast/internal/domain/repository"
	"StockCast/internal/domain/service"
	"StockCast/internal/forecast"
	"StockCast/internal/marketdata"
	"StockCast/internal/recorder"
	"StockCast/internal/usecase"
	"StockCast/pkg/cache"
	"StockCast/pkg/config"
	applogger "StockCast/pkg/logger"
	"StockCast/pkg/metrics"
	"StockCast/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	return applogger.New(&applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideArtifactStore creates the filesystem artifact store.
func ProvideArtifactStore(cfg *config.Config) (repository.ArtifactStore, error) {
	store, err := artifact.NewFSStore(cfg.Artifacts.Dir)
	if err != nil {
		return nil, fmt.Errorf("artifact store: %w", err)
	}
	return store, nil
}

// ProvideMarketData creates the market-data provider.
func ProvideMarketData(cfg *config.Config) repository.MarketData {
	// cfg.Provider.Name is validated to "yahoo"; kept as a seam for other
	// providers.
	return marketdata.NewYahooProvider()
}

// ProvideForecaster creates the forecasting engine.
func ProvideForecaster(cfg *config.Config) service.Forecaster {
	return forecast.NewEngineWithMinPoints(cfg.Training.MinPoints)
}

// ProvideHistoryRecorder creates the training-history recorder.
func ProvideHistoryRecorder(cfg *config.Config) (repository.HistoryRecorder, error) {
	if !cfg.History.Enabled {
		return recorder.NewNoopRecorder(), nil
	}
	rec, err := recorder.NewSQLiteRecorder(cfg.History.Path)
	if err != nil {
		return nil, fmt.Errorf("history recorder: %w", err)
	}
	return rec, nil
}

// ProvideCache creates the forecast cache: layered memory+Redis when Redis is
// configured, plain memory otherwise.
func ProvideCache(cfg *config.Config) (cache.Service, error) {
	if !cfg.Cache.Redis.Enabled {
		return cache.NewMemoryCache(), nil
	}
	rc, err := cache.NewRedisCache(
		cache.WithRedisHost(cfg.Cache.Redis.Host),
		cache.WithRedisPort(cfg.Cache.Redis.Port),
		cache.WithRedisPassword(cfg.Cache.Redis.Password),
		cache.WithRedisDB(cfg.Cache.Redis.DB),
		cache.WithRedisPrefix(cfg.Cache.Redis.Prefix),
	)
	if err != nil {
		return nil, fmt.Errorf("redis cache: %w", err)
	}
	return cache.NewLayeredCache(rc), nil
}

// ProvideManager creates the model lifecycle manager.
func ProvideManager(
	cfg *config.Config,
	provider repository.MarketData,
	store repository.ArtifactStore,
	engine service.Forecaster,
	history repository.HistoryRecorder,
	m repository.Metrics,
	cacheSvc cache.Service,
) *usecase.ModelLifecycleManager {
	return usecase.NewModelLifecycleManager(provider, store, engine, history, m, cacheSvc,
		usecase.WithCacheTTL(cfg.Cache.TTL),
		usecase.WithDefaultStart(cfg.TrainStart()),
	)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	logger *applogger.Logger,
	manager *usecase.ModelLifecycleManager,
	history repository.HistoryRecorder,
	cacheSvc cache.Service,
) *server.App {
	return server.New(cfg, logger, manager, history, cacheSvc)
}
