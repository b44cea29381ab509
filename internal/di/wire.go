//go:build wireinject
// +build wireinject

package di

import (
	"StockCast/internal/usecase"
	"StockCast/pkg/config"
	"StockCast/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Infrastructure
		ProvideArtifactStore,
		ProvideMarketData,
		ProvideForecaster,
		ProvideHistoryRecorder,
		ProvideCache,

		// Use cases
		ProvideManager,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}

// InitializeManager wires the lifecycle manager alone, for CLI invocations
// that train or predict without starting the server.
func InitializeManager(cfg *config.Config) (*usecase.ModelLifecycleManager, error) {
	wire.Build(
		ProvideMetrics,
		ProvideArtifactStore,
		ProvideMarketData,
		ProvideForecaster,
		ProvideHistoryRecorder,
		ProvideCache,
		ProvideManager,
	)
	return &usecase.ModelLifecycleManager{}, nil
}
