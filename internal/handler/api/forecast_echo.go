package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"StockCast/internal/domain/models"
	"StockCast/internal/domain/repository"
	"StockCast/internal/usecase"
	xhttp "StockCast/pkg/http"
	xlogger "StockCast/pkg/logger"
	"StockCast/pkg/util"
)

// ForecastEchoHandler exposes the model lifecycle over HTTP.
type ForecastEchoHandler struct {
	logger  *xlogger.Logger
	manager *usecase.ModelLifecycleManager
}

func NewForecastEchoHandler(logger *xlogger.Logger, manager *usecase.ModelLifecycleManager) *ForecastEchoHandler {
	return &ForecastEchoHandler{logger: logger, manager: manager}
}

func (h *ForecastEchoHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.Health)
	g := e.Group("/api")
	g.POST("/forecast", h.Forecast)
	g.POST("/train", h.Train)
}

// Health reports liveness.
func (h *ForecastEchoHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Forecast serves {ticker, days} -> {ticker, days, forecast: {MM/DD/YYYY: trend}}.
// An untrained ticker maps to a 404 envelope, not a server fault.
func (h *ForecastEchoHandler) Forecast(c echo.Context) error {
	req := &models.ForecastRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.manager.Predict(c.Request().Context(), req.Ticker, req.Days)
	if err != nil {
		if errors.Is(err, usecase.ErrModelNotFound) {
			return xhttp.AppErrorResponse(c,
				xhttp.NotFoundErrorf("no trained model for %s", models.NormalizeTicker(req.Ticker)))
		}
		h.logger.Error("forecast usecase error",
			xlogger.String("ticker", req.Ticker),
			xlogger.Error(err),
		)
		return xhttp.AppErrorResponse(c, err)
	}

	return xhttp.SuccessResponse(c, models.ForecastResponse{
		Ticker:   res.Ticker,
		Days:     res.Horizon,
		Forecast: h.manager.Convert(res),
	})
}

// Train fits and persists a model for a ticker. Omitted dates default to the
// configured start date through today.
func (h *ForecastEchoHandler) Train(c echo.Context) error {
	req := &models.TrainRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	start := util.ParseDateDefault(req.Start, time.Time{})
	end := util.ParseDateDefault(req.End, time.Time{})

	run, err := h.manager.Train(c.Request().Context(), req.Ticker, start, end)
	if err != nil {
		if errors.Is(err, repository.ErrDataUnavailable) {
			return xhttp.AppErrorResponse(c,
				xhttp.UpstreamErrorf("no market data for %s", models.NormalizeTicker(req.Ticker)).WithError(err))
		}
		h.logger.Error("train usecase error",
			xlogger.String("ticker", req.Ticker),
			xlogger.Error(err),
		)
		return xhttp.AppErrorResponse(c, err)
	}

	return xhttp.SuccessResponse(c, models.TrainResponse{
		Ticker:    run.Ticker,
		TrainedAt: run.TrainedAt.Format(time.RFC3339),
	})
}
