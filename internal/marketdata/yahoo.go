// Package marketdata implements the market-data provider over the Yahoo
// Finance chart API.
package marketdata

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"

	"StockCast/internal/domain/models"
	"StockCast/internal/domain/repository"
	"StockCast/pkg/util"
)

// YahooProvider fetches daily adjusted closes from Yahoo Finance.
type YahooProvider struct{}

// NewYahooProvider creates a Yahoo Finance provider.
func NewYahooProvider() *YahooProvider {
	return &YahooProvider{}
}

// Fetch downloads the daily series for [start, end]. Any upstream failure or
// an empty response surfaces as ErrDataUnavailable.
func (p *YahooProvider) Fetch(ctx context.Context, ticker string, start, end time.Time) (models.PriceSeries, error) {
	ticker = models.NormalizeTicker(ticker)
	if ticker == "" {
		return nil, fmt.Errorf("%w: empty ticker", repository.ErrDataUnavailable)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	params := &chart.Params{
		Symbol:   ticker,
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Interval: datetime.OneDay,
	}

	iter := chart.Get(params)

	series := make(models.PriceSeries, 0, 256)
	for iter.Next() {
		bar := iter.Bar()
		close := bar.AdjClose.InexactFloat64()
		if close == 0 {
			// null bars on holidays
			continue
		}
		series = append(series, models.PricePoint{
			Date:  util.Day(time.Unix(int64(bar.Timestamp), 0)),
			Close: close,
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", repository.ErrDataUnavailable, ticker, err)
	}
	if len(series) == 0 {
		return nil, fmt.Errorf("%w: %s: no data returned", repository.ErrDataUnavailable, ticker)
	}

	return normalizeSeries(series), nil
}

// normalizeSeries sorts by date and collapses duplicate days, keeping the
// last observation per day.
func normalizeSeries(series models.PriceSeries) models.PriceSeries {
	sort.SliceStable(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date)
	})
	out := series[:0]
	for _, p := range series {
		if n := len(out); n > 0 && out[n-1].Date.Equal(p.Date) {
			out[n-1] = p
			continue
		}
		out = append(out, p)
	}
	return out
}

var _ repository.MarketData = (*YahooProvider)(nil)
