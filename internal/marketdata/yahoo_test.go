package marketdata

import (
	"testing"
	"time"

	"StockCast/internal/domain/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNormalizeSeriesSortsAndDedupes(t *testing.T) {
	in := models.PriceSeries{
		{Date: day(2024, 3, 3), Close: 103},
		{Date: day(2024, 3, 1), Close: 101},
		{Date: day(2024, 3, 3), Close: 104},
		{Date: day(2024, 3, 2), Close: 102},
	}

	got := normalizeSeries(in)
	if len(got) != 3 {
		t.Fatalf("expected 3 points, got %d", len(got))
	}
	if err := got.Validate(); err != nil {
		t.Fatalf("normalized series invalid: %v", err)
	}
	// duplicate day keeps the last observation
	if got[2].Close != 104 {
		t.Fatalf("expected last duplicate kept, got %v", got[2].Close)
	}
}
