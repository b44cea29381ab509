package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryCacheSetGet(t *testing.T) {
	mc := NewMemoryCache()
	defer mc.Close()
	ctx := context.Background()

	type payload struct {
		Name string  `json:"name"`
		Val  float64 `json:"val"`
	}

	if err := mc.Set(ctx, "k1", payload{Name: "AAPL", Val: 187.5}, time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}

	var got payload
	if err := mc.Get(ctx, "k1", &got); err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "AAPL" || got.Val != 187.5 {
		t.Fatalf("unexpected payload %+v", got)
	}
}

func TestMemoryCacheMiss(t *testing.T) {
	mc := NewMemoryCache()
	defer mc.Close()

	var dest string
	err := mc.Get(context.Background(), "missing", &dest)
	if !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("expected ErrCacheMiss, got %v", err)
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	mc := NewMemoryCache()
	defer mc.Close()
	ctx := context.Background()

	if err := mc.Set(ctx, "k1", "v1", time.Nanosecond); err != nil {
		t.Fatalf("set: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	var dest string
	if err := mc.Get(ctx, "k1", &dest); !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("expected expiry miss, got %v", err)
	}
}

func TestMemoryCacheDeleteByPattern(t *testing.T) {
	mc := NewMemoryCache()
	defer mc.Close()
	ctx := context.Background()

	_ = mc.Set(ctx, "forecast:AAPL:7", "a", time.Minute)
	_ = mc.Set(ctx, "forecast:AAPL:30", "b", time.Minute)
	_ = mc.Set(ctx, "forecast:MSFT:7", "c", time.Minute)

	if err := mc.DeleteByPattern(ctx, "forecast:AAPL:*"); err != nil {
		t.Fatalf("delete by pattern: %v", err)
	}

	ok, _ := mc.Exists(ctx, "forecast:AAPL:7", "forecast:AAPL:30")
	if ok {
		t.Fatalf("expected AAPL keys gone")
	}
	ok, _ = mc.Exists(ctx, "forecast:MSFT:7")
	if !ok {
		t.Fatalf("expected MSFT key kept")
	}
}
