package collector

import (
	"context"
	"fmt"
	"log"
	"time"

	"StreakScanner/internal/cache"
	"StreakScanner/internal/model"
	"StreakScanner/internal/streak"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Closes   map[string][]float64 // per symbol; Fallback used when absent
	Fallback []float64
	Err      error
	PriceErr error // fails only FetchCurrentPrice when set
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchBars(symbol, _ string, count int) ([]model.OHLCV, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	closes, ok := m.Closes[symbol]
	if !ok {
		closes = m.Fallback
	}
	if len(closes) > count {
		closes = closes[len(closes)-count:]
	}
	bars := make([]model.OHLCV, len(closes))
	for i, c := range closes {
		bars[i] = model.OHLCV{
			Time:   time.Now().AddDate(0, 0, -(len(closes) - i)),
			Open:   c,
			High:   c,
			Low:    c,
			Close:  c,
			Volume: 1000000,
		}
	}
	return bars, nil
}

func (m *MockFetcher) FetchCurrentPrice(symbol string) (float64, error) {
	if m.PriceErr != nil {
		return 0, m.PriceErr
	}
	if m.Err != nil {
		return 0, m.Err
	}
	closes, ok := m.Closes[symbol]
	if !ok {
		closes = m.Fallback
	}
	if len(closes) == 0 {
		return 0, fmt.Errorf("mock: no data for %s", symbol)
	}
	return closes[len(closes)-1], nil
}

// Collector fetches closing prices and runs streak analysis per symbol.
type Collector struct {
	Fetcher  Fetcher
	Cache    *cache.SeriesCache // nil when caching is disabled
	Interval string
	Lookback int
	MinObs   int
}

// NewCollector creates a new Collector. cache may be nil.
func NewCollector(fetcher Fetcher, seriesCache *cache.SeriesCache, interval string, lookback, minObs int) *Collector {
	return &Collector{
		Fetcher:  fetcher,
		Cache:    seriesCache,
		Interval: interval,
		Lookback: lookback,
		MinObs:   minObs,
	}
}

// fetchSeries returns the symbol's closing-price series, via cache when enabled.
func (c *Collector) fetchSeries(ctx context.Context, symbol string) (*model.PriceSeries, error) {
	series := &model.PriceSeries{Symbol: symbol, Interval: c.Interval, FetchedAt: time.Now()}

	if c.Cache != nil {
		if closes, ok := c.Cache.Get(ctx, symbol, c.Interval, c.Lookback); ok {
			series.Closes = closes
			return series, nil
		}
	}

	bars, err := c.Fetcher.FetchBars(symbol, c.Interval, c.Lookback)
	if err != nil {
		return nil, fmt.Errorf("fetch bars for %s: %w", symbol, err)
	}
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}

	if c.Cache != nil {
		c.Cache.Put(ctx, symbol, c.Interval, c.Lookback, closes)
	}
	series.Closes = closes
	return series, nil
}

// Analyze fetches the symbol's closes and computes the full streak analysis.
// Series shorter than the configured minimum are rejected before the engine
// runs; the engine itself rejects series under 2 closes and non-finite data.
func (c *Collector) Analyze(ctx context.Context, symbol string) (*model.Analysis, error) {
	series, err := c.fetchSeries(ctx, symbol)
	if err != nil {
		return nil, err
	}
	closes := series.Closes
	if len(closes) < c.MinObs {
		return nil, fmt.Errorf("insufficient data for %s: %d closes, need %d", symbol, len(closes), c.MinObs)
	}

	upRuns, downRuns, cur, proj, err := streak.Analyze(closes)
	if err != nil {
		return nil, fmt.Errorf("analyze %s: %w", symbol, err)
	}

	a := &model.Analysis{
		Symbol:       symbol,
		Interval:     c.Interval,
		Observations: len(closes),
		LastClose:    closes[len(closes)-1],
		PrevClose:    closes[len(closes)-2],
		UpRuns:       upRuns,
		DownRuns:     downRuns,
		UpStats:      streak.Stats(upRuns),
		DownStats:    streak.Stats(downRuns),
		Current:      cur,
		Projection:   proj,
		FetchedAt:    series.FetchedAt,
	}
	if a.PrevClose != 0 {
		a.ChangePct = (a.LastClose - a.PrevClose) / a.PrevClose * 100
	}
	if live, err := c.Fetcher.FetchCurrentPrice(symbol); err != nil {
		log.Printf("[WARN] live price for %s unavailable, using last close: %v", symbol, err)
		a.LivePrice = a.LastClose
	} else {
		a.LivePrice = live
	}
	return a, nil
}
