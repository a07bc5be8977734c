package collector

import "StreakScanner/internal/model"

// Fetcher defines the interface for fetching market data.
// Intervals use Yahoo-style tokens: "1d", "1wk", "1mo".
type Fetcher interface {
	FetchBars(symbol, interval string, count int) ([]model.OHLCV, error)
	FetchCurrentPrice(symbol string) (float64, error)
	Name() string
}
