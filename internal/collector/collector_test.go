package collector

import (
	"context"
	"errors"
	"math"
	"testing"

	"StreakScanner/internal/model"
	"StreakScanner/internal/streak"
)

func TestAnalyze_FullPipeline(t *testing.T) {
	closes := []float64{10, 11, 12, 11, 10, 9, 10, 11, 12, 13}
	c := NewCollector(&MockFetcher{Fallback: closes}, nil, "1d", 1000, 10)

	a, err := c.Analyze(context.Background(), "TEST")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Symbol != "TEST" || a.Interval != "1d" {
		t.Errorf("unexpected identity fields: %+v", a)
	}
	if a.Observations != 10 {
		t.Errorf("expected 10 observations, got %d", a.Observations)
	}
	if a.LastClose != 13 || a.PrevClose != 12 {
		t.Errorf("expected closes 13/12, got %.1f/%.1f", a.LastClose, a.PrevClose)
	}
	if a.LivePrice != 13 {
		t.Errorf("expected live price from fetcher, got %.1f", a.LivePrice)
	}
	wantChange := (13.0 - 12.0) / 12.0 * 100
	if math.Abs(a.ChangePct-wantChange) > 1e-9 {
		t.Errorf("expected change %.4f%%, got %.4f%%", wantChange, a.ChangePct)
	}
	if a.Current.Direction != model.DirectionUp || a.Current.Length != 4 {
		t.Errorf("expected (4, up) streak, got %+v", a.Current)
	}
	if a.UpStats.Count == 0 || a.DownStats.Count == 0 {
		t.Errorf("expected run stats for both directions: %+v / %+v", a.UpStats, a.DownStats)
	}
}

func TestAnalyze_LivePriceFallsBackToLastClose(t *testing.T) {
	closes := []float64{10, 11, 12, 11, 10, 9, 10, 11, 12, 13}
	f := &MockFetcher{Fallback: closes, PriceErr: errors.New("quote endpoint down")}
	c := NewCollector(f, nil, "1d", 1000, 10)

	a, err := c.Analyze(context.Background(), "TEST")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.LivePrice != a.LastClose {
		t.Errorf("expected fallback to last close %.1f, got %.1f", a.LastClose, a.LivePrice)
	}
}

func TestAnalyze_RejectsShortSeries(t *testing.T) {
	c := NewCollector(&MockFetcher{Fallback: []float64{10, 11, 12}}, nil, "1d", 1000, 10)
	if _, err := c.Analyze(context.Background(), "TEST"); err == nil {
		t.Fatal("expected insufficient-data error for 3 closes with minimum 10")
	}
}

func TestAnalyze_RejectsInvalidPrices(t *testing.T) {
	closes := []float64{1, 2, 3, 4, math.NaN(), 6, 7, 8, 9, 10}
	c := NewCollector(&MockFetcher{Fallback: closes}, nil, "1d", 1000, 10)
	_, err := c.Analyze(context.Background(), "TEST")
	if !errors.Is(err, streak.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAnalyze_PropagatesFetchErrors(t *testing.T) {
	fetchErr := errors.New("upstream down")
	c := NewCollector(&MockFetcher{Err: fetchErr}, nil, "1d", 1000, 10)
	if _, err := c.Analyze(context.Background(), "TEST"); !errors.Is(err, fetchErr) {
		t.Fatalf("expected wrapped fetch error, got %v", err)
	}
}

func TestFetchBars_TrimsToLookback(t *testing.T) {
	closes := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	c := NewCollector(&MockFetcher{Fallback: closes}, nil, "1d", 10, 10)

	a, err := c.Analyze(context.Background(), "TEST")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Observations != 10 {
		t.Errorf("expected series trimmed to 10 closes, got %d", a.Observations)
	}
	if a.LastClose != 12 {
		t.Errorf("trimming must keep the most recent closes, last = %.1f", a.LastClose)
	}
}
