package scanner

import (
	"context"
	"log"
	"sort"

	"StreakScanner/internal/collector"
	"StreakScanner/internal/model"
)

// Summary reports how a scan went, independent of the ranked results.
type Summary struct {
	Scanned int
	Failed  int
}

// Scanner runs the per-symbol analysis across a universe of tickers and
// ranks the results by next-close edge. Symbols that fail to fetch or carry
// too little history are logged and skipped; a scan only fails as a whole
// when every symbol does.
type Scanner struct {
	Collector *collector.Collector
	MinEdge   float64 // drop results whose edge is below this (0 keeps all)
	TopN      int     // cap on returned results (0 keeps all)
}

// NewScanner creates a new Scanner.
func NewScanner(col *collector.Collector, minEdge float64, topN int) *Scanner {
	return &Scanner{Collector: col, MinEdge: minEdge, TopN: topN}
}

// Scan analyzes every symbol and returns results sorted by descending edge.
func (s *Scanner) Scan(ctx context.Context, symbols []string) ([]model.ScanResult, Summary) {
	var results []model.ScanResult
	sum := Summary{}

	for _, symbol := range symbols {
		select {
		case <-ctx.Done():
			log.Println("[WARN] scan cancelled")
			return rank(results, s.TopN), sum
		default:
		}

		sum.Scanned++
		a, err := s.Collector.Analyze(ctx, symbol)
		if err != nil {
			sum.Failed++
			log.Printf("[WARN] skip %s: %v", symbol, err)
			continue
		}
		if s.MinEdge > 0 && a.Edge() < s.MinEdge {
			continue
		}
		results = append(results, model.ScanResult{Analysis: a})
	}

	return rank(results, s.TopN), sum
}

// rank sorts by edge descending (symbol as tiebreak) and assigns positions.
func rank(results []model.ScanResult, topN int) []model.ScanResult {
	sort.Slice(results, func(i, j int) bool {
		ei, ej := results[i].Analysis.Edge(), results[j].Analysis.Edge()
		if ei != ej {
			return ei > ej
		}
		return results[i].Analysis.Symbol < results[j].Analysis.Symbol
	})
	if topN > 0 && len(results) > topN {
		results = results[:topN]
	}
	for i := range results {
		results[i].Rank = i + 1
	}
	return results
}
