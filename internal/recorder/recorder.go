package recorder

import "StreakScanner/internal/model"

// AnalysisRecord holds one per-symbol analysis snapshot.
type AnalysisRecord struct {
	Analysis *model.Analysis
	Trigger  string // "SCAN", "MANUAL", "SCHEDULED"
}

// ScanEvent summarizes one batch scan.
type ScanEvent struct {
	Interval   string
	Scanned    int
	Failed     int
	Returned   int
	TopSymbol  string
	TopEdge    float64
	DurationMs int64
}

// Recorder persists historical data for analysis.
type Recorder interface {
	RecordAnalysis(rec *AnalysisRecord) error
	RecordScan(evt *ScanEvent) error
	Close() error
}
