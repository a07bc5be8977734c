package model

import "time"

// Direction classifies a price move or run.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
	DirectionNone Direction = "none"
)

// Opposite returns the reverse direction. None maps to none.
func (d Direction) Opposite() Direction {
	switch d {
	case DirectionUp:
		return DirectionDown
	case DirectionDown:
		return DirectionUp
	default:
		return DirectionNone
	}
}

// Streak describes the still-open run at the end of a price series.
// Length is 0 and Direction is none when the series has fewer than 2 closes.
type Streak struct {
	Length    int
	Direction Direction
}

// Projection holds the next-close probability pair plus both conditional
// two-ahead pairs. All values are percentages; each pair sums to 100.
type Projection struct {
	NextUpside   float64
	NextDownside float64

	// Conditioned on the next close being up.
	AfterUpUpside   float64
	AfterUpDownside float64

	// Conditioned on the next close being down.
	AfterDownUpside   float64
	AfterDownDownside float64
}

// RunStats summarizes the historical runs of one direction.
type RunStats struct {
	Count        int
	Longest      int
	Average      float64
	Distribution map[int]int // run length -> occurrences
}

// Analysis is the full per-symbol result handed to the notifier and recorder.
type Analysis struct {
	Symbol       string
	Interval     string
	Observations int

	LastClose float64
	PrevClose float64
	ChangePct float64
	LivePrice float64 // latest traded price; falls back to LastClose

	UpRuns    []int
	DownRuns  []int
	UpStats   RunStats
	DownStats RunStats

	Current    Streak
	Projection Projection

	FetchedAt time.Time
}

// Edge is the strength of the next-close call: the larger side of the
// next-close probability pair. Used by the scanner for ranking.
func (a *Analysis) Edge() float64 {
	if a.Projection.NextUpside > a.Projection.NextDownside {
		return a.Projection.NextUpside
	}
	return a.Projection.NextDownside
}

// ScanResult pairs a symbol's analysis with its rank position in a scan.
type ScanResult struct {
	Rank     int
	Analysis *Analysis
}
