package streak

import (
	"errors"
	"fmt"
	"math"

	"StreakScanner/internal/model"
)

var (
	// ErrInsufficientData means the series is too short to carry a streak.
	ErrInsufficientData = errors.New("streak: need at least 2 closes")
	// ErrInvalidInput means the series contains a NaN or infinite close.
	ErrInvalidInput = errors.New("streak: non-finite close in series")
)

// Project combines the historical run lengths with the current streak into
// the next-close probability pair and both conditional two-ahead pairs.
//
// The next close either extends the current run (probability from the same
// direction's history at the current length) or reverses it. Two closes out,
// each branch is re-estimated: the extension branch at current length + 1
// against the same history, the reversal branch as a brand-new length-1 run
// against the opposite direction's history. Empty history means the
// estimator reports 0.0 extension, so the opposing side of that pair is 100.
func Project(upRuns, downRuns []int, cur model.Streak) (model.Projection, error) {
	var p model.Projection

	var sameRuns []int
	switch cur.Direction {
	case model.DirectionUp:
		sameRuns = upRuns
	case model.DirectionDown:
		sameRuns = downRuns
	default:
		return p, ErrInsufficientData
	}

	extend := ExtendProbability(sameRuns, cur.Length)
	if cur.Direction == model.DirectionUp {
		p.NextUpside = extend
		p.NextDownside = 100 - extend
	} else {
		p.NextDownside = extend
		p.NextUpside = 100 - extend
	}

	// Branch: next close is up.
	if cur.Direction == model.DirectionUp {
		p.AfterUpUpside = ExtendProbability(upRuns, cur.Length+1)
	} else {
		p.AfterUpUpside = ExtendProbability(upRuns, 1)
	}
	p.AfterUpDownside = 100 - p.AfterUpUpside

	// Branch: next close is down.
	if cur.Direction == model.DirectionDown {
		p.AfterDownDownside = ExtendProbability(downRuns, cur.Length+1)
	} else {
		p.AfterDownDownside = ExtendProbability(downRuns, 1)
	}
	p.AfterDownUpside = 100 - p.AfterDownDownside

	return p, nil
}

// Analyze validates a closing-price series, then runs segmentation, current
// streak detection, and projection over it. It is the single entry point the
// collector uses; the individual pieces stay available for direct use.
func Analyze(closes []float64) ([]int, []int, model.Streak, model.Projection, error) {
	if len(closes) < 2 {
		return nil, nil, model.Streak{Direction: model.DirectionNone}, model.Projection{},
			fmt.Errorf("%w: got %d", ErrInsufficientData, len(closes))
	}
	for i, c := range closes {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, nil, model.Streak{Direction: model.DirectionNone}, model.Projection{},
				fmt.Errorf("%w: index %d", ErrInvalidInput, i)
		}
	}

	upRuns, downRuns := Segment(closes)
	cur := Current(closes)
	proj, err := Project(upRuns, downRuns, cur)
	if err != nil {
		return nil, nil, cur, model.Projection{}, err
	}
	return upRuns, downRuns, cur, proj, nil
}
