package streak

import "StreakScanner/internal/model"

// Current walks backward from the most recent close and returns the length
// and direction of the run still open at series end. The directional test
// matches Segment: strictly greater for up, less-or-equal for down. A series
// with fewer than 2 closes has no current streak.
func Current(closes []float64) model.Streak {
	n := len(closes)
	if n < 2 {
		return model.Streak{Length: 0, Direction: model.DirectionNone}
	}

	length := 1
	if closes[n-1] > closes[n-2] {
		for i := n - 2; i > 0; i-- {
			if closes[i] <= closes[i-1] {
				break
			}
			length++
		}
		return model.Streak{Length: length, Direction: model.DirectionUp}
	}

	for i := n - 2; i > 0; i-- {
		if closes[i] > closes[i-1] {
			break
		}
		length++
	}
	return model.Streak{Length: length, Direction: model.DirectionDown}
}
