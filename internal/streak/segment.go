package streak

// Segment splits a chronological series of closing prices into the lengths
// of its alternating up and down runs. An up move is a close strictly above
// the previous close; a tie counts as down. The trailing, still-open run is
// included. A series with fewer than 2 closes yields two empty lists.
func Segment(closes []float64) (upRuns, downRuns []int) {
	runUp, runDown := 0, 0

	for i := 1; i < len(closes); i++ {
		if closes[i] > closes[i-1] {
			runUp++
			if runDown > 0 {
				downRuns = append(downRuns, runDown)
				runDown = 0
			}
		} else {
			runDown++
			if runUp > 0 {
				upRuns = append(upRuns, runUp)
				runUp = 0
			}
		}
	}

	// Flush whichever run is still open at series end.
	if runUp > 0 {
		upRuns = append(upRuns, runUp)
	}
	if runDown > 0 {
		downRuns = append(downRuns, runDown)
	}

	return upRuns, downRuns
}
