package streak

import "StreakScanner/internal/model"

// Stats summarizes a run-length list: how many runs occurred, the longest,
// the mean length, and a length-frequency distribution.
func Stats(runs []int) model.RunStats {
	s := model.RunStats{Count: len(runs)}
	if len(runs) == 0 {
		return s
	}
	s.Distribution = make(map[int]int)
	sum := 0
	for _, r := range runs {
		sum += r
		if r > s.Longest {
			s.Longest = r
		}
		s.Distribution[r]++
	}
	s.Average = float64(sum) / float64(len(runs))
	return s
}
