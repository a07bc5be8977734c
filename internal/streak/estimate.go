package streak

// ExtendProbability returns the empirical percentage probability that a run
// which has reached the given length extends past it, based on the historical
// run lengths of the same direction.
//
// A historical run of length N is an opportunity for every length up to N and
// an extension for every length below N, so the counts are conditional:
// opportunities = runs with length >= target, extended = runs with length >
// target. Bucketing runs by their exact final length understates extension
// odds and must not be used here.
//
// With no opportunities the result is 0.0 by convention. Length 0 asks
// whether a brand-new run reaches 1, which every recorded run did.
func ExtendProbability(runs []int, length int) float64 {
	opportunities, extended := 0, 0
	for _, r := range runs {
		if r >= length {
			opportunities++
		}
		if r > length {
			extended++
		}
	}
	if opportunities == 0 {
		return 0.0
	}
	return float64(extended) / float64(opportunities) * 100
}
