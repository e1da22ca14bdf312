package workers

import "math"

const scoreEpsilon = 1e-9

// insertAverage folds a new score s into an average avg over n scores.
func insertAverage(avg float64, n int64, s float64) float64 {
	if n <= 0 {
		return s
	}
	return (avg*float64(n) + s) / float64(n+1)
}

// updateAverage replaces old with s in an average over n scores; n is unchanged.
func updateAverage(avg float64, n int64, old, s float64) float64 {
	if n <= 0 {
		return s
	}
	return (avg*float64(n) - old + s) / float64(n)
}

// removeAverage takes old out of an average over n scores.
func removeAverage(avg float64, n int64, old float64) float64 {
	if n <= 1 {
		return 0
	}
	return (avg*float64(n) - old) / float64(n-1)
}

func sameScore(a, b float64) bool {
	return math.Abs(a-b) < scoreEpsilon
}
