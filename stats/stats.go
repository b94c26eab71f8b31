// Package stats provides the numeric primitives for pair modeling:
// descriptive statistics, rolling-window series, OLS regression and a
// simplified stationarity test. All functions are pure and signal
// degenerate input with NaN/zero sentinels rather than errors.
package stats

import "math"

// Mean returns the arithmetic mean, or NaN for empty input.
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}

	sum := 0.0
	for _, v := range data {
		sum += v
	}
	return sum / float64(len(data))
}

// StdDev returns the sample standard deviation ((n-1) denominator),
// or NaN when fewer than 2 points are given.
func StdDev(data []float64) float64 {
	if len(data) < 2 {
		return math.NaN()
	}

	avg := Mean(data)
	sumSq := 0.0
	for _, v := range data {
		d := v - avg
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(data)-1))
}

// Returns computes simple returns P[t]/P[t-1] - 1. The result has one
// fewer element than the input; fewer than 2 prices yields an empty
// slice.
func Returns(prices []float64) []float64 {
	if len(prices) < 2 {
		return nil
	}

	out := make([]float64, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		out[i-1] = prices[i]/prices[i-1] - 1.0
	}
	return out
}
