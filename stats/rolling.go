package stats

import "math"

// nanSlice returns a slice of n NaNs.
func nanSlice(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}

// RollingMean computes the trailing mean over a fixed window. Output
// has the same length as the input; indices before window-1 are NaN.
// If the series is shorter than the window the whole output is NaN.
func RollingMean(data []float64, window int) []float64 {
	out := nanSlice(len(data))
	if window <= 0 || len(data) < window {
		return out
	}

	for i := window - 1; i < len(data); i++ {
		sum := 0.0
		for j := i - window + 1; j <= i; j++ {
			sum += data[j]
		}
		out[i] = sum / float64(window)
	}
	return out
}

// RollingStdDev computes the trailing sample standard deviation over a
// fixed window, with the same NaN conventions as RollingMean.
func RollingStdDev(data []float64, window int) []float64 {
	out := nanSlice(len(data))
	if window <= 0 || len(data) < window {
		return out
	}

	for i := window - 1; i < len(data); i++ {
		out[i] = StdDev(data[i-window+1 : i+1])
	}
	return out
}

// RollingZScore computes (value - rolling mean) / rolling stddev over a
// fixed trailing window. A z-score is defined only where the rolling
// stddev is strictly positive; everywhere else it is NaN.
func RollingZScore(data []float64, window int) []float64 {
	out := nanSlice(len(data))
	if window <= 0 || len(data) < window {
		return out
	}

	means := RollingMean(data, window)
	stds := RollingStdDev(data, window)

	for i := window - 1; i < len(data); i++ {
		if stds[i] > 0 {
			out[i] = (data[i] - means[i]) / stds[i]
		}
	}
	return out
}
