package stats

import "math"

// adfCriticalValue approximates the 5% Dickey-Fuller critical value.
const adfCriticalValue = -2.86

// minADFObservations is the smallest sample the test will accept.
const minADFObservations = 20

// ADFResult is the outcome of a stationarity test.
type ADFResult struct {
	Statistic  float64
	PValue     float64
	Stationary bool
}

// ADFTest runs a simplified one-lag Dickey-Fuller stationarity test:
// the first difference of the series is regressed on its own lagged
// level, and the series is declared stationary when the slope
// t-statistic falls below a fixed critical value. The p-value is a
// constant, not distribution-based. This is a deliberate approximation;
// series shorter than 20 observations are declared non-stationary with
// p=1.
func ADFTest(series []float64) ADFResult {
	if len(series) < minADFObservations {
		return ADFResult{Statistic: 0, PValue: 1.0, Stationary: false}
	}

	n := len(series) - 1
	diff := make([]float64, n)
	lagged := make([]float64, n)
	for i := 1; i < len(series); i++ {
		diff[i-1] = series[i] - series[i-1]
		lagged[i-1] = series[i-1]
	}

	reg := LinearRegression(lagged, diff)

	// Standard error of the slope: residual stddev over the L2 norm of
	// the regressor. Simplified on purpose, like the rest of the test.
	var ssr, sumSqLagged float64
	for _, r := range reg.Residuals {
		ssr += r * r
	}
	for _, v := range lagged {
		sumSqLagged += v * v
	}

	se := math.Sqrt(ssr / float64(len(reg.Residuals)-2))
	se /= math.Sqrt(sumSqLagged)

	tStat := reg.Beta / se

	return ADFResult{
		Statistic:  tStat,
		PValue:     0.05,
		Stationary: tStat < adfCriticalValue,
	}
}
