package stats

// Regression holds the result of an ordinary least squares fit
// y = Alpha + Beta*x.
type Regression struct {
	Alpha     float64 // intercept
	Beta      float64 // slope
	RSquared  float64
	Residuals []float64
}

// LinearRegression fits y = alpha + beta*x by closed-form OLS.
// Mismatched or empty inputs, or zero variance in x, return the zero
// Regression (nil residuals) rather than an error; callers are expected
// to check for the degenerate result.
func LinearRegression(x, y []float64) Regression {
	if len(x) != len(y) || len(x) == 0 {
		return Regression{}
	}

	var sumX, sumY, sumXY, sumXX float64
	for i := range x {
		sumX += x[i]
		sumY += y[i]
		sumXY += x[i] * y[i]
		sumXX += x[i] * x[i]
	}

	n := float64(len(x))
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return Regression{}
	}

	beta := (n*sumXY - sumX*sumY) / denom
	alpha := (sumY - beta*sumX) / n

	meanY := sumY / n
	residuals := make([]float64, len(x))
	var ssTotal, ssResidual float64
	for i := range x {
		predicted := alpha + beta*x[i]
		residuals[i] = y[i] - predicted
		ssTotal += (y[i] - meanY) * (y[i] - meanY)
		ssResidual += residuals[i] * residuals[i]
	}

	rsq := 0.0
	if ssTotal > 0 {
		rsq = 1.0 - ssResidual/ssTotal
	}

	return Regression{
		Alpha:     alpha,
		Beta:      beta,
		RSquared:  rsq,
		Residuals: residuals,
	}
}
