package backtest

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeMetricsFlatSeries(t *testing.T) {
	values := []float64{100, 100, 100, 100}
	m := computeMetrics(values, nil, 100, 0, 0, 0)

	assert.Equal(t, 0.0, m.TotalReturn)
	assert.Equal(t, 0.0, m.AnnualizedReturn)
	// Zero stddev of daily returns means Sharpe is 0 by convention.
	assert.Equal(t, 0.0, m.SharpeRatio)
	assert.Equal(t, 0.0, m.MaxDrawdown)
	assert.Equal(t, 0.0, m.AvgHoldingPeriod)
}

func TestComputeMetricsGrowth(t *testing.T) {
	// 252 days doubling linearly: total return is 100%.
	values := make([]float64, 252)
	for i := range values {
		values[i] = 100 + 100*float64(i)/251
	}
	m := computeMetrics(values, nil, 100, 0, 0, 0)

	assert.InDelta(t, 1.0, m.TotalReturn, 1e-9)
	assert.InDelta(t, 1.0, m.AnnualizedReturn, 1e-9)
	assert.Greater(t, m.SharpeRatio, 0.0)
	assert.Equal(t, 0.0, m.MaxDrawdown)
}

func TestComputeMetricsTrades(t *testing.T) {
	values := []float64{100, 110, 105}
	trades := []Trade{
		{Day: 1, PnL: 10},
		{Day: 2, PnL: 4},
		{Day: 2, PnL: -5},
	}
	m := computeMetrics(values, trades, 100, 2, 1, 9)

	assert.Equal(t, 2, m.WinCount)
	assert.Equal(t, 1, m.LossCount)
	assert.InDelta(t, 7.0, m.AvgWin, 1e-9)
	assert.InDelta(t, -5.0, m.AvgLoss, 1e-9)
	assert.InDelta(t, 3.0, m.AvgHoldingPeriod, 1e-9)
	assert.InDelta(t, 2.0/3.0, m.WinRate(), 1e-9)
}

func TestMaxDrawdown(t *testing.T) {
	// Peak 120, trough 90: drawdown 25%.
	values := []float64{100, 120, 110, 90, 115, 130}
	assert.InDelta(t, 0.25, maxDrawdown(values), 1e-9)

	// Monotonic rise has no drawdown.
	assert.Equal(t, 0.0, maxDrawdown([]float64{1, 2, 3}))
	assert.Equal(t, 0.0, maxDrawdown(nil))
}

func TestMetricsString(t *testing.T) {
	m := Metrics{TotalReturn: 0.1, SharpeRatio: 1.5, WinCount: 3, LossCount: 1}
	s := m.String()
	assert.Contains(t, s, "Performance Metrics")
	assert.Contains(t, s, "10.00%")
	assert.Contains(t, s, "3/4")
	assert.False(t, math.IsNaN(m.WinRate()))
}
