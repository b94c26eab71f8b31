package backtest

import (
	"fmt"
	"math"
	"strings"

	"github.com/rustyeddy/statarb/stats"
)

// Metrics aggregates a run's performance. Computed once, after all
// pairs and days have been processed.
type Metrics struct {
	TotalReturn      float64
	AnnualizedReturn float64
	SharpeRatio      float64
	MaxDrawdown      float64
	WinCount         int
	LossCount        int
	AvgWin           float64
	AvgLoss          float64
	AvgHoldingPeriod float64
}

func computeMetrics(values []float64, trades []Trade, initialCapital float64, winCount, lossCount, holdingDays int) Metrics {
	m := Metrics{WinCount: winCount, LossCount: lossCount}
	if len(values) == 0 {
		return m
	}

	finalValue := values[len(values)-1]
	m.TotalReturn = finalValue/initialCapital - 1.0

	years := float64(len(values)) / tradingDaysPerYear
	m.AnnualizedReturn = math.Pow(1.0+m.TotalReturn, 1.0/years) - 1.0

	daily := stats.Returns(values)
	meanDaily := stats.Mean(daily)
	stdDaily := stats.StdDev(daily)
	if stdDaily > 0 {
		m.SharpeRatio = (meanDaily / stdDaily) * math.Sqrt(tradingDaysPerYear)
	}

	m.MaxDrawdown = maxDrawdown(values)

	totalTrades := winCount + lossCount
	if totalTrades > 0 {
		m.AvgHoldingPeriod = float64(holdingDays) / float64(totalTrades)
	}

	var totalWins, totalLosses float64
	for _, t := range trades {
		if t.PnL > 0 {
			totalWins += t.PnL
		} else {
			totalLosses += t.PnL
		}
	}
	if winCount > 0 {
		m.AvgWin = totalWins / float64(winCount)
	}
	if lossCount > 0 {
		m.AvgLoss = totalLosses / float64(lossCount)
	}

	return m
}

// maxDrawdown finds the largest peak-to-trough relative decline.
func maxDrawdown(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	maxValue := values[0]
	worst := 0.0
	for _, v := range values {
		if v > maxValue {
			maxValue = v
			continue
		}
		dd := (maxValue - v) / maxValue
		if dd > worst {
			worst = dd
		}
	}
	return worst
}

// WinRate is winning trades over all closed trades, or 0 with none.
func (m Metrics) WinRate() float64 {
	total := m.WinCount + m.LossCount
	if total == 0 {
		return 0
	}
	return float64(m.WinCount) / float64(total)
}

// String renders a human-readable performance summary.
func (m Metrics) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "------- Performance Metrics -------\n")
	fmt.Fprintf(&b, "Total Return:           %.2f%%\n", m.TotalReturn*100)
	fmt.Fprintf(&b, "Annualized Return:      %.2f%%\n", m.AnnualizedReturn*100)
	fmt.Fprintf(&b, "Sharpe Ratio:           %.4f\n", m.SharpeRatio)
	fmt.Fprintf(&b, "Max Drawdown:           %.2f%%\n", m.MaxDrawdown*100)
	fmt.Fprintf(&b, "Win Rate:               %.2f%% (%d/%d)\n", m.WinRate()*100, m.WinCount, m.WinCount+m.LossCount)
	fmt.Fprintf(&b, "Average Holding Period: %.1f days\n", m.AvgHoldingPeriod)
	fmt.Fprintf(&b, "Average Win:            %.2f\n", m.AvgWin)
	fmt.Fprintf(&b, "Average Loss:           %.2f", m.AvgLoss)
	return b.String()
}
