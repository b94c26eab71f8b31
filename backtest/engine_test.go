package backtest

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/statarb/market"
)

// testData builds a 100-day store with three related symbols and one
// unrelated one. AAA/BBB and AAA/CCC are cointegrated by construction;
// DDD follows an accelerating trend and pairs with nothing.
func testData(t *testing.T) *market.Data {
	t.Helper()

	n := 100
	var b strings.Builder
	b.WriteString("Date,AAA,BBB,CCC,DDD\n")
	for i := 0; i < n; i++ {
		aaa := 100 + 0.3*float64(i) + math.Sin(float64(i))
		bbb := 2*aaa + 0.25*math.Cos(3*float64(i))
		ccc := 0.5*aaa + 0.1*math.Cos(5*float64(i))
		ddd := float64((i + 1) * (i + 1))
		fmt.Fprintf(&b, "day%03d,%.8f,%.8f,%.8f,%.8f\n", i, aaa, bbb, ccc, ddd)
	}

	d, err := market.Load(strings.NewReader(b.String()))
	require.NoError(t, err)
	require.Equal(t, n, d.Len())
	return d
}

func TestAddPair(t *testing.T) {
	e := New(testData(t))

	added, err := e.AddPair("AAA", "BBB")
	require.NoError(t, err)
	assert.True(t, added)
	require.Len(t, e.Pairs(), 1)
	assert.InDelta(t, 0.5, e.Pairs()[0].Beta(), 0.01)

	added, err = e.AddPair("AAA", "CCC")
	require.NoError(t, err)
	assert.True(t, added)
	assert.Len(t, e.Pairs(), 2)
}

func TestAddPairMissingSymbol(t *testing.T) {
	e := New(testData(t))

	added, err := e.AddPair("AAA", "ZZZ")
	assert.Error(t, err)
	assert.False(t, added)
	assert.Empty(t, e.Pairs())
}

func TestAddPairNotCointegrated(t *testing.T) {
	e := New(testData(t))

	added, err := e.AddPair("AAA", "DDD")
	require.NoError(t, err)
	assert.False(t, added)
	assert.Empty(t, e.Pairs())
}

func TestRunEndToEnd(t *testing.T) {
	e := New(testData(t))

	for _, p := range [][2]string{{"AAA", "BBB"}, {"AAA", "CCC"}} {
		added, err := e.AddPair(p[0], p[1])
		require.NoError(t, err)
		require.True(t, added)
	}

	res, err := e.Run(RunConfig{
		Capital:        1_000_000,
		EntryThreshold: 1.0,
		ExitThreshold:  0.0,
		LookbackWindow: 20,
	})
	require.NoError(t, err)

	require.Len(t, res.Values, 100)

	// Days before the lookback window hold the initial capital.
	for day := 0; day < 20; day++ {
		assert.Equal(t, 1_000_000.0, res.Values[day], "day %d", day)
	}

	// The oscillating spreads must have traded at this entry threshold.
	require.NotEmpty(t, res.Trades)
	assert.Equal(t, len(res.Trades), res.Metrics.WinCount+res.Metrics.LossCount)

	assert.False(t, math.IsNaN(res.Metrics.TotalReturn))
	assert.False(t, math.IsInf(res.Metrics.TotalReturn, 0))
	assert.False(t, math.IsNaN(res.Metrics.SharpeRatio))
	assert.False(t, math.IsInf(res.Metrics.SharpeRatio, 0))
	assert.False(t, math.IsNaN(res.Metrics.AnnualizedReturn))
	assert.GreaterOrEqual(t, res.Metrics.MaxDrawdown, 0.0)
	assert.LessOrEqual(t, res.Metrics.MaxDrawdown, 1.0)

	if len(res.Trades) > 0 {
		assert.Greater(t, res.Metrics.AvgHoldingPeriod, 0.0)
	}
}

func TestRunDelayedExecution(t *testing.T) {
	e := New(testData(t))

	added, err := e.AddPair("AAA", "BBB")
	require.NoError(t, err)
	require.True(t, added)

	res, err := e.Run(RunConfig{
		Capital:          1_000_000,
		EntryThreshold:   1.0,
		ExitThreshold:    0.0,
		LookbackWindow:   20,
		DelayedExecution: true,
	})
	require.NoError(t, err)

	require.Len(t, res.Values, 100)
	for _, v := range res.Values {
		assert.False(t, math.IsNaN(v))
	}
}

func TestRunResetsState(t *testing.T) {
	e := New(testData(t))

	added, err := e.AddPair("AAA", "BBB")
	require.NoError(t, err)
	require.True(t, added)

	cfg := RunConfig{Capital: 1_000_000, EntryThreshold: 1.0, ExitThreshold: 0.0, LookbackWindow: 20}

	first, err := e.Run(cfg)
	require.NoError(t, err)
	second, err := e.Run(cfg)
	require.NoError(t, err)

	// Re-running with identical parameters reproduces the run exactly.
	assert.Equal(t, first.Values, second.Values)
	assert.Equal(t, first.Trades, second.Trades)
	assert.Equal(t, first.Metrics, second.Metrics)
}

func TestRunEmptyStore(t *testing.T) {
	d, err := market.Load(strings.NewReader("Date,AAA,BBB\n"))
	require.NoError(t, err)

	e := New(d)
	res, err := e.Run(RunConfig{Capital: 1_000_000, LookbackWindow: 20})
	assert.Error(t, err)
	assert.Empty(t, res.Values)
	assert.Equal(t, Metrics{}, res.Metrics)
}
