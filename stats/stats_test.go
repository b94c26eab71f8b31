package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	assert.InDelta(t, 3.0, Mean([]float64{1, 2, 3, 4, 5}), 1e-9)
	assert.InDelta(t, 42.0, Mean([]float64{42}), 1e-9)
}

func TestMeanEmpty(t *testing.T) {
	assert.True(t, math.IsNaN(Mean(nil)))
}

func TestStdDev(t *testing.T) {
	// Sample stddev of {2,4,4,4,5,5,7,9} is 2.138...
	sd := StdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	assert.InDelta(t, 2.13809, sd, 1e-4)
}

func TestStdDevConstant(t *testing.T) {
	assert.Equal(t, 0.0, StdDev([]float64{5, 5, 5, 5}))
}

func TestStdDevTooFew(t *testing.T) {
	assert.True(t, math.IsNaN(StdDev(nil)))
	assert.True(t, math.IsNaN(StdDev([]float64{1})))
}

func TestReturns(t *testing.T) {
	rets := Returns([]float64{100, 110, 99})
	assert.Len(t, rets, 2)
	assert.InDelta(t, 0.10, rets[0], 1e-9)
	assert.InDelta(t, -0.10, rets[1], 1e-9)
}

func TestReturnsShortInput(t *testing.T) {
	assert.Empty(t, Returns(nil))
	assert.Empty(t, Returns([]float64{100}))
}
