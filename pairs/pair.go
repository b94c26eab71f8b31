// Package pairs models a single candidate trading pair: the
// cointegration spread between two aligned price series, its rolling
// z-scores, and the entry/exit signal automaton driven by them.
package pairs

import (
	"io"
	"log"

	"github.com/rustyeddy/statarb/stats"
)

// Pair owns two aligned price series for one candidate pair. The
// spread is priceA - beta*priceB and is recomputed whenever beta
// changes. Beta defaults to 1 (a simple difference) until a
// cointegration test runs.
type Pair struct {
	symbolA string
	symbolB string
	pricesA []float64
	pricesB []float64
	spread  []float64

	beta         float64
	cointegrated bool

	logger *log.Logger
}

// Option configures a Pair at construction.
type Option func(*Pair)

// WithLogger routes construction warnings to the given logger instead
// of the process default.
func WithLogger(l *log.Logger) Option {
	return func(p *Pair) { p.logger = l }
}

// New builds a pair model from two symbol price series. Series of
// different lengths are truncated to the shorter one; that is a
// warning, not an error.
func New(symbolA, symbolB string, pricesA, pricesB []float64, opts ...Option) *Pair {
	p := &Pair{
		symbolA: symbolA,
		symbolB: symbolB,
		pricesA: pricesA,
		pricesB: pricesB,
		beta:    1.0,
		logger:  log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(p)
	}

	if len(p.pricesA) != len(p.pricesB) {
		n := len(p.pricesA)
		if len(p.pricesB) < n {
			n = len(p.pricesB)
		}
		p.logger.Printf("pairs: %s/%s series lengths differ, truncating to %d days", symbolA, symbolB, n)
		p.pricesA = p.pricesA[:n]
		p.pricesB = p.pricesB[:n]
	}

	p.computeSpread()
	return p
}

func (p *Pair) SymbolA() string    { return p.symbolA }
func (p *Pair) SymbolB() string    { return p.symbolB }
func (p *Pair) PricesA() []float64 { return p.pricesA }
func (p *Pair) PricesB() []float64 { return p.pricesB }
func (p *Pair) Spread() []float64  { return p.spread }
func (p *Pair) Beta() float64      { return p.beta }
func (p *Pair) Cointegrated() bool { return p.cointegrated }

func (p *Pair) computeSpread() {
	p.spread = make([]float64, len(p.pricesA))
	for i := range p.pricesA {
		p.spread[i] = p.pricesA[i] - p.beta*p.pricesB[i]
	}
}

// TestCointegration regresses priceA on priceB to estimate the hedge
// ratio, recomputes the spread with the new beta, and runs the
// stationarity test on it. The resulting flag is stored and returned.
func (p *Pair) TestCointegration() bool {
	reg := stats.LinearRegression(p.pricesB, p.pricesA)
	p.beta = reg.Beta
	p.computeSpread()

	adf := stats.ADFTest(p.spread)
	p.cointegrated = adf.Stationary
	return p.cointegrated
}

// ZScores returns the rolling z-scores of the spread. A window at or
// beyond the series length is clamped to half the length, with a
// minimum of 2.
func (p *Pair) ZScores(window int) []float64 {
	if window >= len(p.spread) {
		window = len(p.spread) / 2
		if window < 2 {
			window = 2
		}
	}
	return stats.RollingZScore(p.spread, window)
}

// GenerateSignals runs the signal automaton over the z-score series
// computed with the given lookback window. The emitted slice has one
// signal per day.
func (p *Pair) GenerateSignals(entry, exit float64, lookback int) []Signal {
	zscores := p.ZScores(lookback)

	signals := make([]Signal, len(zscores))
	state := Flat
	for i, z := range zscores {
		state, signals[i] = Transition(state, z, entry, exit)
	}
	return signals
}
