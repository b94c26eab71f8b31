// Package backtest simulates pairs-trading strategies against a shared
// cash account. The engine owns the cash ledger, open positions and the
// full portfolio-value/trade history; pair models only produce signals.
package backtest

import (
	"fmt"
	"io"
	"log"

	"github.com/rustyeddy/statarb/journal"
	"github.com/rustyeddy/statarb/market"
	"github.com/rustyeddy/statarb/pairs"
	"github.com/rustyeddy/statarb/pkg/id"
)

// positionFraction is the share of portfolio value allocated to a new
// position, split evenly between the two legs.
const positionFraction = 0.10

// tradingDaysPerYear is the annualization basis for returns and Sharpe.
const tradingDaysPerYear = 252.0

// Position is one open pair trade. Leg quantities carry opposite
// signs; Direction is +1 for long spread, -1 for short spread.
type Position struct {
	SymbolA     string
	SymbolB     string
	QuantityA   float64
	QuantityB   float64
	EntryPriceA float64
	EntryPriceB float64
	EntryDay    int
	Direction   pairs.Signal
}

// Trade is the realized outcome of a closed position.
type Trade struct {
	Day int
	PnL float64
}

// RunConfig parameterizes a single backtest run.
type RunConfig struct {
	Capital          float64
	EntryThreshold   float64
	ExitThreshold    float64
	LookbackWindow   int
	DelayedExecution bool // T+1 fills
}

// Result is everything a completed run produced.
type Result struct {
	Values  []float64
	Trades  []Trade
	Metrics Metrics
}

// Engine orchestrates pair models against the market data store.
// Pairs are processed strictly sequentially: every pair's execution
// loop reads and mutates the same cash balance and value timeline, so
// ordering is a correctness requirement, not an implementation detail.
type Engine struct {
	data    *market.Data
	pairs   []*pairs.Pair
	journal journal.Journal
	logger  *log.Logger

	cash           float64
	initialCapital float64
	positions      map[string]*Position
	values         []float64
	cashHistory    []float64
	trades         []Trade

	winCount    int
	lossCount   int
	holdingDays int
}

// Option configures an Engine.
type Option func(*Engine)

// WithJournal records closed trades and the equity curve to j.
func WithJournal(j journal.Journal) Option {
	return func(e *Engine) { e.journal = j }
}

// WithLogger routes diagnostics (skipped pairs, journal failures) to l.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// New creates an engine over a loaded market data store.
func New(data *market.Data, opts ...Option) *Engine {
	e := &Engine{
		data:      data,
		journal:   journal.Noop{},
		logger:    log.New(io.Discard, "", 0),
		positions: make(map[string]*Position),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Pairs returns the retained (cointegrated) pair models.
func (e *Engine) Pairs() []*pairs.Pair { return e.pairs }

// AddPair builds a pair model for two symbols and retains it only if
// the pair tests as cointegrated. A missing price series is an error
// the caller should log and skip; a non-cointegrated pair is a normal
// false result.
func (e *Engine) AddPair(symbolA, symbolB string) (bool, error) {
	pricesA, ok := e.data.PriceSeries(symbolA)
	if !ok {
		return false, fmt.Errorf("backtest: no price data for %q", symbolA)
	}
	pricesB, ok := e.data.PriceSeries(symbolB)
	if !ok {
		return false, fmt.Errorf("backtest: no price data for %q", symbolB)
	}

	pair := pairs.New(symbolA, symbolB, pricesA, pricesB, pairs.WithLogger(e.logger))
	if !pair.TestCointegration() {
		e.logger.Printf("pair %s/%s is not cointegrated, skipping", symbolA, symbolB)
		return false, nil
	}

	e.logger.Printf("pair %s/%s is cointegrated with beta %.4f", symbolA, symbolB, pair.Beta())
	e.pairs = append(e.pairs, pair)
	return true, nil
}

// Run executes the backtest and computes metrics. All engine state is
// reset first; an empty data store aborts with zeroed results.
func (e *Engine) Run(cfg RunConfig) (Result, error) {
	e.cash = cfg.Capital
	e.initialCapital = cfg.Capital
	e.positions = make(map[string]*Position)
	e.values = nil
	e.cashHistory = nil
	e.trades = nil
	e.winCount = 0
	e.lossCount = 0
	e.holdingDays = 0

	numDays := e.data.Len()
	if numDays == 0 {
		return Result{}, fmt.Errorf("backtest: no market data available")
	}

	// Days before the lookback window carry the initial capital: no
	// positions can exist yet, so cash is the whole portfolio.
	e.values = make([]float64, numDays)
	e.cashHistory = make([]float64, numDays)
	for i := range e.values {
		e.values[i] = cfg.Capital
		e.cashHistory[i] = cfg.Capital
	}

	for _, pair := range e.pairs {
		signals := pair.GenerateSignals(cfg.EntryThreshold, cfg.ExitThreshold, cfg.LookbackWindow)
		key := pairKey(pair.SymbolA(), pair.SymbolB())
		held := pairs.Flat

		for day := cfg.LookbackWindow; day < numDays; day++ {
			signal := pairs.Flat
			if day < len(signals) {
				signal = signals[day]
			}

			// T+1: fill on the next day when one exists.
			execDay := day
			if cfg.DelayedExecution && day+1 < numDays {
				execDay = day + 1
			}

			if signal != held {
				if held != pairs.Flat {
					e.closePosition(pair, key, execDay)
				}
				if signal != pairs.Flat {
					e.openPosition(pair, key, signal, execDay)
				}
				held = signal
			}

			e.values[day] = e.portfolioValue(day)
			e.cashHistory[day] = e.cash
		}
	}

	metrics := computeMetrics(e.values, e.trades, e.initialCapital,
		e.winCount, e.lossCount, e.holdingDays)

	e.recordEquity()

	return Result{Values: e.values, Trades: e.trades, Metrics: metrics}, nil
}

func (e *Engine) openPosition(pair *pairs.Pair, key string, signal pairs.Signal, execDay int) {
	priceA := pair.PricesA()[execDay]
	priceB := pair.PricesB()[execDay]

	// Size off the portfolio value as of the prior day.
	size := e.portfolioValue(execDay-1) * positionFraction

	var quantityA, quantityB float64
	if signal == pairs.Long {
		// Long spread: buy A, sell B.
		quantityA = size / (2 * priceA)
		quantityB = -size / (2 * priceB)
	} else {
		// Short spread: sell A, buy B.
		quantityA = -size / (2 * priceA)
		quantityB = size / (2 * priceB)
	}

	e.positions[key] = &Position{
		SymbolA:     pair.SymbolA(),
		SymbolB:     pair.SymbolB(),
		QuantityA:   quantityA,
		QuantityB:   quantityB,
		EntryPriceA: priceA,
		EntryPriceB: priceB,
		EntryDay:    execDay,
		Direction:   signal,
	}

	e.cash -= quantityA*priceA + quantityB*priceB
}

func (e *Engine) closePosition(pair *pairs.Pair, key string, execDay int) {
	pos, ok := e.positions[key]
	if !ok {
		return
	}

	priceA := pair.PricesA()[execDay]
	priceB := pair.PricesB()[execDay]

	exitValueA := pos.QuantityA * priceA
	exitValueB := pos.QuantityB * priceB
	entryValueA := pos.QuantityA * pos.EntryPriceA
	entryValueB := pos.QuantityB * pos.EntryPriceB

	pnl := (exitValueA - entryValueA) + (exitValueB - entryValueB)

	e.trades = append(e.trades, Trade{Day: execDay, PnL: pnl})
	e.cash += exitValueA + exitValueB

	if pnl > 0 {
		e.winCount++
	} else {
		e.lossCount++
	}
	e.holdingDays += execDay - pos.EntryDay

	if err := e.journal.RecordTrade(journal.TradeRecord{
		ID:        id.New(),
		SymbolA:   pos.SymbolA,
		SymbolB:   pos.SymbolB,
		Direction: int(pos.Direction),
		EntryDay:  pos.EntryDay,
		ExitDay:   execDay,
		PnL:       pnl,
	}); err != nil {
		e.logger.Printf("journal trade: %v", err)
	}

	delete(e.positions, key)
}

// portfolioValue is cash plus the mark-to-market of every open
// position across all pairs at the given day's prices. A position
// whose price is unavailable that day contributes nothing; this is a
// documented limitation, not silently corrected.
func (e *Engine) portfolioValue(day int) float64 {
	if day < 0 || day >= e.data.Len() {
		return e.initialCapital
	}

	total := e.cash

	// Iterate in pair order so valuation is deterministic.
	for _, pair := range e.pairs {
		pos, ok := e.positions[pairKey(pair.SymbolA(), pair.SymbolB())]
		if !ok {
			continue
		}

		pricesA, okA := e.data.PriceSeries(pos.SymbolA)
		pricesB, okB := e.data.PriceSeries(pos.SymbolB)
		if okA && okB && day < len(pricesA) && day < len(pricesB) {
			total += pos.QuantityA*pricesA[day] + pos.QuantityB*pricesB[day]
		}
	}

	return total
}

func (e *Engine) recordEquity() {
	for day, value := range e.values {
		err := e.journal.RecordEquity(journal.EquitySnapshot{
			Day:            day,
			Cash:           e.cashHistory[day],
			PortfolioValue: value,
		})
		if err != nil {
			e.logger.Printf("journal equity: %v", err)
			return
		}
	}
}

func pairKey(symbolA, symbolB string) string {
	return symbolA + "/" + symbolB
}
