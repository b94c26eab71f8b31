// Package journal records closed trades and daily equity snapshots
// produced by a backtest run. Implementations write CSV files or a
// SQLite database; the engine only sees the Journal interface, so the
// numeric core stays free of output side effects.
package journal

// TradeRecord describes one closed pair trade.
type TradeRecord struct {
	ID        string
	SymbolA   string
	SymbolB   string
	Direction int // +1 long spread, -1 short spread
	EntryDay  int
	ExitDay   int
	PnL       float64
}

// EquitySnapshot is the portfolio state recorded for one trading day.
type EquitySnapshot struct {
	Day            int
	Cash           float64
	PortfolioValue float64
}

// Journal persists trade and equity records.
type Journal interface {
	RecordTrade(TradeRecord) error
	RecordEquity(EquitySnapshot) error
	Close() error
}

// Noop discards everything. It is the default journal for runs that
// only need the in-memory results.
type Noop struct{}

func (Noop) RecordTrade(TradeRecord) error     { return nil }
func (Noop) RecordEquity(EquitySnapshot) error { return nil }
func (Noop) Close() error                      { return nil }
