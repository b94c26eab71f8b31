package journal

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/statarb/pkg/id"
)

func TestSQLiteJournal(t *testing.T) {
	j, err := NewSQLite(filepath.Join(t.TempDir(), "journal.sqlite"))
	require.NoError(t, err)
	defer j.Close()

	first := TradeRecord{
		ID:        id.New(),
		SymbolA:   "AAA",
		SymbolB:   "BBB",
		Direction: -1,
		EntryDay:  21,
		ExitDay:   30,
		PnL:       -42.5,
	}
	second := TradeRecord{
		ID:        id.New(),
		SymbolA:   "AAA",
		SymbolB:   "CCC",
		Direction: 1,
		EntryDay:  25,
		ExitDay:   28,
		PnL:       17.25,
	}

	require.NoError(t, j.RecordTrade(first))
	require.NoError(t, j.RecordTrade(second))
	require.NoError(t, j.RecordEquity(EquitySnapshot{Day: 30, Cash: 100, PortfolioValue: 57.5}))

	trades, err := j.ListTrades()
	require.NoError(t, err)
	require.Len(t, trades, 2)
	// Ordered by exit day.
	assert.Equal(t, second, trades[0])
	assert.Equal(t, first, trades[1])

	equity, err := j.ListEquity()
	require.NoError(t, err)
	require.Len(t, equity, 1)
	assert.Equal(t, 30, equity[0].Day)
	assert.Equal(t, 57.5, equity[0].PortfolioValue)
}

func TestSQLiteJournalEquityReplace(t *testing.T) {
	j, err := NewSQLite(filepath.Join(t.TempDir(), "journal.sqlite"))
	require.NoError(t, err)
	defer j.Close()

	require.NoError(t, j.RecordEquity(EquitySnapshot{Day: 5, Cash: 1, PortfolioValue: 1}))
	require.NoError(t, j.RecordEquity(EquitySnapshot{Day: 5, Cash: 2, PortfolioValue: 2}))

	equity, err := j.ListEquity()
	require.NoError(t, err)
	require.Len(t, equity, 1)
	assert.Equal(t, 2.0, equity[0].Cash)
}
