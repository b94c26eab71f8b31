package journal

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVJournal(t *testing.T) {
	dir := t.TempDir()
	tradesPath := filepath.Join(dir, "trades.csv")
	equityPath := filepath.Join(dir, "equity.csv")

	j, err := NewCSV(tradesPath, equityPath)
	require.NoError(t, err)

	require.NoError(t, j.RecordTrade(TradeRecord{
		ID:       "01TESTULID",
		SymbolA:  "AAA",
		SymbolB:  "BBB",
		Direction: 1,
		EntryDay: 20,
		ExitDay:  25,
		PnL:      123.456789,
	}))
	require.NoError(t, j.RecordEquity(EquitySnapshot{Day: 25, Cash: 990000, PortfolioValue: 1000123.456789}))
	require.NoError(t, j.Close())

	tf, err := os.Open(tradesPath)
	require.NoError(t, err)
	defer tf.Close()

	rows, err := csv.NewReader(tf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"trade_id", "symbol_a", "symbol_b", "direction", "entry_day", "exit_day", "pnl"}, rows[0])
	assert.Equal(t, []string{"01TESTULID", "AAA", "BBB", "1", "20", "25", "123.456789"}, rows[1])

	ef, err := os.Open(equityPath)
	require.NoError(t, err)
	defer ef.Close()

	rows, err = csv.NewReader(ef).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"25", "990000.000000", "1000123.456789"}, rows[1])
}
