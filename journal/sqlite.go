package journal

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteJournal persists trades and equity snapshots to a SQLite file.
type SQLiteJournal struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("journal: create schema: %w", err)
	}

	return &SQLiteJournal{db: db}, nil
}

func (j *SQLiteJournal) RecordTrade(t TradeRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO trades
		(trade_id, symbol_a, symbol_b, direction, entry_day, exit_day, pnl)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.SymbolA, t.SymbolB, t.Direction, t.EntryDay, t.ExitDay, t.PnL,
	)
	return err
}

func (j *SQLiteJournal) RecordEquity(e EquitySnapshot) error {
	_, err := j.db.Exec(`
		INSERT OR REPLACE INTO equity (day, cash, portfolio_value)
		VALUES (?, ?, ?)`,
		e.Day, e.Cash, e.PortfolioValue,
	)
	return err
}

// ListTrades returns all recorded trades ordered by exit day.
func (j *SQLiteJournal) ListTrades() ([]TradeRecord, error) {
	rows, err := j.db.Query(`
		SELECT trade_id, symbol_a, symbol_b, direction, entry_day, exit_day, pnl
		FROM trades ORDER BY exit_day, trade_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TradeRecord
	for rows.Next() {
		var t TradeRecord
		if err := rows.Scan(&t.ID, &t.SymbolA, &t.SymbolB, &t.Direction, &t.EntryDay, &t.ExitDay, &t.PnL); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// ListEquity returns the recorded equity curve in day order.
func (j *SQLiteJournal) ListEquity() ([]EquitySnapshot, error) {
	rows, err := j.db.Query(`SELECT day, cash, portfolio_value FROM equity ORDER BY day`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []EquitySnapshot
	for rows.Next() {
		var e EquitySnapshot
		if err := rows.Scan(&e.Day, &e.Cash, &e.PortfolioValue); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}
