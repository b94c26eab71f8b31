package journal

// Schema creates the journal tables. trade_id is a ULID, so the
// primary key index is also a generation-time ordering.
const Schema = `
CREATE TABLE IF NOT EXISTS trades (
	trade_id  TEXT PRIMARY KEY,
	symbol_a  TEXT NOT NULL,
	symbol_b  TEXT NOT NULL,
	direction INTEGER NOT NULL,
	entry_day INTEGER NOT NULL,
	exit_day  INTEGER NOT NULL,
	pnl       REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS equity (
	day             INTEGER PRIMARY KEY,
	cash            REAL NOT NULL,
	portfolio_value REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_trades_exit_day ON trades(exit_day);
`
