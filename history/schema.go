package history

// Schema creates the daily results table. Amounts are decimal strings.
const Schema = `
CREATE TABLE IF NOT EXISTS daily_results (
	id       TEXT PRIMARY KEY,
	date     TEXT NOT NULL UNIQUE,
	realized TEXT NOT NULL,
	float    TEXT NOT NULL,
	pnl      TEXT NOT NULL,
	currency TEXT NOT NULL
);
`
