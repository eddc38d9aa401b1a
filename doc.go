// Package dashboard computes the metrics of a brokerage-account dashboard from
// a ledger of executed trades, a snapshot of current positions, and the
// history of daily results.
//
// The core is a stateless engine:
//   - FIFO lot matching: closing trades consume the oldest open quantity of
//     their symbol first. IntradayPnL credits round trips opened and closed on
//     the same day, HistoricalFIFOPnL credits the day's closing trades against
//     the lots open before the day.
//   - Calendar totals: week, month and year-to-date sums of daily results.
//   - Metrics: thirteen figures (cost basis, market value, floating and
//     realized P&L, trade counts, win rate, period-to-date P&L), see [Key].
//
// Every call rebuilds its lots from its inputs and "today" is always an
// explicit argument, so results only depend on what is passed in.
//
// Around the engine, the package decodes the JSONL files the dashboard reads
// and refreshes positions' last price from a JSON quote API.
package dashboard
