package dashboard

import "github.com/etnz/dashboard/date"

// IntradayPnL returns the profit of the round trips both opened and closed on day.
//
// Trades of the day are replayed in time order against per-symbol FIFO lots
// that start empty, so quantity opened before day is never matched, and
// quantity still open at the end of day contributes nothing.
func IntradayPnL(trades []Trade, day date.Date) Money {
	b := make(book)
	var pnl Money
	for _, t := range chronological(filter(trades, func(t Trade) bool { return t.On(day) })) {
		pnl = pnl.Add(b.apply(t))
	}
	return pnl
}

// HistoricalFIFOPnL returns the profit realized on day by closing trades
// matched against the lots actually open at the start of day.
//
// Every trade before day is replayed in time order to rebuild the open lots,
// then only the sell and short trades of day are applied, in list order.
func HistoricalFIFOPnL(trades []Trade, day date.Date) Money {
	b := make(book)
	for _, t := range chronological(filter(trades, func(t Trade) bool { return t.Day().Before(day) })) {
		b.apply(t)
	}
	var pnl Money
	for _, t := range trades {
		if t.On(day) && t.Action.IsSellSide() {
			pnl = pnl.Add(b.close(t))
		}
	}
	return pnl
}
