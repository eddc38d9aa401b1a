package dashboard

// Holding is a row of the positions table.
type Holding struct {
	Position
	Unrealized      Money   // (last - avgPrice) × qty, zero when not quoted
	UnrealizedRatio Percent // (last - avgPrice) / avgPrice
	HasRatio        bool    // false when not quoted or avgPrice is zero
	Realized        Money   // Σ realized of every trade of the symbol
	Total           Money   // Unrealized + Realized
	Trades          int     // number of trades of the symbol
}

// Holdings is the positions table with its totals row.
type Holdings struct {
	Rows []Holding

	// The totals row is the account's: M2, M3, M9 and M3 + M9.
	MarketValue Money
	Unrealized  Money
	Realized    Money
	Total       Money
}

// NewHoldings builds the positions table in positions order.
func NewHoldings(positions []Position, trades []Trade, m Metrics) Holdings {
	realized := make(map[string]Money)
	counts := make(map[string]int)
	for _, t := range trades {
		realized[t.Symbol] = realized[t.Symbol].Add(t.Realized)
		counts[t.Symbol]++
	}

	h := Holdings{
		Rows:        make([]Holding, 0, len(positions)),
		MarketValue: m.MarketValue,
		Unrealized:  m.Floating,
		Realized:    m.HistoricalRealized,
		Total:       m.Floating.Add(m.HistoricalRealized),
	}
	for _, p := range positions {
		row := Holding{
			Position: p,
			Realized: realized[p.Symbol],
			Trades:   counts[p.Symbol],
		}
		if p.Quoted() {
			row.Unrealized = p.Last.Sub(p.AvgPrice).Mul(p.Qty)
			row.UnrealizedRatio, row.HasRatio = p.Last.Sub(p.AvgPrice).Ratio(p.AvgPrice)
		}
		row.Total = row.Unrealized.Add(row.Realized)
		h.Rows = append(h.Rows, row)
	}
	return h
}
