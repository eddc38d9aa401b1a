package renderer

import "github.com/etnz/dashboard"

// missing is displayed in place of an unknown value.
const missing = "--"

// PositionRow is one formatted row of the positions table.
type PositionRow struct {
	Symbol      string
	Name        string
	Qty         string
	AvgPrice    string
	Last        string
	MarketValue string
	Unrealized  string
	Ratio       string
	Realized    string
	Total       string
	Trades      int
}

// Positions holds the data for the positions markdown.
type Positions struct {
	Date string
	Rows []PositionRow

	MarketValue string
	Unrealized  string
	Realized    string
	Total       string
}

// NewPositions formats the holdings. names maps symbols to display names and may be nil.
func NewPositions(h dashboard.Holdings, names map[string]string, m dashboard.Metrics, currency string) *Positions {
	p := &Positions{
		Date:        m.AsOf.String(),
		MarketValue: h.MarketValue.In(currency).String(),
		Unrealized:  h.Unrealized.In(currency).SignedString(),
		Realized:    h.Realized.In(currency).SignedString(),
		Total:       h.Total.In(currency).SignedString(),
	}
	for _, r := range h.Rows {
		row := PositionRow{
			Symbol:      r.Symbol,
			Name:        missing,
			Qty:         r.Qty.String(),
			AvgPrice:    r.AvgPrice.In(currency).String(),
			Last:        missing,
			MarketValue: missing,
			Unrealized:  missing,
			Ratio:       missing,
			Realized:    r.Realized.In(currency).SignedString(),
			Total:       r.Total.In(currency).SignedString(),
			Trades:      r.Trades,
		}
		if name, ok := names[r.Symbol]; ok && name != "" {
			row.Name = name
		}
		if r.Quoted() {
			row.Last = r.Last.In(currency).String()
			row.MarketValue = r.MarketValue().In(currency).String()
			row.Unrealized = r.Unrealized.In(currency).SignedString()
		}
		if r.HasRatio {
			row.Ratio = r.UnrealizedRatio.SignedString()
		}
		p.Rows = append(p.Rows, row)
	}
	return p
}

