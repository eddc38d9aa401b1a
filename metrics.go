package dashboard

import (
	"github.com/etnz/dashboard/date"
	"github.com/shopspring/decimal"
)

// Metrics are the thirteen dashboard metrics of an account on a given day.
type Metrics struct {
	AsOf date.Date

	CostBasis          Money   // M1: Σ avgPrice × |qty|
	MarketValue        Money   // M2: Σ last × qty
	Floating           Money   // M3: M2 - M1
	TodayRealized      Money   // M4: Σ realized of today's trades
	IntradayTrading    Money   // M5: same-day FIFO round trips
	TodayFloating      Money   // M6: M3 + M4
	TodayTrades        int     // M7
	TotalTrades        int     // M8: buy+cover plus sell+short, whole history
	HistoricalRealized Money   // M9: Σ realized of trades not dated today
	WinRate            Percent // M10
	WTD                Money   // M11
	MTD                Money   // M12
	YTD                Money   // M13

	// HistoricalFIFO is today's realized profit of closing trades matched
	// against the lots open before today. It is not one of the published
	// metrics: M5 is fed by the same-day matcher only.
	HistoricalFIFO Money
}

// NewMetrics computes the metrics of an account on day asOf.
//
// It is a pure function of its inputs: nothing is cached between calls. A nil
// results slice stands for an empty daily history.
func NewMetrics(trades []Trade, positions []Position, results []DailyResult, asOf date.Date) Metrics {
	m := Metrics{AsOf: asOf}

	for _, p := range positions {
		m.CostBasis = m.CostBasis.Add(p.Cost())
		m.MarketValue = m.MarketValue.Add(p.MarketValue())
	}
	m.Floating = m.MarketValue.Sub(m.CostBasis)

	var buys, sells, wins, losses int
	for _, t := range trades {
		if t.On(asOf) {
			m.TodayRealized = m.TodayRealized.Add(t.Realized)
			m.TodayTrades++
		} else {
			m.HistoricalRealized = m.HistoricalRealized.Add(t.Realized)
		}
		switch {
		case t.Action.IsBuySide():
			buys++
		case t.Action.IsSellSide():
			sells++
		}
		switch {
		case t.Realized.IsPositive():
			wins++
		case t.Realized.IsNegative():
			losses++
		}
	}
	m.TotalTrades = buys + sells
	m.WinRate = winRate(wins, losses)

	m.IntradayTrading = IntradayPnL(trades, asOf)
	m.HistoricalFIFO = HistoricalFIFOPnL(trades, asOf)
	m.TodayFloating = m.Floating.Add(m.TodayRealized)

	totals := NewCalendarTotals(results, asOf)
	m.WTD, m.MTD, m.YTD = totals.WTD, totals.MTD, totals.YTD
	return m
}

// winRate returns wins / (wins + losses) as a percentage, 0 when there is neither.
func winRate(wins, losses int) Percent {
	if wins+losses == 0 {
		return 0
	}
	r := decimal.NewFromInt(int64(wins)).Shift(2).Div(decimal.NewFromInt(int64(wins + losses)))
	return Percent(r.InexactFloat64())
}

// Value returns the value of metric k.
func (m Metrics) Value(k Key) decimal.Decimal {
	switch k {
	case M1:
		return m.CostBasis.Decimal()
	case M2:
		return m.MarketValue.Decimal()
	case M3:
		return m.Floating.Decimal()
	case M4:
		return m.TodayRealized.Decimal()
	case M5:
		return m.IntradayTrading.Decimal()
	case M6:
		return m.TodayFloating.Decimal()
	case M7:
		return decimal.NewFromInt(int64(m.TodayTrades))
	case M8:
		return decimal.NewFromInt(int64(m.TotalTrades))
	case M9:
		return m.HistoricalRealized.Decimal()
	case M10:
		return decimal.NewFromFloat(float64(m.WinRate))
	case M11:
		return m.WTD.Decimal()
	case M12:
		return m.MTD.Decimal()
	case M13:
		return m.YTD.Decimal()
	default:
		panic("unknown metric " + k.String())
	}
}

// Money returns the monetary value of metric k, false for counts and percentages.
func (m Metrics) Money(k Key) (Money, bool) {
	switch k {
	case M1:
		return m.CostBasis, true
	case M2:
		return m.MarketValue, true
	case M3:
		return m.Floating, true
	case M4:
		return m.TodayRealized, true
	case M5:
		return m.IntradayTrading, true
	case M6:
		return m.TodayFloating, true
	case M9:
		return m.HistoricalRealized, true
	case M11:
		return m.WTD, true
	case M12:
		return m.MTD, true
	case M13:
		return m.YTD, true
	default:
		return Money{}, false
	}
}

// Equal reports whether m and n hold the same values for the same day.
func (m Metrics) Equal(n Metrics) bool {
	if m.AsOf != n.AsOf || !m.HistoricalFIFO.Decimal().Equal(n.HistoricalFIFO.Decimal()) {
		return false
	}
	for _, k := range Keys() {
		if !m.Value(k).Equal(n.Value(k)) {
			return false
		}
	}
	return true
}

// DailyResult returns the record of the day for the daily history:
// realized is M4, float is M3 and pnl is M6.
func (m Metrics) DailyResult() DailyResult {
	return DailyResult{
		Date:     m.AsOf,
		Realized: m.TodayRealized,
		Float:    m.Floating,
		PnL:      m.TodayFloating,
	}
}
