package dashboard

import (
	"fmt"
	"testing"
	"time"

	"github.com/etnz/dashboard/date"
)

func TestNewMetrics_Positions(t *testing.T) {
	testCases := []struct {
		name      string
		positions []Position
		wantM1    float64
		wantM2    float64
		wantM3    float64
	}{
		{
			name:      "no positions",
			positions: nil,
		},
		{
			name:      "long",
			positions: []Position{{Symbol: "AAPL", Qty: Q(10), AvgPrice: USD(100), Last: USD(110)}},
			wantM1:    1000,
			wantM2:    1100,
			wantM3:    100,
		},
		{
			name: "short reduces market value",
			positions: []Position{
				{Symbol: "AAPL", Qty: Q(10), AvgPrice: USD(100), Last: USD(110)},
				{Symbol: "TSLA", Qty: Q(-4), AvgPrice: USD(50), Last: USD(40)},
			},
			wantM1: 1000 + 200,
			wantM2: 1100 - 160,
			wantM3: 940 - 1200,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMetrics(nil, tc.positions, nil, wednesday)
			if !sameAmount(m.CostBasis, USD(tc.wantM1)) {
				t.Errorf("M1 = %v, want %v", m.CostBasis.Decimal(), tc.wantM1)
			}
			if !sameAmount(m.MarketValue, USD(tc.wantM2)) {
				t.Errorf("M2 = %v, want %v", m.MarketValue.Decimal(), tc.wantM2)
			}
			if !sameAmount(m.Floating, USD(tc.wantM3)) {
				t.Errorf("M3 = %v, want %v", m.Floating.Decimal(), tc.wantM3)
			}
		})
	}
}

func TestNewMetrics_WinRate(t *testing.T) {
	testCases := []struct {
		name string
		pnls []float64
		want Percent
	}{
		{"no trades", nil, 0},
		{"only flat trades", []float64{0, 0}, 0},
		{"three wins two losses", []float64{10, 5, 1, -3, -8}, 60},
		{"flat trades are excluded", []float64{10, 0, -1, 0}, 50},
		{"all wins", []float64{1, 2}, 100},
		{"two thirds", []float64{1, 2, -1}, 66.6667},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var trades []Trade
			for _, pnl := range tc.pnls {
				trades = append(trades, realized(t, "2025-03-01 10:00", Sell, pnl))
			}
			m := NewMetrics(trades, nil, nil, wednesday)
			if !m.WinRate.Equal(tc.want) {
				t.Errorf("M10 = %v, want %v", m.WinRate, tc.want)
			}
		})
	}
}

func TestNewMetrics_Trades(t *testing.T) {
	trades := []Trade{
		realized(t, "2025-03-03 10:00", Buy, 0),
		realized(t, "2025-03-04 10:00", Sell, 40),
		realized(t, "2025-03-04 11:00", Short, -15),
		realized(t, "2025-03-05 09:30", Cover, 7),
		realized(t, "2025-03-05 14:00", Sell, 5),
		realized(t, "2025-03-05 23:59", Buy, 0),
	}
	positions := []Position{{Symbol: "AAPL", Qty: Q(10), AvgPrice: USD(100), Last: USD(110)}}

	m := NewMetrics(trades, positions, nil, wednesday)

	if !sameAmount(m.TodayRealized, USD(12)) {
		t.Errorf("M4 = %v, want 12", m.TodayRealized.Decimal())
	}
	if !sameAmount(m.TodayFloating, USD(100+12)) {
		t.Errorf("M6 = %v, want 112", m.TodayFloating.Decimal())
	}
	if m.TodayTrades != 3 {
		t.Errorf("M7 = %v, want 3", m.TodayTrades)
	}
	if m.TotalTrades != 6 {
		t.Errorf("M8 = %v, want 6", m.TotalTrades)
	}
	if !sameAmount(m.HistoricalRealized, USD(25)) {
		t.Errorf("M9 = %v, want 25", m.HistoricalRealized.Decimal())
	}
}

func TestNewMetrics_MissingRealizedIsZero(t *testing.T) {
	tr := trade(t, "2025-03-05 10:00", "AAPL", Sell, 1, 10)
	tr.Realized = Money{}
	m := NewMetrics([]Trade{tr}, nil, nil, wednesday)
	if !m.TodayRealized.IsZero() || m.WinRate != 0 {
		t.Errorf("M4 = %v, M10 = %v, want 0 and 0", m.TodayRealized.Decimal(), m.WinRate)
	}
}

func TestNewMetrics_FIFO(t *testing.T) {
	trades := []Trade{
		trade(t, "2025-03-04 09:00", "AAPL", Buy, 10, 100),
		trade(t, "2025-03-05 09:00", "AAPL", Buy, 5, 104),
		trade(t, "2025-03-05 10:00", "AAPL", Sell, 12, 110),
	}
	m := NewMetrics(trades, nil, nil, wednesday)
	// same day: 5 bought at 104 and sold at 110.
	if !sameAmount(m.IntradayTrading, USD(30)) {
		t.Errorf("M5 = %v, want 30", m.IntradayTrading.Decimal())
	}
	// against history: 10 bought the day before at 100 and sold at 110.
	if !sameAmount(m.HistoricalFIFO, USD(100)) {
		t.Errorf("HistoricalFIFO = %v, want 100", m.HistoricalFIFO.Decimal())
	}
}

func TestNewMetrics_LoneSellContributesNothing(t *testing.T) {
	trades := []Trade{trade(t, "2025-03-05 10:00", "AAPL", Sell, 3, 10)}
	m := NewMetrics(trades, nil, nil, wednesday)
	if !m.IntradayTrading.IsZero() || !m.HistoricalFIFO.IsZero() {
		t.Errorf("M5 = %v, HistoricalFIFO = %v, want 0 and 0", m.IntradayTrading.Decimal(), m.HistoricalFIFO.Decimal())
	}
}

func TestNewMetrics_Calendar(t *testing.T) {
	results := []DailyResult{
		result(date.New(2024, time.December, 30), 1),
		result(date.New(2025, time.February, 28), 2),
		result(date.New(2025, time.March, 3), 4), // monday
		result(date.New(2025, time.March, 4), 8),
	}
	m := NewMetrics(nil, nil, results, wednesday)
	if !sameAmount(m.WTD, USD(12)) {
		t.Errorf("M11 = %v, want 12", m.WTD.Decimal())
	}
	if !sameAmount(m.MTD, USD(12)) {
		t.Errorf("M12 = %v, want 12", m.MTD.Decimal())
	}
	if !sameAmount(m.YTD, USD(14)) {
		t.Errorf("M13 = %v, want 14", m.YTD.Decimal())
	}
}

func TestNewMetrics_Idempotent(t *testing.T) {
	trades := []Trade{
		trade(t, "2025-03-04 09:00", "AAPL", Buy, 10, 100),
		trade(t, "2025-03-05 09:00", "AAPL", Buy, 5, 104),
		trade(t, "2025-03-05 10:00", "AAPL", Sell, 12, 110),
		realized(t, "2025-03-05 11:00", Sell, 3),
	}
	positions := []Position{{Symbol: "AAPL", Qty: Q(3), AvgPrice: USD(101), Last: USD(111)}}
	results := []DailyResult{result(date.New(2025, time.March, 4), 9)}

	first := NewMetrics(trades, positions, results, wednesday)
	second := NewMetrics(trades, positions, results, wednesday)
	if !first.Equal(second) {
		t.Errorf("NewMetrics() is not idempotent: %+v != %+v", first, second)
	}
	if other := NewMetrics(trades, positions, results, wednesday.Add(1)); first.Equal(other) {
		t.Errorf("NewMetrics() on another day should differ")
	}
}

func TestMetrics_DailyResult(t *testing.T) {
	trades := []Trade{realized(t, "2025-03-05 11:00", Sell, 3)}
	positions := []Position{{Symbol: "AAPL", Qty: Q(1), AvgPrice: USD(10), Last: USD(12)}}
	r := NewMetrics(trades, positions, nil, wednesday).DailyResult()
	if r.Date != wednesday || !sameAmount(r.Realized, USD(3)) || !sameAmount(r.Float, USD(2)) || !sameAmount(r.PnL, USD(5)) {
		t.Errorf("DailyResult() = %+v, want {2025-03-05 3 2 5}", r)
	}
}

func TestKeys(t *testing.T) {
	keys := Keys()
	if len(keys) != 13 {
		t.Fatalf("len(Keys()) = %d, want 13", len(keys))
	}
	m := NewMetrics(nil, nil, nil, wednesday)
	for i, k := range keys {
		if got, want := k.String(), fmt.Sprintf("M%d", i+1); got != want {
			t.Errorf("Keys()[%d] = %q, want %q", i, got, want)
		}
		if k.Title() == "" {
			t.Errorf("%v has no title", k)
		}
		if !m.Value(k).IsZero() {
			t.Errorf("empty metrics %v = %v, want 0", k, m.Value(k))
		}
		_, isMoney := m.Money(k)
		if isMoney == (k.IsCount() || k.IsPercent()) {
			t.Errorf("%v: Money() ok = %v, but IsCount() = %v and IsPercent() = %v", k, isMoney, k.IsCount(), k.IsPercent())
		}
	}
	signed := 0
	for _, k := range keys {
		if k.IsSigned() {
			signed++
		}
	}
	if signed != 7 {
		t.Errorf("%d signed metrics, want 7", signed)
	}
}
