package dashboard

import (
	"testing"
	"time"

	"github.com/etnz/dashboard/date"
)

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// trade is a helper to create a trade at a "2006-01-02 15:04" timestamp.
func trade(t *testing.T, ts, symbol string, action Action, qty, price float64) Trade {
	t.Helper()
	when, err := time.Parse("2006-01-02 15:04", ts)
	if err != nil {
		t.Fatalf("invalid test timestamp %q: %v", ts, err)
	}
	return Trade{Time: when, Symbol: symbol, Action: action, Quantity: Q(qty), Price: USD(price), Realized: USD(0)}
}

// realized is a helper to create a trade with an upstream realized P&L.
func realized(t *testing.T, ts string, action Action, pnl float64) Trade {
	t.Helper()
	tr := trade(t, ts, "AAPL", action, 1, 100)
	tr.Realized = USD(pnl)
	return tr
}

// sameAmount compares amounts regardless of the currency, empty sums have none.
func sameAmount(a, b Money) bool { return a.Decimal().Equal(b.Decimal()) }

// wednesday is the reference "today" of the tests: 2025-03-05.
var wednesday = date.New(2025, time.March, 5)
