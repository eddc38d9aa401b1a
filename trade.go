package dashboard

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/etnz/dashboard/date"
)

// Action is the side of an executed trade.
type Action string

const (
	Buy   Action = "buy"
	Sell  Action = "sell"
	Short Action = "short"
	Cover Action = "cover"
)

// ParseAction parses an action name, case insensitive.
func ParseAction(s string) (Action, error) {
	a := Action(strings.ToLower(strings.TrimSpace(s)))
	if !a.IsBuySide() && !a.IsSellSide() {
		return "", fmt.Errorf("unknown action %q, want one of buy, sell, short, cover", s)
	}
	return a, nil
}

// IsBuySide reports whether the trade opens a lot: buy or cover.
func (a Action) IsBuySide() bool { return a == Buy || a == Cover }

// IsSellSide reports whether the trade consumes lots: sell or short.
func (a Action) IsSellSide() bool { return a == Sell || a == Short }

var (
	ErrInvalidTrade    = errors.New("invalid trade")
	ErrInvalidPosition = errors.New("invalid position")
)

// Trade is an executed trade, already enriched with its realized profit.
type Trade struct {
	Time     time.Time
	Symbol   string
	Action   Action
	Quantity Quantity // always positive
	Price    Money    // always positive
	// Realized is the realized P&L computed upstream for this trade. A trade
	// without one has a zero Realized.
	Realized Money
}

// Day returns the calendar day the trade was executed on, as written in its timestamp.
func (t Trade) Day() date.Date { return date.Of(t.Time) }

// On reports whether the trade was executed on day.
func (t Trade) On(day date.Date) bool { return t.Day() == day }

// Validate checks the trade invariants: a symbol, a known action, and positive quantity and price.
func (t Trade) Validate() error {
	var errs []error
	if t.Symbol == "" {
		errs = append(errs, errors.New("missing symbol"))
	}
	if !t.Action.IsBuySide() && !t.Action.IsSellSide() {
		errs = append(errs, fmt.Errorf("unknown action %q", t.Action))
	}
	if !t.Quantity.IsPositive() {
		errs = append(errs, fmt.Errorf("quantity must be positive, got %v", t.Quantity))
	}
	if !t.Price.IsPositive() {
		errs = append(errs, fmt.Errorf("price must be positive, got %v", t.Price.Decimal()))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidTrade, errors.Join(errs...))
	}
	return nil
}

// timestampFormats are the accepted trade timestamp layouts, month and day may be single digits.
var timestampFormats = []string{
	time.RFC3339Nano,
	"2006-1-2T15:04:05",
	"2006-1-2 15:04:05",
	"2006-1-2T15:04",
	"2006-1-2 15:04",
	"2006-1-2",
}

// ParseTimestamp parses a trade timestamp. Timestamps without a zone are read as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q, want an ISO-8601 date with an optional time", s)
}

// chronological returns a copy of trades, stable sorted by execution time.
// Trades at the same instant keep their list order.
func chronological(trades []Trade) []Trade {
	sorted := slices.Clone(trades)
	slices.SortStableFunc(sorted, func(a, b Trade) int { return a.Time.Compare(b.Time) })
	return sorted
}

// filter returns the trades matching keep, in list order.
func filter(trades []Trade, keep func(Trade) bool) []Trade {
	var res []Trade
	for _, t := range trades {
		if keep(t) {
			res = append(res, t)
		}
	}
	return res
}
