package dashboard

import (
	"errors"
	"fmt"
)

// Position is the current holding of a symbol.
type Position struct {
	Symbol   string
	Qty      Quantity // negative for a short position
	AvgPrice Money    // average opening price
	Last     Money    // latest traded price, zero until quoted
}

// Cost returns the cost basis of the position: avgPrice × |qty|.
func (p Position) Cost() Money { return p.AvgPrice.Mul(p.Qty.Abs()) }

// MarketValue returns last × qty, negative for a short position.
func (p Position) MarketValue() Money { return p.Last.Mul(p.Qty) }

// Quoted reports whether the position has a latest price.
func (p Position) Quoted() bool { return p.Last.IsPositive() }

// Validate checks the position invariants.
func (p Position) Validate() error {
	var errs []error
	if p.Symbol == "" {
		errs = append(errs, errors.New("missing symbol"))
	}
	if p.AvgPrice.IsNegative() {
		errs = append(errs, fmt.Errorf("average price must not be negative, got %v", p.AvgPrice.Decimal()))
	}
	if p.Last.IsNegative() {
		errs = append(errs, fmt.Errorf("last price must not be negative, got %v", p.Last.Decimal()))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w %q: %w", ErrInvalidPosition, p.Symbol, errors.Join(errs...))
	}
	return nil
}
