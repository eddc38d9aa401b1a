package dashboard

// lot is an open quantity at its opening price.
type lot struct {
	Quantity Quantity
	Price    Money
}

// lots is a queue of open lots, oldest first.
type lots []lot

// close consumes quantityToClose from the oldest lots at the closing price,
// splitting the last lot it touches if needed.
//
// It returns the remaining lots, the profit (price - lot price) × matched
// quantity, and the quantity that found no open lot.
func (l lots) close(quantityToClose Quantity, price Money) (remaining lots, pnl Money, unmatched Quantity) {
	for len(l) > 0 && quantityToClose.IsPositive() {
		head := l[0]
		q := minQ(head.Quantity, quantityToClose)
		pnl = pnl.Add(price.Sub(head.Price).Mul(q))
		head.Quantity = head.Quantity.Sub(q)
		quantityToClose = quantityToClose.Sub(q)
		if head.Quantity.IsZero() {
			l = l[1:]
		} else {
			l[0] = head
		}
	}
	return l, pnl, quantityToClose
}

// quantity returns the total open quantity.
func (l lots) quantity() Quantity {
	var q Quantity
	for _, lot := range l {
		q = q.Add(lot.Quantity)
	}
	return q
}

// book holds a lot queue per symbol. A book lives for a single computation.
type book map[string]lots

// apply replays a trade: buy and cover open a lot, sell and short close lots.
// It returns the profit of the closed quantity.
func (b book) apply(t Trade) Money {
	switch {
	case t.Action.IsBuySide():
		b[t.Symbol] = append(b[t.Symbol], lot{Quantity: t.Quantity, Price: t.Price})
	case t.Action.IsSellSide():
		return b.close(t)
	}
	return Money{}
}

// close closes t's quantity against the open lots of its symbol.
// Quantity beyond the open lots is dropped.
func (b book) close(t Trade) Money {
	remaining, pnl, _ := b[t.Symbol].close(t.Quantity, t.Price)
	if len(remaining) == 0 {
		delete(b, t.Symbol)
	} else {
		b[t.Symbol] = remaining
	}
	return pnl
}

// open returns the open quantity of a symbol.
func (b book) open(symbol string) Quantity { return b[symbol].quantity() }
