package dashboard

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// tradeCmd is the JSONL form of a trade.
type tradeCmd struct {
	Date     string           `json:"date"`
	Symbol   string           `json:"symbol"`
	Action   string           `json:"action"`
	Quantity decimal.Decimal  `json:"quantity"`
	Price    decimal.Decimal  `json:"price"`
	Realized *decimal.Decimal `json:"realizedPnl,omitempty"`
}

// positionCmd is the JSONL form of a position.
type positionCmd struct {
	Symbol   string          `json:"symbol"`
	Qty      decimal.Decimal `json:"qty"`
	AvgPrice decimal.Decimal `json:"avgPrice"`
	Last     decimal.Decimal `json:"last"`
}

// scanLines calls decode for each non empty line of r, with its line number.
func scanLines(r io.Reader, decode func(n int, line []byte) error) error {
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue // Skip empty lines
		}
		if err := decode(n, line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// DecodeTrades decodes a JSONL trade ledger. Amounts are in currency.
// Trades are returned in file order.
func DecodeTrades(r io.Reader, currency string) ([]Trade, error) {
	var trades []Trade
	err := scanLines(r, func(n int, line []byte) error {
		var cmd tradeCmd
		if err := json.Unmarshal(line, &cmd); err != nil {
			return fmt.Errorf("line %d: could not decode trade %q: %w", n, string(line), err)
		}
		when, err := ParseTimestamp(cmd.Date)
		if err != nil {
			return fmt.Errorf("line %d: %w: %w", n, ErrInvalidTrade, err)
		}
		action, err := ParseAction(cmd.Action)
		if err != nil {
			return fmt.Errorf("line %d: %w: %w", n, ErrInvalidTrade, err)
		}
		t := Trade{
			Time:     when,
			Symbol:   cmd.Symbol,
			Action:   action,
			Quantity: Q(cmd.Quantity),
			Price:    M(cmd.Price, currency),
			Realized: M(decimal.Zero, currency),
		}
		if cmd.Realized != nil {
			t.Realized = M(*cmd.Realized, currency)
		}
		if err := t.Validate(); err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}
		trades = append(trades, t)
		return nil
	})
	return trades, err
}

// DecodePositions decodes a JSONL position snapshot. Amounts are in currency.
// A symbol can only appear once.
func DecodePositions(r io.Reader, currency string) ([]Position, error) {
	var positions []Position
	seen := make(map[string]int)
	err := scanLines(r, func(n int, line []byte) error {
		var cmd positionCmd
		if err := json.Unmarshal(line, &cmd); err != nil {
			return fmt.Errorf("line %d: could not decode position %q: %w", n, string(line), err)
		}
		p := Position{
			Symbol:   cmd.Symbol,
			Qty:      Q(cmd.Qty),
			AvgPrice: M(cmd.AvgPrice, currency),
			Last:     M(cmd.Last, currency),
		}
		if err := p.Validate(); err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}
		if prev, ok := seen[p.Symbol]; ok {
			return fmt.Errorf("line %d: %w %q: already held on line %d", n, ErrInvalidPosition, p.Symbol, prev)
		}
		seen[p.Symbol] = n
		positions = append(positions, p)
		return nil
	})
	return positions, err
}

// EncodePositions writes positions to w, one JSONL line each.
func EncodePositions(w io.Writer, positions []Position) error {
	for _, p := range positions {
		cmd := positionCmd{
			Symbol:   p.Symbol,
			Qty:      p.Qty.Decimal(),
			AvgPrice: p.AvgPrice.Decimal(),
			Last:     p.Last.Decimal(),
		}
		if err := encodeLine(w, cmd); err != nil {
			return err
		}
	}
	return nil
}

// DecodeDailyResults decodes JSONL daily results, in file order. Amounts are in currency.
func DecodeDailyResults(r io.Reader, currency string) ([]DailyResult, error) {
	var results []DailyResult
	err := scanLines(r, func(n int, line []byte) error {
		var res DailyResult
		if err := json.Unmarshal(line, &res); err != nil {
			return fmt.Errorf("line %d: could not decode daily result %q: %w", n, string(line), err)
		}
		if res.Date.IsZero() {
			return fmt.Errorf("line %d: daily result without a date", n)
		}
		res.Realized = res.Realized.In(currency)
		res.Float = res.Float.In(currency)
		res.PnL = res.PnL.In(currency)
		results = append(results, res)
		return nil
	})
	return results, err
}

// EncodeDailyResults writes results to w, one JSONL line each.
func EncodeDailyResults(w io.Writer, results []DailyResult) error {
	for _, r := range results {
		if err := encodeLine(w, r); err != nil {
			return err
		}
	}
	return nil
}

// DecodeNames decodes a JSON object mapping symbols to display names.
func DecodeNames(r io.Reader) (map[string]string, error) {
	names := make(map[string]string)
	if err := json.NewDecoder(r).Decode(&names); err != nil {
		return nil, fmt.Errorf("could not decode symbol names: %w", err)
	}
	return names, nil
}

func encodeLine(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
