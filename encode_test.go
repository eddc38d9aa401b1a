package dashboard

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/etnz/dashboard/date"
)

func TestDecodeTrades(t *testing.T) {
	input := `{"date":"2025-09-08T09:30:00Z","symbol":"AAPL","action":"buy","quantity":10,"price":100}

{"date":"2025-9-8 14:00","symbol":"AAPL","action":"SELL","quantity":4,"price":"101.5","realizedPnl":6}
{"date":"2025-09-09","symbol":"TSLA","action":"short","quantity":1,"price":250,"realizedPnl":0}
`
	trades, err := DecodeTrades(strings.NewReader(input), "USD")
	if err != nil {
		t.Fatalf("DecodeTrades() error = %v", err)
	}
	if len(trades) != 3 {
		t.Fatalf("len(trades) = %d, want 3", len(trades))
	}

	second := trades[1]
	if want := time.Date(2025, time.September, 8, 14, 0, 0, 0, time.UTC); !second.Time.Equal(want) {
		t.Errorf("trades[1].Time = %v, want %v", second.Time, want)
	}
	if second.Action != Sell {
		t.Errorf("trades[1].Action = %q, want %q", second.Action, Sell)
	}
	if !second.Price.Equal(USD(101.5)) || !second.Realized.Equal(USD(6)) {
		t.Errorf("trades[1] price = %v realized = %v, want 101.5 and 6", second.Price, second.Realized)
	}
	if !trades[0].Realized.Equal(USD(0)) {
		t.Errorf("missing realizedPnl = %v, want 0", trades[0].Realized)
	}
	if got := trades[2].Day(); got != date.New(2025, time.September, 9) {
		t.Errorf("trades[2].Day() = %v, want 2025-09-09", got)
	}
}

func TestDecodeTrades_Invalid(t *testing.T) {
	testCases := []struct {
		name    string
		line    string
		invalid bool // wraps ErrInvalidTrade
	}{
		{"not json", `{"date":`, false},
		{"bad timestamp", `{"date":"yesterday","symbol":"A","action":"buy","quantity":1,"price":1}`, true},
		{"unknown action", `{"date":"2025-09-08","symbol":"A","action":"hold","quantity":1,"price":1}`, true},
		{"zero quantity", `{"date":"2025-09-08","symbol":"A","action":"buy","quantity":0,"price":1}`, true},
		{"negative price", `{"date":"2025-09-08","symbol":"A","action":"buy","quantity":1,"price":-1}`, true},
		{"missing symbol", `{"date":"2025-09-08","action":"buy","quantity":1,"price":1}`, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeTrades(strings.NewReader(tc.line), "USD")
			if err == nil {
				t.Fatalf("DecodeTrades(%s) expected an error", tc.line)
			}
			if !strings.HasPrefix(err.Error(), "line 1:") {
				t.Errorf("error %q does not name the line", err)
			}
			if got := errors.Is(err, ErrInvalidTrade); got != tc.invalid {
				t.Errorf("errors.Is(ErrInvalidTrade) = %v, want %v", got, tc.invalid)
			}
		})
	}
}

func TestDecodePositions(t *testing.T) {
	input := `{"symbol":"AAPL","qty":10,"avgPrice":100,"last":110}
{"symbol":"TSLA","qty":-4,"avgPrice":50}
`
	positions, err := DecodePositions(strings.NewReader(input), "USD")
	if err != nil {
		t.Fatalf("DecodePositions() error = %v", err)
	}
	if len(positions) != 2 {
		t.Fatalf("len(positions) = %d, want 2", len(positions))
	}
	if !positions[1].Qty.Equal(Q(-4)) || positions[1].Quoted() {
		t.Errorf("positions[1] = %+v, want an unquoted short of 4", positions[1])
	}

	var buf bytes.Buffer
	if err := EncodePositions(&buf, positions); err != nil {
		t.Fatalf("EncodePositions() error = %v", err)
	}
	want := `{"symbol":"AAPL","qty":10,"avgPrice":100,"last":110}
{"symbol":"TSLA","qty":-4,"avgPrice":50,"last":0}
`
	if got := buf.String(); got != want {
		t.Errorf("EncodePositions() =\n%s\nwant\n%s", got, want)
	}
}

func TestDecodePositions_Invalid(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"duplicate symbol", "{\"symbol\":\"A\",\"qty\":1,\"avgPrice\":1}\n{\"symbol\":\"A\",\"qty\":2,\"avgPrice\":1}"},
		{"negative average", `{"symbol":"A","qty":1,"avgPrice":-1}`},
		{"negative last", `{"symbol":"A","qty":1,"avgPrice":1,"last":-2}`},
		{"missing symbol", `{"qty":1,"avgPrice":1}`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodePositions(strings.NewReader(tc.input), "USD")
			if !errors.Is(err, ErrInvalidPosition) {
				t.Errorf("DecodePositions() error = %v, want %v", err, ErrInvalidPosition)
			}
		})
	}
}

func TestDailyResults_RoundTrip(t *testing.T) {
	input := `{"date":"2025-09-08","realized":10.5,"float":-3,"pnl":7.5}
{"date":"2025-09-09","realized":0,"float":1,"pnl":1}
`
	results, err := DecodeDailyResults(strings.NewReader(input), "EUR")
	if err != nil {
		t.Fatalf("DecodeDailyResults() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	if !results[0].PnL.Equal(M(7.5, "EUR")) {
		t.Errorf("results[0].PnL = %v, want 7.5 EUR", results[0].PnL)
	}

	var buf bytes.Buffer
	if err := EncodeDailyResults(&buf, results); err != nil {
		t.Fatalf("EncodeDailyResults() error = %v", err)
	}
	if got := buf.String(); got != input {
		t.Errorf("EncodeDailyResults() =\n%s\nwant\n%s", got, input)
	}

	if _, err := DecodeDailyResults(strings.NewReader(`{"pnl":1}`), "EUR"); err == nil {
		t.Errorf("DecodeDailyResults() without a date expected an error")
	}
}

func TestDecodeNames(t *testing.T) {
	names, err := DecodeNames(strings.NewReader(`{"AAPL":"Apple Inc.","TSLA":"Tesla"}`))
	if err != nil {
		t.Fatalf("DecodeNames() error = %v", err)
	}
	if names["AAPL"] != "Apple Inc." || len(names) != 2 {
		t.Errorf("DecodeNames() = %v", names)
	}
}
