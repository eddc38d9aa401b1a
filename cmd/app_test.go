package cmd

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/etnz/dashboard"
	"github.com/etnz/dashboard/date"
)

// USD is a helper for test to create usd money from const
func USD(v float64) dashboard.Money { return dashboard.M(v, "USD") }

var monday = date.New(2025, time.September, 8)

// newTestApp writes a configuration and its data files in a temporary
// directory, and loads it. Empty contents are not written.
func newTestApp(t *testing.T, extra, ledger, positions string) *app {
	t.Helper()
	dir := t.TempDir()
	chdirTest(t, dir)
	write := func(name, content string) {
		if content == "" {
			return
		}
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("dash.yaml", "currency: USD\nledger: trades.jsonl\npositions: positions.jsonl\nhistory: history.db\nnames: names.json\nlog:\n  level: error\n"+extra)
	write("trades.jsonl", ledger)
	write("positions.jsonl", positions)
	write("names.json", `{"AAPL":"Apple"}`)

	a, err := loadApp(filepath.Join(dir, "dash.yaml"))
	if err != nil {
		t.Fatalf("loadApp() error = %v", err)
	}
	return a
}

const testLedger = `{"date":"2025-09-05 10:00:00","symbol":"AAPL","action":"buy","quantity":10,"price":100}
{"date":"2025-09-08 10:00:00","symbol":"AAPL","action":"buy","quantity":2,"price":104}
{"date":"2025-09-08 11:00:00","symbol":"AAPL","action":"sell","quantity":4,"price":110,"realizedPnl":40}
`

const testPositions = `{"symbol":"AAPL","qty":8,"avgPrice":100.5,"last":110}
`

func TestLoadApp_MissingFile(t *testing.T) {
	chdirTest(t, t.TempDir())
	a, err := loadApp("nope.yaml")
	if err != nil {
		t.Fatalf("loadApp() error = %v", err)
	}
	if a.cfg.Currency != "USD" {
		t.Errorf("default currency = %q, want USD", a.cfg.Currency)
	}
}

func TestApp_Metrics(t *testing.T) {
	a := newTestApp(t, "", testLedger, testPositions)

	m, trades, positions, err := a.metrics(context.Background(), monday, false)
	if err != nil {
		t.Fatalf("metrics() error = %v", err)
	}
	if len(trades) != 3 || len(positions) != 1 {
		t.Fatalf("loaded %d trades and %d positions, want 3 and 1", len(trades), len(positions))
	}
	if !m.CostBasis.Equal(USD(804)) {
		t.Errorf("M1 = %v, want 804", m.CostBasis)
	}
	if !m.TodayRealized.Equal(USD(40)) {
		t.Errorf("M4 = %v, want 40", m.TodayRealized)
	}
	// 2 bought and sold today at 104 then 110.
	if !m.IntradayTrading.Equal(USD(12)) {
		t.Errorf("M5 = %v, want 12", m.IntradayTrading)
	}
	if !m.WTD.IsZero() || m.TodayTrades != 2 || m.TotalTrades != 3 {
		t.Errorf("M11 = %v, M7 = %d, M8 = %d, want 0, 2, 3", m.WTD, m.TodayTrades, m.TotalTrades)
	}
}

func TestApp_MissingDataFiles(t *testing.T) {
	a := newTestApp(t, "", "", "")
	m, _, _, err := a.metrics(context.Background(), monday, false)
	if err != nil {
		t.Fatalf("metrics() error = %v", err)
	}
	if !m.Equal(dashboard.NewMetrics(nil, nil, nil, monday)) {
		t.Errorf("metrics() without data = %+v, want empty metrics", m)
	}
}

func TestApp_InvalidLedger(t *testing.T) {
	a := newTestApp(t, "", `{"date":"2025-09-08","symbol":"AAPL","action":"hold","quantity":1,"price":1}`, "")
	_, _, _, err := a.metrics(context.Background(), monday, false)
	if err == nil || !strings.Contains(err.Error(), "trades.jsonl") {
		t.Errorf("metrics() error = %v, want a ledger error", err)
	}
}

func TestCloseAndPnL(t *testing.T) {
	a := newTestApp(t, "", testLedger, testPositions)
	ctx := context.Background()

	c := &closeCmd{}
	r, err := c.close(ctx, a, monday)
	if err != nil {
		t.Fatalf("close() error = %v", err)
	}
	// float: 8 × (110 - 100.5) = 76, realized: 40.
	if !r.Float.Equal(USD(76)) || !r.Realized.Equal(USD(40)) || !r.PnL.Equal(USD(116)) {
		t.Errorf("close() = %+v, want float 76, realized 40, pnl 116", r)
	}

	// closing twice replaces the day.
	if _, err := c.close(ctx, a, monday); err != nil {
		t.Fatalf("close() again error = %v", err)
	}
	results, err := a.results(ctx)
	if err != nil {
		t.Fatalf("results() error = %v", err)
	}
	if len(results) != 1 || results[0].Date != monday {
		t.Fatalf("results() = %+v, want the single closed day", results)
	}

	// the next day sees it in its week.
	m, _, _, err := a.metrics(ctx, monday.Add(1), false)
	if err != nil {
		t.Fatalf("metrics() error = %v", err)
	}
	if !m.WTD.Equal(USD(116)) {
		t.Errorf("M11 = %v, want 116", m.WTD)
	}
}

func TestImportHistory(t *testing.T) {
	a := newTestApp(t, "", "", "")
	ctx := context.Background()

	input := `{"date":"2025-09-05","realized":1,"float":2,"pnl":3}
{"date":"2025-09-08","realized":4,"float":5,"pnl":9}
`
	n, err := importHistory(ctx, a, strings.NewReader(input))
	if err != nil {
		t.Fatalf("importHistory() error = %v", err)
	}
	if n != 2 {
		t.Errorf("importHistory() = %d, want 2", n)
	}
	results, err := a.results(ctx)
	if err != nil {
		t.Fatalf("results() error = %v", err)
	}
	if len(results) != 2 || !results[1].PnL.Equal(USD(9)) {
		t.Errorf("results() = %+v", results)
	}

	if _, err := importHistory(ctx, a, strings.NewReader(`{"pnl":1}`)); err == nil {
		t.Errorf("importHistory() without a date expected an error")
	}
}

func TestApp_UpdatePositions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"price":120}`)
	}))
	defer srv.Close()

	extra := fmt.Sprintf("quote:\n  url: %s/{symbol}\n  path: $.price\n  ttl: 0s\n", srv.URL)
	a := newTestApp(t, extra, testLedger, testPositions)

	positions, err := a.positions(context.Background(), true)
	if err != nil {
		t.Fatalf("positions() error = %v", err)
	}
	if !positions[0].Last.Equal(USD(120)) {
		t.Errorf("updated last = %v, want 120", positions[0].Last)
	}

	if err := a.savePositions(positions); err != nil {
		t.Fatalf("savePositions() error = %v", err)
	}
	saved, err := a.positions(context.Background(), false)
	if err != nil {
		t.Fatalf("positions() error = %v", err)
	}
	if !saved[0].Last.Equal(USD(120)) || !saved[0].AvgPrice.Equal(USD(100.5)) {
		t.Errorf("saved position = %+v", saved[0])
	}
}

func TestApp_UpdateWithoutQuotes(t *testing.T) {
	a := newTestApp(t, "", "", testPositions)
	if _, err := a.positions(context.Background(), true); err == nil {
		t.Errorf("positions(update) without a quote source expected an error")
	}
}

func TestApp_Names(t *testing.T) {
	a := newTestApp(t, "", "", "")
	names, err := a.names()
	if err != nil {
		t.Fatalf("names() error = %v", err)
	}
	if names["AAPL"] != "Apple" {
		t.Errorf("names() = %v", names)
	}
}

func TestCompletion(t *testing.T) {
	c := Completion()
	for _, cmd := range Commands {
		if _, ok := c.Sub[cmd.Name()]; !ok {
			t.Errorf("no completion for %q", cmd.Name())
		}
	}
}

func TestParseDate(t *testing.T) {
	got, err := parseDate("")
	if err != nil || got != date.Today() {
		t.Errorf("parseDate(\"\") = %v, %v, want today", got, err)
	}
	got, err = parseDate("2025-09-08")
	if err != nil || got != monday {
		t.Errorf("parseDate(\"2025-09-08\") = %v, %v, want %v", got, err, monday)
	}
	if _, err := parseDate("someday"); err == nil {
		t.Errorf("parseDate(\"someday\") expected an error")
	}
}

// chdirTest changes the working directory to dir for the duration of the
// test and restores it on cleanup (equivalent of testing.T.Chdir).
func chdirTest(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	})
}
