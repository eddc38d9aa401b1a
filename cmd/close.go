package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/dashboard"
	"github.com/etnz/dashboard/date"
	"github.com/google/subcommands"
)

// closeCmd holds the flags for the 'close' subcommand.
type closeCmd struct {
	date   string
	update bool
}

func (*closeCmd) Name() string     { return "close" }
func (*closeCmd) Synopsis() string { return "record the daily result of a day in the history" }
func (*closeCmd) Usage() string {
	return `dash close [-d <date>] [-u]

  Computes the metrics of the day and records its realized, floating and
  total P&L in the history. Closing a day twice replaces its result.
`
}

func (c *closeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Day to close (defaults to today)")
	f.BoolVar(&c.update, "u", false, "update positions with the latest quotes first")
}

func (c *closeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	a, err := loadApp(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.logger.Sync()

	r, err := c.close(ctx, a, on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Closed %s: realized %s, floating %s, P&L %s\n", r.Date,
		r.Realized.In(a.cfg.Currency).SignedString(),
		r.Float.In(a.cfg.Currency).SignedString(),
		r.PnL.In(a.cfg.Currency).SignedString())
	return subcommands.ExitSuccess
}

// close computes the daily result of day on and records it.
func (c *closeCmd) close(ctx context.Context, a *app, on date.Date) (dashboard.DailyResult, error) {
	m, _, _, err := a.metrics(ctx, on, c.update)
	if err != nil {
		return dashboard.DailyResult{}, err
	}
	r := m.DailyResult()

	store, err := a.openHistory()
	if err != nil {
		return r, err
	}
	defer store.Close()
	return r, store.Append(ctx, r)
}
