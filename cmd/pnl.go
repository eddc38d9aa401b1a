package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/dashboard/date"
	"github.com/etnz/dashboard/renderer"
	"github.com/google/subcommands"
)

// pnlCmd holds the flags for the 'pnl' subcommand.
type pnlCmd struct {
	date   string
	period string
}

func (*pnlCmd) Name() string     { return "pnl" }
func (*pnlCmd) Synopsis() string { return "display the period-to-date P&L from the history" }
func (*pnlCmd) Usage() string {
	return `dash pnl [-d <date>] [-p <period>]

  Sums the recorded daily P&L since the start of the period (day, week,
  month, quarter, year). Without -p every period is displayed.
`
}

func (c *pnlCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the report (defaults to today)")
	f.StringVar(&c.period, "p", "", "period (day, week, month, quarter, year)")
}

func (c *pnlCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	periods := date.Periods()
	if c.period != "" {
		p, err := date.ParsePeriod(c.period)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing period: %v\n", err)
			return subcommands.ExitUsageError
		}
		periods = []date.Period{p}
	}

	a, err := loadApp(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.logger.Sync()

	results, err := a.results(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading history: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderPnL(renderer.NewPnL(results, on, periods, a.cfg.Currency)))
	return subcommands.ExitSuccess
}
