package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/dashboard"
	"github.com/etnz/dashboard/renderer"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// positionsCmd holds the flags for the 'positions' subcommand.
type positionsCmd struct {
	date   string
	update bool
	save   bool
}

func (*positionsCmd) Name() string     { return "positions" }
func (*positionsCmd) Synopsis() string { return "display the positions table" }
func (*positionsCmd) Usage() string {
	return `dash positions [-d <date>] [-u [-save]]

  Displays every position with its unrealized and realized P&L, and the totals row.
`
}

func (c *positionsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the report (defaults to today)")
	f.BoolVar(&c.update, "u", false, "update positions with the latest quotes")
	f.BoolVar(&c.save, "save", false, "write the updated last prices back to the positions file")
}

func (c *positionsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.save && !c.update {
		fmt.Fprintln(os.Stderr, "-save requires -u")
		return subcommands.ExitUsageError
	}
	a, err := loadApp(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.logger.Sync()

	m, trades, positions, err := a.metrics(ctx, on, c.update)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	names, err := a.names()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading symbol names: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.save {
		if err := a.savePositions(positions); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving positions: %v\n", err)
			return subcommands.ExitFailure
		}
		a.logger.Info("positions saved", zap.String("path", a.cfg.Positions), zap.Int("count", len(positions)))
	}

	h := dashboard.NewHoldings(positions, trades, m)
	printMarkdown(renderer.RenderPositions(renderer.NewPositions(h, names, m, a.cfg.Currency)))
	return subcommands.ExitSuccess
}
