package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/dashboard/date"
	"github.com/etnz/dashboard/renderer"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// metricsCmd holds the flags for the 'metrics' subcommand.
type metricsCmd struct {
	date   string
	update bool
	watch  int
	html   string
}

func (*metricsCmd) Name() string     { return "metrics" }
func (*metricsCmd) Synopsis() string { return "display the dashboard metrics" }
func (*metricsCmd) Usage() string {
	return `dash metrics [-d <date>] [-u] [-w n] [-html <file>]

  Displays the thirteen dashboard metrics on a given day.
`
}

func (c *metricsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date for the metrics (defaults to today). See the user manual for supported date formats.")
	f.BoolVar(&c.update, "u", false, "update positions with the latest quotes before computing the metrics")
	f.IntVar(&c.watch, "w", 0, "run every n seconds")
	f.StringVar(&c.html, "html", "", "also write the dashboard as an HTML page to this file")
}

func (c *metricsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	for {
		md, err := c.render(ctx, a, on)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		if c.watch > 0 {
			fmt.Println("\033[2J")
		}
		printMarkdown(md)

		if c.watch <= 0 {
			break
		}
		select {
		case <-ctx.Done():
			return subcommands.ExitSuccess
		case <-time.After(time.Duration(c.watch) * time.Second):
		}
		if c.date == "" {
			on, _ = parseDate("")
		}
	}
	return subcommands.ExitSuccess
}

// render computes the metrics and returns the dashboard markdown, writing the HTML page if requested.
func (c *metricsCmd) render(ctx context.Context, a *app, on date.Date) (string, error) {
	m, _, _, err := a.metrics(ctx, on, c.update)
	if err != nil {
		return "", err
	}
	md := renderer.RenderDashboard(renderer.NewDashboard(m, a.cfg.Currency))
	if c.html != "" {
		page, err := renderer.HTML("Dashboard "+on.String(), md)
		if err != nil {
			return "", err
		}
		if err := os.WriteFile(c.html, page, 0o644); err != nil {
			return "", fmt.Errorf("write html dashboard: %w", err)
		}
		a.logger.Info("html dashboard written", zap.String("path", c.html))
	}
	return md, nil
}
