package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/dashboard"
	"github.com/google/subcommands"
)

// importHistoryCmd holds the flags for the 'import-history' subcommand.
type importHistoryCmd struct {
	file string
}

func (*importHistoryCmd) Name() string     { return "import-history" }
func (*importHistoryCmd) Synopsis() string { return "load daily results into the history" }
func (*importHistoryCmd) Usage() string {
	return `dash import-history -f <file.jsonl>

  Records every daily result of a JSONL file, one {"date","realized","float","pnl"}
  object per line. Use "-" to read from stdin. Days already recorded are replaced.
`
}

func (c *importHistoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "JSONL file of daily results")
}

func (c *importHistoryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "-f is required")
		return subcommands.ExitUsageError
	}
	a, err := loadApp(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.logger.Sync()

	var r io.Reader = os.Stdin
	if c.file != "-" {
		in, err := os.Open(c.file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", c.file, err)
			return subcommands.ExitFailure
		}
		defer in.Close()
		r = in
	}

	n, err := importHistory(ctx, a, r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully imported %d daily results into %s\n", n, a.cfg.History)
	return subcommands.ExitSuccess
}

// importHistory records the daily results read from r.
func importHistory(ctx context.Context, a *app, r io.Reader) (int, error) {
	results, err := dashboard.DecodeDailyResults(r, a.cfg.Currency)
	if err != nil {
		return 0, err
	}
	store, err := a.openHistory()
	if err != nil {
		return 0, err
	}
	defer store.Close()
	if err := store.Append(ctx, results...); err != nil {
		return 0, err
	}
	return len(results), nil
}
