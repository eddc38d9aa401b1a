// Package cmd implements the dash command line application.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/dashboard"
	"github.com/etnz/dashboard/config"
	"github.com/etnz/dashboard/date"
	"github.com/etnz/dashboard/history"
	"github.com/etnz/dashboard/logging"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// Commands are the dash subcommands.
var Commands = []subcommands.Command{
	&metricsCmd{},
	&positionsCmd{},
	&closeCmd{},
	&pnlCmd{},
	&importHistoryCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", config.DefaultFile, "Path to the configuration file (YAML)")

// app is what commands share: the configuration and the logger.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
}

// loadApp loads the configuration at path and builds the logger.
func loadApp(path string) (*app, error) {
	cfg, err := config.Load(path)
	missing := errors.Is(err, config.ErrNoFile)
	if err != nil && !missing {
		return nil, err
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	if missing {
		logger.Warn("configuration file not found, using defaults", zap.String("path", path))
	}
	return &app{cfg: cfg, logger: logger}, nil
}

// trades decodes the trade ledger. A missing ledger has no trades.
func (a *app) trades() ([]dashboard.Trade, error) {
	f, err := os.Open(a.cfg.Ledger)
	if errors.Is(err, fs.ErrNotExist) {
		a.logger.Warn("ledger not found, no trades", zap.String("path", a.cfg.Ledger))
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	trades, err := dashboard.DecodeTrades(f, a.cfg.Currency)
	if err != nil {
		return nil, fmt.Errorf("decode ledger %q: %w", a.cfg.Ledger, err)
	}
	return trades, nil
}

// positions decodes the positions snapshot, with refreshed last prices if update is set.
// A missing snapshot has no positions.
func (a *app) positions(ctx context.Context, update bool) ([]dashboard.Position, error) {
	f, err := os.Open(a.cfg.Positions)
	if errors.Is(err, fs.ErrNotExist) {
		a.logger.Warn("positions not found, no positions", zap.String("path", a.cfg.Positions))
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	positions, err := dashboard.DecodePositions(f, a.cfg.Currency)
	if err != nil {
		return nil, fmt.Errorf("decode positions %q: %w", a.cfg.Positions, err)
	}
	if !update {
		return positions, nil
	}

	quotes, err := a.quotes()
	if err != nil {
		return nil, err
	}
	positions, err = quotes.UpdateLast(ctx, positions)
	if err != nil {
		// positions keep their previous last price.
		a.logger.Warn("some quotes could not be updated", zap.Error(err))
	}
	return positions, nil
}

// savePositions writes positions back to the positions snapshot.
func (a *app) savePositions(positions []dashboard.Position) error {
	tmp := a.cfg.Positions + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if err := dashboard.EncodePositions(f, positions); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, a.cfg.Positions)
}

// quotes returns the configured quote source.
func (a *app) quotes() (*dashboard.QuoteSource, error) {
	if !a.cfg.QuotesEnabled() {
		return nil, errors.New("no quote source configured, set quote.url")
	}
	return dashboard.NewQuoteSource(dashboard.QuoteOptions{
		URL:     a.cfg.Quote.URL,
		Path:    a.cfg.Quote.Path,
		TTL:     a.cfg.Quote.TTL,
		Retries: a.cfg.Quote.Retries,
	}, a.logger)
}

// names decodes the symbol names file, if any.
func (a *app) names() (map[string]string, error) {
	if a.cfg.Names == "" {
		return nil, nil
	}
	f, err := os.Open(a.cfg.Names)
	if errors.Is(err, fs.ErrNotExist) {
		a.logger.Warn("names not found", zap.String("path", a.cfg.Names))
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return dashboard.DecodeNames(f)
}

// openHistory opens the daily results store, creating it if needed.
func (a *app) openHistory() (*history.Store, error) {
	return history.Open(a.cfg.History, a.logger)
}

// results lists the recorded daily results. A missing store has none.
func (a *app) results(ctx context.Context) ([]dashboard.DailyResult, error) {
	if _, err := os.Stat(a.cfg.History); errors.Is(err, fs.ErrNotExist) {
		a.logger.Info("no history yet", zap.String("path", a.cfg.History))
		return nil, nil
	}
	store, err := a.openHistory()
	if err != nil {
		return nil, err
	}
	defer store.Close()
	return store.List(ctx)
}

// metrics computes the dashboard metrics on day.
func (a *app) metrics(ctx context.Context, on date.Date, update bool) (dashboard.Metrics, []dashboard.Trade, []dashboard.Position, error) {
	trades, err := a.trades()
	if err != nil {
		return dashboard.Metrics{}, nil, nil, err
	}
	positions, err := a.positions(ctx, update)
	if err != nil {
		return dashboard.Metrics{}, nil, nil, err
	}
	results, err := a.results(ctx)
	if err != nil {
		return dashboard.Metrics{}, nil, nil, err
	}
	m := dashboard.NewMetrics(trades, positions, results, on)
	a.logger.Debug("metrics computed",
		zap.Stringer("asOf", on),
		zap.Int("trades", len(trades)),
		zap.Int("positions", len(positions)),
		zap.Int("days", len(results)),
		zap.String("historicalFIFO", m.HistoricalFIFO.Decimal().String()))
	return m, trades, positions, nil
}

// parseDate parses a -d flag value, empty is today.
func parseDate(s string) (date.Date, error) {
	if s == "" {
		return date.Today(), nil
	}
	return date.Parse(s)
}

// printMarkdown renders markdown to the terminal.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		fmt.Println(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
