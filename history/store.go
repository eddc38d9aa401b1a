// Package history stores the daily results of an account in SQLite.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/etnz/dashboard"
	"github.com/etnz/dashboard/date"
	"github.com/etnz/dashboard/id"
	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ErrNotFound is returned when no result is recorded for a day.
var ErrNotFound = errors.New("daily result not found")

// Store is a SQLite backed daily results history.
type Store struct {
	db     *sql.DB
	logger *zap.Logger
}

// Open opens (or creates) the history database at path. A nil logger discards logs.
func Open(path string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open history %q: %w", path, err)
	}
	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create history schema in %q: %w", path, err)
	}
	return &Store{db: db, logger: logger}, nil
}

// Append records results, replacing any result already recorded for the same day.
func (s *Store) Append(ctx context.Context, results ...dashboard.DailyResult) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO daily_results (id, date, realized, float, pnl, currency)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			realized = excluded.realized,
			float = excluded.float,
			pnl = excluded.pnl,
			currency = excluded.currency`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range results {
		if r.Date.IsZero() {
			return errors.New("cannot record a daily result without a date")
		}
		_, err := stmt.ExecContext(ctx, id.New(), r.Date.String(),
			r.Realized.Decimal().String(), r.Float.Decimal().String(), r.PnL.Decimal().String(),
			r.PnL.Currency())
		if err != nil {
			return fmt.Errorf("record daily result %v: %w", r.Date, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	s.logger.Info("daily results recorded", zap.Int("count", len(results)))
	return nil
}

// List returns every recorded result, by date.
func (s *Store) List(ctx context.Context) ([]dashboard.DailyResult, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT date, realized, float, pnl, currency
		FROM daily_results ORDER BY date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []dashboard.DailyResult
	for rows.Next() {
		r, err := scan(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// Get returns the result recorded for day, or ErrNotFound.
func (s *Store) Get(ctx context.Context, day date.Date) (dashboard.DailyResult, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT date, realized, float, pnl, currency
		FROM daily_results WHERE date = ?`, day.String())
	r, err := scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return r, fmt.Errorf("%w: %v", ErrNotFound, day)
	}
	return r, err
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(row scanner) (dashboard.DailyResult, error) {
	var day, realized, float, pnl, currency string
	if err := row.Scan(&day, &realized, &float, &pnl, &currency); err != nil {
		return dashboard.DailyResult{}, err
	}
	var (
		r   dashboard.DailyResult
		err error
	)
	if r.Date, err = date.Parse(day); err != nil {
		return r, fmt.Errorf("invalid date %q in history: %w", day, err)
	}
	amounts := []struct {
		dst *dashboard.Money
		src string
	}{{&r.Realized, realized}, {&r.Float, float}, {&r.PnL, pnl}}
	for _, a := range amounts {
		d, err := decimal.NewFromString(a.src)
		if err != nil {
			return r, fmt.Errorf("invalid amount %q in history on %s: %w", a.src, day, err)
		}
		*a.dst = dashboard.M(d, currency)
	}
	return r, nil
}
