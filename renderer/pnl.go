package renderer

import (
	"github.com/etnz/dashboard"
	"github.com/etnz/dashboard/date"
)

// PnLRow is the P&L of one period to date.
type PnLRow struct {
	Label  string // WTD, MTD...
	Period string // the period identifier: 2025-W37, 2025-09...
	PnL    string
}

// PnL holds the data for the period-to-date markdown.
type PnL struct {
	Date string
	Days int // number of recorded days
	Rows []PnLRow
}

// NewPnL computes the P&L to date of each period from the daily results.
func NewPnL(results []dashboard.DailyResult, today date.Date, periods []date.Period, currency string) *PnL {
	p := &PnL{Date: today.String(), Days: len(results)}
	for _, period := range periods {
		p.Rows = append(p.Rows, PnLRow{
			Label:  period.ToDate(),
			Period: date.NewRange(today, period).Identifier(),
			PnL:    dashboard.PeriodToDate(results, today, period).In(currency).SignedString(),
		})
	}
	return p
}
