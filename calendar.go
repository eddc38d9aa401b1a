package dashboard

import "github.com/etnz/dashboard/date"

// DailyResult is the profit and loss recorded for one trading day.
type DailyResult struct {
	Date     date.Date `json:"date"`
	Realized Money     `json:"realized"`
	Float    Money     `json:"float"`
	PnL      Money     `json:"pnl"`
}

// CalendarTotals holds the period-to-date sums of daily results.
type CalendarTotals struct {
	WTD Money // week-to-date, anchored on the last recorded day
	MTD Money // month-to-date
	YTD Money // year-to-date
}

// NewCalendarTotals sums the pnl of results since the start of the week, month and year.
//
// The week is the one containing the last result of the list, which may be
// before today when today has not been recorded yet. Month and year are
// today's. There is no upper bound: every result from the start date on counts.
func NewCalendarTotals(results []DailyResult, today date.Date) CalendarTotals {
	var wtd Money
	if len(results) > 0 {
		last := results[len(results)-1].Date
		wtd = sumSince(results, last.StartOf(date.Weekly))
	}
	return CalendarTotals{
		WTD: wtd,
		MTD: sumSince(results, today.StartOf(date.Monthly)),
		YTD: sumSince(results, today.StartOf(date.Yearly)),
	}
}

// PeriodToDate sums the pnl of results since the start of the period containing today.
func PeriodToDate(results []DailyResult, today date.Date, period date.Period) Money {
	return sumSince(results, today.StartOf(period))
}

// sumSince sums the pnl of results dated since or after.
func sumSince(results []DailyResult, since date.Date) Money {
	var sum Money
	for _, r := range results {
		if !r.Date.Before(since) {
			sum = sum.Add(r.PnL)
		}
	}
	return sum
}
