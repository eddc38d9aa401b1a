package date

import (
	"fmt"
	"time"
)

// Range represents a range of dates, boundaries included.
type Range struct{ From, To Date }

// NewRange returns the whole period containing d.
func NewRange(d Date, period Period) Range {
	return Range{From: d.StartOf(period), To: d.EndOf(period)}
}

// ToDate returns the range from the start of the period containing d up to d.
func ToDate(d Date, period Period) Range {
	return Range{From: d.StartOf(period), To: d}
}

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// Period returns the period r belongs to, if r starts at the beginning of a
// standard period and does not overflow it.
func (r Range) Period() (p Period, ok bool) {
	if r.To.Before(r.From) {
		return Daily, false
	}
	for _, p := range Periods() {
		if r.From.StartOf(p) == r.From && !r.To.After(r.From.EndOf(p)) {
			return p, true
		}
	}
	return Daily, false
}

// Identifier computes a short unique name for the range: 2025-09-08, 2025-W37,
// 2025-09, 2025-Q3, 2025, or From_To for anything else.
func (r Range) Identifier() string {
	p, ok := r.Period()
	if !ok {
		return fmt.Sprintf("%s_%s", r.From, r.To)
	}

	switch p {
	case Daily:
		return r.From.String()
	case Weekly:
		year, week := r.From.ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week)
	case Monthly:
		return r.From.Format("2006-01")
	case Quarterly:
		return fmt.Sprintf("%d-Q%d", r.From.Year(), (r.From.Month()-time.January)/3+1)
	case Yearly:
		return r.From.Format("2006")
	default:
		panic("unknown period")
	}
}
