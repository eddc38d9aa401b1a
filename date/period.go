package date

import (
	"fmt"
	"strings"
)

// Period is a calendar period used to compute period-to-date totals.
type Period int

const (
	Daily Period = iota
	Weekly
	Monthly
	Quarterly
	Yearly
)

func (p Period) String() string {
	switch p {
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	case Quarterly:
		return "quarterly"
	case Yearly:
		return "yearly"
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

// ToDate returns the usual dashboard label of the period-to-date total (WTD, MTD ...).
func (p Period) ToDate() string {
	switch p {
	case Daily:
		return "Today"
	case Weekly:
		return "WTD"
	case Monthly:
		return "MTD"
	case Quarterly:
		return "QTD"
	case Yearly:
		return "YTD"
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

// Periods lists all periods from the shortest to the longest.
func Periods() []Period { return []Period{Daily, Weekly, Monthly, Quarterly, Yearly} }

// ParsePeriod parses a period name. It accepts "week", "weekly", "wtd" and so on.
func ParsePeriod(p string) (Period, error) {
	switch strings.ToLower(strings.TrimSpace(p)) {
	case "daily", "day", "today":
		return Daily, nil
	case "weekly", "week", "wtd":
		return Weekly, nil
	case "monthly", "month", "mtd":
		return Monthly, nil
	case "quarterly", "quarter", "qtd":
		return Quarterly, nil
	case "yearly", "year", "ytd":
		return Yearly, nil
	default:
		return Daily, fmt.Errorf("unknown period %q", p)
	}
}
