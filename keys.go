package dashboard

import "fmt"

// Key identifies one of the thirteen dashboard metrics.
type Key int

const (
	M1 Key = iota + 1
	M2
	M3
	M4
	M5
	M6
	M7
	M8
	M9
	M10
	M11
	M12
	M13
)

var keyTitles = map[Key]string{
	M1:  "Account cost",
	M2:  "Market value",
	M3:  "Floating P&L",
	M4:  "Today realized P&L",
	M5:  "Intraday trading",
	M6:  "Today floating P&L",
	M7:  "Today trades",
	M8:  "Total trades",
	M9:  "Historical realized P&L",
	M10: "Win rate",
	M11: "WTD",
	M12: "MTD",
	M13: "YTD",
}

// Keys returns all metric keys in display order.
func Keys() []Key {
	return []Key{M1, M2, M3, M4, M5, M6, M7, M8, M9, M10, M11, M12, M13}
}

// String returns the short name of the key: "M1" ... "M13".
func (k Key) String() string { return fmt.Sprintf("M%d", int(k)) }

// Title returns the display name of the metric.
func (k Key) Title() string { return keyTitles[k] }

// IsPercent reports whether the metric is a percentage (only the win rate).
func (k Key) IsPercent() bool { return k == M10 }

// IsCount reports whether the metric counts trades.
func (k Key) IsCount() bool { return k == M7 || k == M8 }

// IsSigned reports whether the sign of the metric is meaningful to the reader
// (profit or loss), so that it deserves a positive/negative rendering.
func (k Key) IsSigned() bool {
	switch k {
	case M3, M4, M6, M9, M11, M12, M13:
		return true
	}
	return false
}
