package dashboard

import "fmt"

// Percent is a percentage: 60 means 60%.
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

// String formats the percentage with one decimal, like the dashboard cards.
func (p Percent) String() string {
	return fmt.Sprintf("%.1f%%", float64(p))
}

// SignedString formats the percentage with two decimals and a sign. Zero is "-".
func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" || res == "-0.00%" {
		return "-"
	}
	return res
}
