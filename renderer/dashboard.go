package renderer

import (
	"fmt"

	"github.com/etnz/dashboard"
)

// Card is one metric of the dashboard, already formatted.
type Card struct {
	Key   string
	Title string
	Value string
}

// Section is a titled group of cards.
type Section struct {
	Title string
	Cards []Card
}

// Dashboard holds the data for the metrics markdown.
type Dashboard struct {
	Date     string
	Sections []Section
}

var sections = []struct {
	title string
	keys  []dashboard.Key
}{
	{"Account", []dashboard.Key{dashboard.M1, dashboard.M2, dashboard.M3}},
	{"Today", []dashboard.Key{dashboard.M4, dashboard.M5, dashboard.M6, dashboard.M7}},
	{"History", []dashboard.Key{dashboard.M8, dashboard.M9, dashboard.M10}},
	{"Calendar", []dashboard.Key{dashboard.M11, dashboard.M12, dashboard.M13}},
}

// NewDashboard formats the metrics. Amounts are displayed in currency.
func NewDashboard(m dashboard.Metrics, currency string) *Dashboard {
	d := &Dashboard{Date: m.AsOf.String()}
	for _, s := range sections {
		sec := Section{Title: s.title}
		for _, k := range s.keys {
			sec.Cards = append(sec.Cards, Card{Key: k.String(), Title: k.Title(), Value: formatMetric(m, k, currency)})
		}
		d.Sections = append(d.Sections, sec)
	}
	return d
}

func formatMetric(m dashboard.Metrics, k dashboard.Key, currency string) string {
	switch {
	case k.IsPercent():
		return m.WinRate.String()
	case k.IsCount():
		return fmt.Sprint(m.Value(k).IntPart())
	}
	v, _ := m.Money(k)
	v = v.In(currency)
	if k.IsSigned() {
		return v.SignedString()
	}
	return v.String()
}
