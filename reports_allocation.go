package tracker

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/etnz/tracker/date"
)

// Grouping names one way of bucketing positions for an AllocationReport.
type Grouping struct {
	Label string
	key   func(Holding) string
}

var (
	GroupByTicker     = Grouping{Label: "Ticker", key: ByTicker}
	GroupBySector     = Grouping{Label: "Sector", key: BySector}
	GroupByAssetClass = Grouping{Label: "Asset Class", key: ByAssetClass}
)

// ParseGrouping resolves a user supplied grouping name.
func ParseGrouping(s string) (Grouping, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ticker":
		return GroupByTicker, nil
	case "sector":
		return GroupBySector, nil
	case "class", "asset-class":
		return GroupByAssetClass, nil
	}
	return Grouping{}, fmt.Errorf("invalid grouping %q: valid groupings are ticker, sector, class", s)
}

// AllocationRow is one bucket of an AllocationReport.
type AllocationRow struct {
	Label  string
	Value  Money
	Weight Percent
}

// AllocationReport breaks the portfolio value down into buckets of the chosen
// grouping, heaviest bucket first.
type AllocationReport struct {
	Date       date.Date
	Currency   string
	Grouping   Grouping
	Rows       []AllocationRow
	TotalValue Money
}

// NewAllocationReport buckets the portfolio by the given grouping. Rows are
// sorted by descending weight, ties by label, so the report is deterministic.
func NewAllocationReport(p *Portfolio, on date.Date, group Grouping) *AllocationReport {
	report := &AllocationReport{
		Date:       on,
		Currency:   p.Currency(),
		Grouping:   group,
		TotalValue: p.TotalValue(),
	}
	values := make(map[string]Money)
	for _, h := range p.Holdings() {
		label := group.key(h)
		if v, ok := values[label]; ok {
			values[label] = v.Add(h.CurrentValue())
		} else {
			values[label] = h.CurrentValue()
		}
	}
	weights := p.WeightsBy(group.key)
	report.Rows = make([]AllocationRow, 0, len(values))
	for label, value := range values {
		report.Rows = append(report.Rows, AllocationRow{
			Label:  label,
			Value:  value,
			Weight: weights[label],
		})
	}
	slices.SortFunc(report.Rows, func(a, b AllocationRow) int {
		if c := cmp.Compare(b.Weight, a.Weight); c != 0 {
			return c
		}
		return cmp.Compare(a.Label, b.Label)
	})
	return report
}
