package tracker

import (
	"github.com/etnz/tracker/date"
)

// Summary is the one-glance state of a portfolio on a given date.
type Summary struct {
	Date                   date.Date
	Currency               string
	Positions              int
	TotalInvested          Money
	TotalValue             Money
	TotalProfitLoss        Money
	TotalProfitLossPercent Percent

	// Best and Worst name the positions with the highest and lowest return.
	// They are empty when the portfolio holds no position.
	Best        string
	BestReturn  Percent
	Worst       string
	WorstReturn Percent
}

// NewSummary computes the portfolio totals and its extreme performers on the
// given date.
func NewSummary(p *Portfolio, on date.Date) *Summary {
	s := &Summary{
		Date:                   on,
		Currency:               p.Currency(),
		Positions:              p.Len(),
		TotalInvested:          p.TotalInvested(),
		TotalValue:             p.TotalValue(),
		TotalProfitLoss:        p.TotalProfitLoss(),
		TotalProfitLossPercent: p.TotalProfitLossPercent(),
	}
	for i, h := range p.Holdings() {
		r := h.ProfitLossPercent()
		if i == 0 || r > s.BestReturn {
			s.Best, s.BestReturn = h.Ticker(), r
		}
		if i == 0 || r < s.WorstReturn {
			s.Worst, s.WorstReturn = h.Ticker(), r
		}
	}
	return s
}
