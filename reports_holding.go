package tracker

import (
	"github.com/etnz/tracker/date"
)

// HoldingRow is one position of a HoldingReport, fully valued.
type HoldingRow struct {
	Ticker            string
	Sector            string
	AssetClass        string
	Quantity          Quantity
	PurchasePrice     Money
	CurrentPrice      Money
	Quoted            bool // CurrentPrice is an observed quote, not the purchase fallback
	TransactionValue  Money
	CurrentValue      Money
	ProfitLoss        Money
	ProfitLossPercent Percent
}

// HoldingReport is the detailed view of every position on a given date, with
// portfolio totals.
type HoldingReport struct {
	Date                   date.Date
	Currency               string
	Rows                   []HoldingRow
	TotalInvested          Money
	TotalValue             Money
	TotalProfitLoss        Money
	TotalProfitLossPercent Percent
}

// NewHoldingReport values every position of the portfolio on the given date.
// Rows keep the portfolio's insertion order.
func NewHoldingReport(p *Portfolio, on date.Date) *HoldingReport {
	report := &HoldingReport{
		Date:                   on,
		Currency:               p.Currency(),
		Rows:                   make([]HoldingRow, 0, p.Len()),
		TotalInvested:          p.TotalInvested(),
		TotalValue:             p.TotalValue(),
		TotalProfitLoss:        p.TotalProfitLoss(),
		TotalProfitLossPercent: p.TotalProfitLossPercent(),
	}
	for _, h := range p.Holdings() {
		_, quoted := h.CurrentPrice()
		report.Rows = append(report.Rows, HoldingRow{
			Ticker:            h.Ticker(),
			Sector:            h.Sector(),
			AssetClass:        h.AssetClass(),
			Quantity:          h.Quantity(),
			PurchasePrice:     h.PurchasePrice(),
			CurrentPrice:      h.EffectivePrice(),
			Quoted:            quoted,
			TransactionValue:  h.TransactionValue(),
			CurrentValue:      h.CurrentValue(),
			ProfitLoss:        h.ProfitLoss(),
			ProfitLossPercent: h.ProfitLossPercent(),
		})
	}
	return report
}
