package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/tracker"
	md "github.com/nao1215/markdown"
)

// HoldingMarkdown renders the position-by-position view of the portfolio.
// Prices valued by falling back to the purchase price are starred.
func HoldingMarkdown(r *tracker.HoldingReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Portfolio Holdings on %s", r.Date))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Ticker", "Sector", "Class", "Quantity", "Purchase", "Price", "Value", "P/L", "P/L %"},
		Rows:   [][]string{},
	}
	stale := false
	for _, row := range r.Rows {
		price := row.CurrentPrice.String()
		if !row.Quoted {
			price += " *"
			stale = true
		}
		table.Rows = append(table.Rows, []string{
			row.Ticker,
			row.Sector,
			row.AssetClass,
			row.Quantity.String(),
			row.PurchasePrice.String(),
			price,
			row.CurrentValue.String(),
			row.ProfitLoss.SignedString(),
			row.ProfitLossPercent.SignedString(),
		})
	}
	table.Rows = append(table.Rows, []string{
		md.Bold("Total"), "", "", "", "", "",
		md.Bold(r.TotalValue.String()),
		md.Bold(r.TotalProfitLoss.SignedString()),
		md.Bold(r.TotalProfitLossPercent.SignedString()),
	})
	doc.Table(table)

	if stale {
		doc.PlainText("\\* no quote yet, valued at the purchase price")
	}
	return doc.String()
}
