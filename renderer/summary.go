package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/tracker"
	md "github.com/nao1215/markdown"
)

func SummaryMarkdown(s *tracker.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Portfolio Summary on %s", s.Date))
	doc.PlainText(fmt.Sprintf("Positions: %d, reporting in %s", s.Positions, s.Currency))

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total Invested", s.TotalInvested.String()},
			{"Total Value", s.TotalValue.String()},
			{"Profit / Loss", s.TotalProfitLoss.SignedString()},
			{"Return", s.TotalProfitLossPercent.SignedString()},
		},
	}
	doc.Table(table)

	if s.Positions > 0 {
		doc.PlainText(fmt.Sprintf("Best performer: %s (%s), worst: %s (%s)",
			s.Best, s.BestReturn.SignedString(), s.Worst, s.WorstReturn.SignedString()))
	}
	return doc.String()
}
