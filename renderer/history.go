package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/tracker"
	md "github.com/nao1215/markdown"
)

func HistoryMarkdown(r *tracker.HistoryReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if r.Normalized {
		doc.H1(fmt.Sprintf("Price History (%s, rebased to 100)", r.Period))
	} else {
		doc.H1(fmt.Sprintf("Price History (%s)", r.Period))
	}

	if len(r.Rows) == 0 {
		doc.PlainText("No price data.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: make([]md.TableAlignment, 0, len(r.Tickers)+1),
		Header:    append([]string{"Date"}, r.Tickers...),
		Rows:      [][]string{},
	}
	table.Alignment = append(table.Alignment, md.AlignLeft)
	for range r.Tickers {
		table.Alignment = append(table.Alignment, md.AlignRight)
	}
	for _, row := range r.Rows {
		cells := make([]string, 0, len(row.Values)+1)
		cells = append(cells, row.Date.String())
		for _, v := range row.Values {
			cells = append(cells, number(v))
		}
		table.Rows = append(table.Rows, cells)
	}
	doc.Table(table)

	doc.H2("Statistics")
	stats := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Ticker", "Days", "Cumulative", "Ann. Return", "Ann. Volatility", "Last"},
		Rows:   [][]string{},
	}
	for _, s := range r.Stats {
		stats.Rows = append(stats.Rows, []string{
			s.Ticker,
			fmt.Sprintf("%d", s.Observations),
			s.CumulativeReturn.SignedString(),
			s.AnnualizedMeanReturn.SignedString(),
			s.AnnualizedVolatility.String(),
			number(s.Last),
		})
	}
	doc.Table(stats)

	return doc.String()
}
