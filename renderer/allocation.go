package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/tracker"
	md "github.com/nao1215/markdown"
)

func AllocationMarkdown(r *tracker.AllocationReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Allocation by %s on %s", r.Grouping.Label, r.Date))

	if len(r.Rows) == 0 {
		doc.PlainText("No positions.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{r.Grouping.Label, "Value", "Weight"},
		Rows:      [][]string{},
	}
	for _, row := range r.Rows {
		table.Rows = append(table.Rows, []string{
			row.Label,
			row.Value.String(),
			row.Weight.String(),
		})
	}
	table.Rows = append(table.Rows, []string{
		md.Bold("Total"),
		md.Bold(r.TotalValue.String()),
		md.Bold("100.00%"),
	})
	doc.Table(table)

	return doc.String()
}
