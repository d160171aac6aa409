// Package renderer turns tracker reports into markdown documents, one
// function per report. The documents are plain GitHub-flavored markdown so
// they can be piped to a file, a terminal renderer, or an AI advisor alike.
package renderer

import (
	"fmt"
	"math"
)

// number formats a table cell price. A NaN, the missing-observation marker,
// renders as a dash.
func number(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return fmt.Sprintf("%.2f", v)
}
