package tracker

import (
	"fmt"
	"strings"

	"github.com/etnz/tracker/date"
)

// Period names a relative market-history window using the short tags quote
// providers understand ("1mo", "1y", "max", ...).
type Period string

const (
	Period1D  Period = "1d"
	Period5D  Period = "5d"
	Period1M  Period = "1mo"
	Period3M  Period = "3mo"
	Period6M  Period = "6mo"
	Period1Y  Period = "1y"
	Period2Y  Period = "2y"
	Period5Y  Period = "5y"
	Period10Y Period = "10y"
	PeriodYTD Period = "ytd"
	PeriodMax Period = "max"
)

// DefaultPeriod is the window used when none is given.
const DefaultPeriod = Period1Y

// Periods returns all known periods, shortest first.
func Periods() []Period {
	return []Period{Period1D, Period5D, Period1M, Period3M, Period6M,
		Period1Y, Period2Y, Period5Y, Period10Y, PeriodYTD, PeriodMax}
}

func (p Period) String() string { return string(p) }

// ParsePeriod returns the period for tag, or an error naming the valid tags.
func ParsePeriod(tag string) (Period, error) {
	tag = strings.ToLower(strings.TrimSpace(tag))
	for _, p := range Periods() {
		if string(p) == tag {
			return p, nil
		}
	}
	tags := make([]string, 0, len(Periods()))
	for _, p := range Periods() {
		tags = append(tags, string(p))
	}
	return "", fmt.Errorf("invalid period %q want one of %s", tag, strings.Join(tags, ", "))
}

// Start returns the first day covered by the period ending on 'from', and
// true. For PeriodMax there is no lower bound and it returns false.
//
// Tags shorter than a month are counted in calendar days, with "5d" spanning
// a week so that it still covers five trading days.
func (p Period) Start(from date.Date) (date.Date, bool) {
	switch p {
	case Period1D:
		return from.Add(-1), true
	case Period5D:
		return from.Add(-7), true
	case Period1M:
		return from.AddDate(0, -1, 0), true
	case Period3M:
		return from.AddDate(0, -3, 0), true
	case Period6M:
		return from.AddDate(0, -6, 0), true
	case Period1Y:
		return from.AddDate(-1, 0, 0), true
	case Period2Y:
		return from.AddDate(-2, 0, 0), true
	case Period5Y:
		return from.AddDate(-5, 0, 0), true
	case Period10Y:
		return from.AddDate(-10, 0, 0), true
	case PeriodYTD:
		return date.New(from.Year(), 1, 1), true
	default:
		return date.Date{}, false
	}
}
