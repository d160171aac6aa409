// Package yahoo reads prices from the Yahoo Finance chart API.
//
// The chart endpoint serves the latest quote, daily close history and basic
// instrument metadata in one document, needs no API key, and understands the
// same period tags the tracker uses. Responses go through the daily disk
// cache so repeated commands reuse the day's data.
package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/tracker"
	"github.com/etnz/tracker/date"
)

const defaultBaseURL = "https://query1.finance.yahoo.com"

// assetClasses maps Yahoo instrument types to ledger asset classes. Types not
// listed here leave the class empty, and the ledger default applies.
var assetClasses = map[string]string{
	"EQUITY":         "Stocks",
	"ETF":            "ETF",
	"MUTUALFUND":     "Mutual Funds",
	"INDEX":          "Index",
	"CURRENCY":       "Currency",
	"CRYPTOCURRENCY": "Crypto",
	"FUTURE":         "Commodities",
}

// Client queries the Yahoo chart API.
type Client struct {
	http    *http.Client
	baseURL string
}

// New returns a client backed by the daily response cache. A zero timeout
// means no timeout.
func New(timeout time.Duration) *Client {
	return &Client{http: tracker.DailyCachedClient(timeout), baseURL: defaultBaseURL}
}

var (
	_ tracker.Quoter     = (*Client)(nil)
	_ tracker.Classifier = (*Client)(nil)
)

// chart fetches and parses the chart document for ticker over the given range
// tag.
func (c *Client) chart(ctx context.Context, ticker, rng string) (any, error) {
	addr := fmt.Sprintf("%s/v8/finance/chart/%s?range=%s&interval=1d",
		c.baseURL, url.PathEscape(ticker), url.QueryEscape(rng))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, err
	}
	// Yahoo rejects the default Go user agent.
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; tracker)")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("unknown symbol %q: %w", ticker, tracker.ErrNoData)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cannot GET %v%v: %v", req.URL.Host, req.URL.Path, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var jobj any
	if err := json.Unmarshal(body, &jobj); err != nil {
		return nil, fmt.Errorf("cannot parse chart response for %q: %w", ticker, err)
	}
	return jobj, nil
}

// number extracts a single float from the chart document.
func number(jobj any, expr string) (float64, error) {
	jval, err := scalar(jobj, expr)
	if err != nil {
		return 0, err
	}
	val, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("%q is %v, not a number", expr, jval)
	}
	return val, nil
}

// text extracts a single string from the chart document.
func text(jobj any, expr string) (string, error) {
	jval, err := scalar(jobj, expr)
	if err != nil {
		return "", err
	}
	val, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("%q is %v, not a string", expr, jval)
	}
	return val, nil
}

func scalar(jobj any, expr string) (any, error) {
	jval, err := jsonpath.Get(expr, jobj)
	if err != nil {
		return nil, fmt.Errorf("%q not found: %w", expr, err)
	}
	// jsonpath sometimes hands a single answer back as a one-element list.
	if jlist, ok := jval.([]any); ok && len(jlist) == 1 {
		jval = jlist[0]
	}
	return jval, nil
}

func list(jobj any, expr string) ([]any, error) {
	jval, err := jsonpath.Get(expr, jobj)
	if err != nil {
		return nil, fmt.Errorf("%q not found: %w", expr, err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("%q is %v, not a list", expr, jval)
	}
	return jlist, nil
}

// day converts a chart timestamp (Unix seconds) to the date of that trading
// day, in UTC like the chart API reports them.
func day(ts float64) date.Date {
	return date.New(time.Unix(int64(ts), 0).UTC().Date())
}

// Quote returns the latest market price of ticker.
func (c *Client) Quote(ctx context.Context, ticker string) (tracker.Quote, error) {
	jobj, err := c.chart(ctx, ticker, "1d")
	if err != nil {
		return tracker.Quote{}, err
	}
	price, err := number(jobj, "$.chart.result[0].meta.regularMarketPrice")
	if err != nil {
		return tracker.Quote{}, fmt.Errorf("no quote for %q: %w", ticker, tracker.ErrNoData)
	}
	quote := tracker.Quote{Ticker: ticker, Price: price, Day: date.Today()}
	if currency, err := text(jobj, "$.chart.result[0].meta.currency"); err == nil {
		quote.Currency = currency
	}
	if ts, err := number(jobj, "$.chart.result[0].meta.regularMarketTime"); err == nil {
		quote.Day = day(ts)
	}
	return quote, nil
}

// History returns the daily close series of ticker covering period. Yahoo
// understands the period tags natively, so the range maps straight through.
func (c *Client) History(ctx context.Context, ticker string, period tracker.Period) (*date.History, error) {
	jobj, err := c.chart(ctx, ticker, string(period))
	if err != nil {
		return nil, err
	}
	stamps, err := list(jobj, "$.chart.result[0].timestamp")
	if err != nil {
		return nil, fmt.Errorf("no history for %q: %w", ticker, tracker.ErrNoData)
	}
	closes, err := list(jobj, "$.chart.result[0].indicators.quote[0].close")
	if err != nil || len(closes) != len(stamps) {
		return nil, fmt.Errorf("no close prices for %q: %w", ticker, tracker.ErrNoData)
	}

	h := new(date.History)
	for i, jts := range stamps {
		ts, ok := jts.(float64)
		price, okPrice := closes[i].(float64)
		if !ok || !okPrice {
			// Holidays and half sessions leave null closes behind.
			continue
		}
		h.Append(day(ts), price)
	}
	if h.Len() == 0 {
		return nil, fmt.Errorf("empty history for %q: %w", ticker, tracker.ErrNoData)
	}
	return h, nil
}

// Classify names the instrument and maps its Yahoo type to an asset class.
// The chart API carries no sector, so Sector stays empty.
func (c *Client) Classify(ctx context.Context, ticker string) (tracker.Classification, error) {
	jobj, err := c.chart(ctx, ticker, "1d")
	if err != nil {
		return tracker.Classification{}, err
	}
	kind, err := text(jobj, "$.chart.result[0].meta.instrumentType")
	if err != nil {
		return tracker.Classification{}, fmt.Errorf("no classification for %q: %w", ticker, tracker.ErrNoData)
	}
	classification := tracker.Classification{AssetClass: assetClasses[kind]}
	if name, err := text(jobj, "$.chart.result[0].meta.shortName"); err == nil {
		classification.Name = name
	}
	return classification, nil
}
