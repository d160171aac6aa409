// Package alphavantage reads prices and company facts from the Alpha Vantage
// REST API.
//
// Alpha Vantage needs an API key (a free tier exists) and serves no relative
// ranges: History fetches the raw daily series and trims it to the requested
// period locally. OVERVIEW carries the sector, which makes this the
// classification provider of choice for stocks.
package alphavantage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/etnz/tracker"
	"github.com/etnz/tracker/date"
)

const defaultBaseURL = "https://www.alphavantage.co/query"

// assetClasses maps Alpha Vantage asset types to ledger asset classes.
var assetClasses = map[string]string{
	"Common Stock": "Stocks",
	"ETF":          "ETF",
	"Mutual Fund":  "Mutual Funds",
}

// Client is an HTTP client for the Alpha Vantage API.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// New returns a client using the given API key, backed by the daily response
// cache. A zero timeout means no timeout.
func New(apiKey string, timeout time.Duration) *Client {
	return &Client{apiKey: apiKey, baseURL: defaultBaseURL, http: tracker.DailyCachedClient(timeout)}
}

var (
	_ tracker.Quoter     = (*Client)(nil)
	_ tracker.Classifier = (*Client)(nil)
)

// apiError is the error envelope Alpha Vantage serves with a 200 status.
type apiError struct {
	ErrorMessage string `json:"Error Message"`
	Note         string `json:"Note"`
	Information  string `json:"Information"`
}

// get performs one API call and decodes the response into out.
func (c *Client) get(ctx context.Context, params url.Values, out any) error {
	params.Set("apikey", c.apiKey)
	addr := c.baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot GET %v: %v", req.URL.Host, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	// Errors come back as a 200 with an envelope instead of the payload.
	var apiErr apiError
	if err := json.Unmarshal(body, &apiErr); err == nil {
		if apiErr.ErrorMessage != "" {
			return fmt.Errorf("%s: %w", apiErr.ErrorMessage, tracker.ErrNoData)
		}
		if apiErr.Note != "" || apiErr.Information != "" {
			return fmt.Errorf("alphavantage refused the call: %s%s", apiErr.Note, apiErr.Information)
		}
	}
	return json.Unmarshal(body, out)
}

// Quote returns the latest market price of ticker via GLOBAL_QUOTE.
func (c *Client) Quote(ctx context.Context, ticker string) (tracker.Quote, error) {
	params := url.Values{}
	params.Set("function", "GLOBAL_QUOTE")
	params.Set("symbol", ticker)

	var out struct {
		GlobalQuote struct {
			Symbol string `json:"01. symbol"`
			Price  string `json:"05. price"`
			Day    string `json:"07. latest trading day"`
		} `json:"Global Quote"`
	}
	if err := c.get(ctx, params, &out); err != nil {
		return tracker.Quote{}, err
	}
	// Unknown symbols come back as an empty quote object.
	if out.GlobalQuote.Price == "" {
		return tracker.Quote{}, fmt.Errorf("no quote for %q: %w", ticker, tracker.ErrNoData)
	}
	price, err := strconv.ParseFloat(out.GlobalQuote.Price, 64)
	if err != nil {
		return tracker.Quote{}, fmt.Errorf("cannot parse price %q for %q: %w", out.GlobalQuote.Price, ticker, err)
	}
	day, err := date.Parse(out.GlobalQuote.Day)
	if err != nil {
		day = date.Today()
	}
	// GLOBAL_QUOTE carries no currency, the portfolio currency applies.
	return tracker.Quote{Ticker: ticker, Price: price, Day: day}, nil
}

// History returns the daily close series of ticker covering period, fetched
// via TIME_SERIES_DAILY and trimmed to the period locally.
func (c *Client) History(ctx context.Context, ticker string, period tracker.Period) (*date.History, error) {
	params := url.Values{}
	params.Set("function", "TIME_SERIES_DAILY")
	params.Set("symbol", ticker)
	params.Set("outputsize", outputSize(period))

	var out struct {
		Series map[string]struct {
			Close string `json:"4. close"`
		} `json:"Time Series (Daily)"`
	}
	if err := c.get(ctx, params, &out); err != nil {
		return nil, err
	}
	if len(out.Series) == 0 {
		return nil, fmt.Errorf("no history for %q: %w", ticker, tracker.ErrNoData)
	}

	cutoff, bounded := period.Start(date.Today())
	h := new(date.History)
	for day, observation := range out.Series {
		on, err := date.Parse(day)
		if err != nil {
			continue
		}
		if bounded && on.Before(cutoff) {
			continue
		}
		price, err := strconv.ParseFloat(observation.Close, 64)
		if err != nil {
			continue
		}
		h.Append(on, price)
	}
	if h.Len() == 0 {
		return nil, fmt.Errorf("empty history for %q over %s: %w", ticker, period, tracker.ErrNoData)
	}
	return h, nil
}

// outputSize picks the smallest API payload covering the period: "compact" is
// the latest 100 trading days, "full" the whole history.
func outputSize(period tracker.Period) string {
	switch period {
	case tracker.Period1D, tracker.Period5D, tracker.Period1M, tracker.Period3M:
		return "compact"
	}
	return "full"
}

// Classify describes ticker via OVERVIEW: company name, sector and asset
// class.
func (c *Client) Classify(ctx context.Context, ticker string) (tracker.Classification, error) {
	params := url.Values{}
	params.Set("function", "OVERVIEW")
	params.Set("symbol", ticker)

	var out struct {
		Symbol    string `json:"Symbol"`
		Name      string `json:"Name"`
		AssetType string `json:"AssetType"`
		Sector    string `json:"Sector"`
	}
	if err := c.get(ctx, params, &out); err != nil {
		return tracker.Classification{}, err
	}
	if out.Symbol == "" {
		return tracker.Classification{}, fmt.Errorf("no overview for %q: %w", ticker, tracker.ErrNoData)
	}
	return tracker.Classification{
		Name:       out.Name,
		Sector:     title(out.Sector),
		AssetClass: assetClasses[out.AssetType],
	}, nil
}

// title rewrites the all-caps sector names the API serves ("TECHNOLOGY") into
// display case ("Technology").
func title(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
