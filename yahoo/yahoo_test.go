package yahoo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/etnz/tracker"
	"github.com/etnz/tracker/date"
)

// Timestamps are midnight UTC of 2025-08-18, 19 and 20.
const chartDoc = `{"chart":{"result":[{
	"meta":{
		"currency":"USD","symbol":"AAA","instrumentType":"ETF",
		"shortName":"Test Fund",
		"regularMarketPrice":123.45,"regularMarketTime":1755561600},
	"timestamp":[1755475200,1755561600,1755648000],
	"indicators":{"quote":[{"close":[100.5,null,102.25]}]}}],
	"error":null}}`

const emptyDoc = `{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found"}}}`

func testClient(t *testing.T) *Client {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/v8/finance/chart/AAA", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(chartDoc))
	})
	mux.HandleFunc("/v8/finance/chart/EMPTY", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(emptyDoc))
	})
	mux.HandleFunc("/v8/finance/chart/BAD", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return &Client{http: srv.Client(), baseURL: srv.URL}
}

func TestClient_Quote(t *testing.T) {
	c := testClient(t)

	quote, err := c.Quote(context.Background(), "AAA")
	if err != nil {
		t.Fatalf("Quote() error = %v", err)
	}
	if quote.Price != 123.45 {
		t.Errorf("Quote().Price = %v, want 123.45", quote.Price)
	}
	if quote.Currency != "USD" {
		t.Errorf("Quote().Currency = %q, want USD", quote.Currency)
	}
	if want := date.New(2025, 8, 19); quote.Day != want {
		t.Errorf("Quote().Day = %v, want %v", quote.Day, want)
	}
}

func TestClient_QuoteNoData(t *testing.T) {
	c := testClient(t)

	if _, err := c.Quote(context.Background(), "BAD"); !errors.Is(err, tracker.ErrNoData) {
		t.Errorf("Quote(404) error = %v, want ErrNoData", err)
	}
	if _, err := c.Quote(context.Background(), "EMPTY"); !errors.Is(err, tracker.ErrNoData) {
		t.Errorf("Quote(null result) error = %v, want ErrNoData", err)
	}
}

func TestClient_History(t *testing.T) {
	c := testClient(t)

	h, err := c.History(context.Background(), "AAA", tracker.Period1M)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	// The null close of the 19th is skipped.
	if h.Len() != 2 {
		t.Fatalf("History().Len() = %d, want 2", h.Len())
	}
	if v, ok := h.Get(date.New(2025, 8, 18)); !ok || v != 100.5 {
		t.Errorf("close on the 18th = %v, %v; want 100.5", v, ok)
	}
	if v, ok := h.Get(date.New(2025, 8, 20)); !ok || v != 102.25 {
		t.Errorf("close on the 20th = %v, %v; want 102.25", v, ok)
	}
}

func TestClient_HistoryNoData(t *testing.T) {
	c := testClient(t)

	if _, err := c.History(context.Background(), "EMPTY", tracker.Period1Y); !errors.Is(err, tracker.ErrNoData) {
		t.Errorf("History(null result) error = %v, want ErrNoData", err)
	}
}

func TestClient_Classify(t *testing.T) {
	c := testClient(t)

	got, err := c.Classify(context.Background(), "AAA")
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if got.Name != "Test Fund" {
		t.Errorf("Classify().Name = %q, want %q", got.Name, "Test Fund")
	}
	if got.AssetClass != "ETF" {
		t.Errorf("Classify().AssetClass = %q, want ETF", got.AssetClass)
	}
	if got.Sector != "" {
		t.Errorf("Classify().Sector = %q, want empty (the chart API has no sector)", got.Sector)
	}
}
