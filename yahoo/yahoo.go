// Package yahoo fetches daily price history and dividend events from the
// Yahoo Finance chart API and normalizes them for the simulation engine.
//
// Yahoo covers B3 tickers (PETR4.SA, BOVA11.SA, …) as well as US listings,
// which is exactly the universe the simulator targets. Responses are cached
// on disk for a day, see client.go.
package yahoo

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"

	"github.com/mfcarvalho/simulador"
	"github.com/mfcarvalho/simulador/date"
)

const chartURL = "https://query1.finance.yahoo.com/v8/finance/chart/"

// Client implements simulador.Provider against the Yahoo chart endpoint.
type Client struct {
	http *http.Client
}

var _ simulador.Provider = (*Client)(nil)

// New returns a client with daily response caching.
func New() *Client { return &Client{http: newDailyCachingClient()} }

// NewWithHTTPClient returns a client using the given http.Client. For tests.
func NewWithHTTPClient(c *http.Client) *Client { return &Client{http: c} }

// Fetch retrieves the daily closes and dividend events for symbol over r.
// An unbounded range requests one year of history, the vendor's common
// default.
func (c *Client) Fetch(ctx context.Context, symbol string, r date.Range) (*simulador.InstrumentData, error) {
	return c.fetch(ctx, chartURL, symbol, r)
}

// fetch is Fetch against an arbitrary base URL, so tests can point it at a
// local server.
func (c *Client) fetch(ctx context.Context, base, symbol string, r date.Range) (*simulador.InstrumentData, error) {
	addr := base + url.PathEscape(symbol) + "?" + query(r)

	var payload any
	if err := jwget(ctx, c.http, addr, &payload); err != nil {
		return nil, fmt.Errorf("fetching %q: %w", symbol, err)
	}

	if apiErr, err := jsonpath.Get("$.chart.error.description", payload); err == nil && apiErr != nil {
		return nil, fmt.Errorf("fetching %q: %v", symbol, apiErr)
	}

	currency := stringAt(payload, "$.chart.result[0].meta.currency")
	if currency == "" {
		return nil, fmt.Errorf("fetching %q: no result in response", symbol)
	}
	name := stringAt(payload, "$.chart.result[0].meta.longName")
	if name == "" {
		name = symbol
	}

	prices, err := extractPrices(payload, currency)
	if err != nil {
		return nil, fmt.Errorf("fetching %q: %w", symbol, err)
	}
	dists := extractDividends(payload, currency)

	data := &simulador.InstrumentData{
		Symbol:        symbol,
		Name:          name,
		Currency:      currency,
		Prices:        prices,
		Distributions: dists,
	}
	if err := data.Prices.Validate(); err != nil {
		return nil, fmt.Errorf("fetching %q: %w", symbol, err)
	}
	return data, nil
}

// query builds the chart query string for a range. Dividends ride along in
// the same response via events=div.
func query(r date.Range) string {
	v := url.Values{}
	v.Set("interval", "1d")
	v.Set("events", "div")
	if r.From.IsZero() && r.To.IsZero() {
		v.Set("range", "1y")
		return v.Encode()
	}
	from, to := r.From, r.To
	if to.IsZero() {
		to = date.Today()
	}
	v.Set("period1", fmt.Sprintf("%d", unix(from)))
	// period2 is exclusive, push it past the requested day
	v.Set("period2", fmt.Sprintf("%d", unix(to.Add(1))))
	return v.Encode()
}

func unix(d date.Date) int64 {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC).Unix()
}

// extractPrices pairs the timestamp and close arrays of the payload. Yahoo
// pads missing bars with nulls; those days are skipped.
func extractPrices(payload any, currency string) (simulador.PriceSeries, error) {
	stamps, err := listAt(payload, "$.chart.result[0].timestamp")
	if err != nil {
		return nil, fmt.Errorf("no timestamps: %w", err)
	}
	closes, err := listAt(payload, "$.chart.result[0].indicators.quote[0].close")
	if err != nil {
		return nil, fmt.Errorf("no closes: %w", err)
	}
	if len(stamps) != len(closes) {
		return nil, fmt.Errorf("%d timestamps for %d closes", len(stamps), len(closes))
	}

	series := make(simulador.PriceSeries, 0, len(stamps))
	for i := range stamps {
		ts, ok := stamps[i].(float64)
		if !ok {
			continue
		}
		close, ok := closes[i].(float64)
		if !ok || close <= 0 {
			continue // null bar or junk
		}
		series = append(series, simulador.PricePoint{
			Day:   date.FromTime(time.Unix(int64(ts), 0).UTC()),
			Close: simulador.M(decimal.NewFromFloat(close), currency),
		})
	}
	return series, nil
}

// extractDividends reads the events.dividends map. The section is absent
// when the instrument paid nothing over the range.
func extractDividends(payload any, currency string) []simulador.Distribution {
	raw, err := jsonpath.Get("$.chart.result[0].events.dividends", payload)
	if err != nil {
		return nil
	}
	entries, ok := raw.(map[string]any)
	if !ok {
		return nil
	}

	dists := make([]simulador.Distribution, 0, len(entries))
	for _, e := range entries {
		entry, ok := e.(map[string]any)
		if !ok {
			continue
		}
		amount, okAmount := entry["amount"].(float64)
		ts, okDate := entry["date"].(float64)
		if !okAmount || !okDate || amount < 0 {
			continue
		}
		dists = append(dists, simulador.Distribution{
			Day:    date.FromTime(time.Unix(int64(ts), 0).UTC()),
			Amount: simulador.M(decimal.NewFromFloat(amount), currency),
			Kind:   simulador.Dividend, // the vendor does not tell JCP apart
		})
	}
	// the map carries no order
	sort.Slice(dists, func(i, j int) bool { return dists[i].Day.Before(dists[j].Day) })
	return dists
}

// stringAt extracts a string at a jsonpath, "" when absent or not a string.
func stringAt(payload any, path string) string {
	v, err := jsonpath.Get(path, payload)
	if err != nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// listAt extracts a json array at a jsonpath.
func listAt(payload any, path string) ([]any, error) {
	v, err := jsonpath.Get(path, payload)
	if err != nil {
		return nil, err
	}
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%s is not a list", path)
	}
	return list, nil
}
