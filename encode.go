package simulador

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mfcarvalho/simulador/date"
	"github.com/shopspring/decimal"
)

// This file persists instrument data as a single JSON document, the golden
// fixture format. It decouples simulations (and tests) from any live data
// source: fetch once, simulate offline forever after.

// jsonInstrument is the wire form of InstrumentData. Amounts are plain
// decimals; the currency is carried once at the document level.
type jsonInstrument struct {
	Symbol        string             `json:"symbol"`
	Name          string             `json:"name,omitempty"`
	Currency      string             `json:"currency"`
	Prices        []jsonPricePoint   `json:"prices"`
	Distributions []jsonDistribution `json:"distributions,omitempty"`
}

type jsonPricePoint struct {
	Date  date.Date       `json:"date"`
	Close decimal.Decimal `json:"close"`
}

type jsonDistribution struct {
	Date   date.Date       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
	Kind   string          `json:"kind,omitempty"` // "dividend" (default) or "jcp"
}

// EncodeInstrument writes the instrument data as an indented JSON document.
func EncodeInstrument(w io.Writer, data *InstrumentData) error {
	doc := jsonInstrument{
		Symbol:   data.Symbol,
		Name:     data.Name,
		Currency: data.Currency,
		Prices:   make([]jsonPricePoint, 0, len(data.Prices)),
	}
	for _, p := range data.Prices {
		doc.Prices = append(doc.Prices, jsonPricePoint{Date: p.Day, Close: p.Close.Amount()})
	}
	for _, d := range data.Distributions {
		doc.Distributions = append(doc.Distributions, jsonDistribution{
			Date:   d.Day,
			Amount: d.Amount.Amount(),
			Kind:   d.Kind.String(),
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// DecodeInstrument reads an instrument document written by EncodeInstrument.
// The decoded series is validated so a hand-edited fixture fails here, not
// in the middle of a run.
func DecodeInstrument(r io.Reader) (*InstrumentData, error) {
	var doc jsonInstrument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding instrument data: %w", err)
	}

	data := &InstrumentData{
		Symbol:   doc.Symbol,
		Name:     doc.Name,
		Currency: doc.Currency,
		Prices:   make(PriceSeries, 0, len(doc.Prices)),
	}
	if data.Name == "" {
		data.Name = data.Symbol
	}
	for _, p := range doc.Prices {
		data.Prices = append(data.Prices, PricePoint{Day: p.Date, Close: M(p.Close, doc.Currency)})
	}
	for _, d := range doc.Distributions {
		kind := Dividend
		if d.Kind != "" {
			var err error
			if kind, err = ParseDistributionKind(d.Kind); err != nil {
				return nil, fmt.Errorf("decoding instrument data: %w", err)
			}
		}
		data.Distributions = append(data.Distributions, Distribution{
			Day:    d.Date,
			Amount: M(d.Amount, doc.Currency),
			Kind:   kind,
		})
	}

	if err := data.Prices.Validate(); err != nil {
		return nil, err
	}
	if err := ValidateDistributions(data.Distributions); err != nil {
		return nil, err
	}
	return data, nil
}
