package simulador

import (
	"context"

	"github.com/mfcarvalho/simulador/date"
)

// Provider supplies normalized market data for one instrument: a
// chronologically ordered, de-duplicated daily price series and the
// distribution events announced over the range.
//
// The engine trusts the data to be clean and fails fast otherwise, see
// PriceSeries.Validate. Implementations live outside the core (yahoo), and
// tests inject fixed fixtures instead.
type Provider interface {
	Fetch(ctx context.Context, symbol string, r date.Range) (*InstrumentData, error)
}

// InstrumentData is everything a provider returns for one instrument.
type InstrumentData struct {
	Symbol        string
	Name          string // long name if the vendor has one, else the symbol
	Currency      string // ISO 4217 code of prices and distributions
	Prices        PriceSeries
	Distributions []Distribution
}
