package simulador

import (
	"errors"
	"fmt"

	"github.com/mfcarvalho/simulador/date"
)

// ErrInvalidSeries reports unusable market data: an empty or unsorted price
// series, non-positive prices, or an unsorted distribution list.
var ErrInvalidSeries = errors.New("invalid price series")

// PricePoint is the closing price of the instrument on one trading day.
type PricePoint struct {
	Day   date.Date
	Close Money
}

// PriceSeries is the daily price history of one instrument, one point per
// trading day in strictly increasing date order.
type PriceSeries []PricePoint

// Validate checks the invariants the engine relies on: non-empty, strictly
// increasing dates, positive closes. The provider is expected to deliver
// clean data, so any violation is a fail-fast error.
func (s PriceSeries) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidSeries)
	}
	for i, p := range s {
		if !p.Close.IsPositive() {
			return fmt.Errorf("%w: non-positive close %s on %s", ErrInvalidSeries, p.Close.Amount(), p.Day)
		}
		if i > 0 && !s[i-1].Day.Before(p.Day) {
			return fmt.Errorf("%w: dates out of order at %s", ErrInvalidSeries, p.Day)
		}
	}
	return nil
}

// First returns the first trading day of the series.
func (s PriceSeries) First() PricePoint { return s[0] }

// Last returns the last trading day of the series.
func (s PriceSeries) Last() PricePoint { return s[len(s)-1] }

// DistributionKind tells dividends and JCP apart. The engine treats both
// identically; the distinction is kept because Brazilian statements report
// them separately.
type DistributionKind int

const (
	Dividend DistributionKind = iota
	JCP                       // juros sobre capital próprio
)

func (k DistributionKind) String() string {
	switch k {
	case Dividend:
		return "dividend"
	case JCP:
		return "jcp"
	default:
		return fmt.Sprintf("distribution(%d)", int(k))
	}
}

// ParseDistributionKind parses the string form of a DistributionKind.
func ParseDistributionKind(s string) (DistributionKind, error) {
	switch s {
	case "dividend":
		return Dividend, nil
	case "jcp":
		return JCP, nil
	default:
		return Dividend, fmt.Errorf("unknown distribution kind %q", s)
	}
}

// Distribution is a per-share payout announced for a given date. The date
// does not have to be a trading day: the payout takes effect on the next
// available trading day.
type Distribution struct {
	Day    date.Date
	Amount Money // per share, non-negative
	Kind   DistributionKind
}

// ValidateDistributions checks that the list is chronologically sorted with
// non-negative amounts. Ties on the same day are allowed, a dividend and a
// JCP can share a date.
func ValidateDistributions(ds []Distribution) error {
	for i, d := range ds {
		if d.Amount.IsNegative() {
			return fmt.Errorf("%w: negative distribution %s on %s", ErrInvalidSeries, d.Amount.Amount(), d.Day)
		}
		if i > 0 && d.Day.Before(ds[i-1].Day) {
			return fmt.Errorf("%w: distributions out of order at %s", ErrInvalidSeries, d.Day)
		}
	}
	return nil
}
