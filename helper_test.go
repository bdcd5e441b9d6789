package simulador

import (
	"math"
	"testing"

	"github.com/mfcarvalho/simulador/date"
)

// testSeries builds a series of consecutive calendar days starting at
// 'start', one close per value. Consecutive days are close enough to real
// trading days for the engine, which never inspects weekdays.
func testSeries(start string, closes ...float64) PriceSeries {
	day := date.MustParse(start)
	series := make(PriceSeries, 0, len(closes))
	for i, c := range closes {
		series = append(series, PricePoint{Day: day.Add(i), Close: M(c, "BRL")})
	}
	return series
}

// brl is shorthand for a BRL amount in tests.
func brl(v float64) Money { return M(v, "BRL") }

func approx(t *testing.T, name string, got, want, tolerance float64) {
	t.Helper()
	if math.Abs(got-want) > tolerance {
		t.Errorf("%s = %v, want %v (±%v)", name, got, want, tolerance)
	}
}

func assertMoneyNear(t *testing.T, name string, got Money, want float64) {
	t.Helper()
	approx(t, name, got.AsFloat(), want, 1e-9)
}
