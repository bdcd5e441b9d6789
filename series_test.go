package simulador

import (
	"errors"
	"testing"

	"github.com/mfcarvalho/simulador/date"
)

func TestPriceSeries_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		series  PriceSeries
		wantErr bool
	}{
		{name: "valid", series: testSeries("2025-03-03", 100, 110)},
		{name: "single point", series: testSeries("2025-03-03", 100)},
		{name: "empty", series: PriceSeries{}, wantErr: true},
		{name: "nil", series: nil, wantErr: true},
		{
			name: "zero price",
			series: PriceSeries{
				{Day: date.MustParse("2025-03-03"), Close: brl(0)},
			},
			wantErr: true,
		},
		{
			name: "descending dates",
			series: PriceSeries{
				{Day: date.MustParse("2025-03-04"), Close: brl(100)},
				{Day: date.MustParse("2025-03-03"), Close: brl(100)},
			},
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.series.Validate()
			if tc.wantErr && !errors.Is(err, ErrInvalidSeries) {
				t.Errorf("err = %v, want ErrInvalidSeries", err)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateDistributions_AllowsSameDay(t *testing.T) {
	// A dividend and a JCP can be announced for the same date.
	ds := []Distribution{
		{Day: date.MustParse("2025-03-04"), Amount: brl(1), Kind: Dividend},
		{Day: date.MustParse("2025-03-04"), Amount: brl(0.5), Kind: JCP},
	}
	if err := ValidateDistributions(ds); err != nil {
		t.Errorf("same-day distributions rejected: %v", err)
	}
}

func TestDistributionKind_RoundTrip(t *testing.T) {
	for _, kind := range []DistributionKind{Dividend, JCP} {
		parsed, err := ParseDistributionKind(kind.String())
		if err != nil {
			t.Errorf("ParseDistributionKind(%q): %v", kind, err)
		}
		if parsed != kind {
			t.Errorf("round trip %v -> %v", kind, parsed)
		}
	}
	if _, err := ParseDistributionKind("bonus"); err == nil {
		t.Errorf("unknown kind accepted")
	}
}
