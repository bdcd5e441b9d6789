package simulador

import (
	"testing"

	"github.com/mfcarvalho/simulador/date"
)

// The three literal scenarios share this series: four consecutive trading
// days closing at 100, 110, 90, 120, with 10000 invested on day one.
func scenarioSeries() PriceSeries {
	return testSeries("2025-03-03", 100, 110, 90, 120)
}

func TestWalk_PriceOnly(t *testing.T) {
	cfg := Config{InitialValue: brl(10000)}.withDefaults()
	trajectory, final := walk(scenarioSeries(), nil, cfg)

	if !final.Shares.Equal(Q(100)) {
		t.Fatalf("shares = %s, want 100", final.Shares)
	}
	wantValues := []float64{10000, 11000, 9000, 12000}
	if len(trajectory) != len(wantValues) {
		t.Fatalf("trajectory length = %d, want %d", len(trajectory), len(wantValues))
	}
	for i, want := range wantValues {
		assertMoneyNear(t, "market value", trajectory[i].MarketValue, want)
		if !trajectory[i].Shares.Equal(Q(100)) {
			t.Errorf("day %d shares = %s, want constant 100", i, trajectory[i].Shares)
		}
		if !trajectory[i].Cash.IsZero() {
			t.Errorf("day %d cash = %s, want zero", i, trajectory[i].Cash)
		}
	}
}

func TestWalk_DistributionCashed(t *testing.T) {
	dists := []Distribution{{Day: date.MustParse("2025-03-04"), Amount: brl(1), Kind: Dividend}}
	cfg := Config{InitialValue: brl(10000), ConsiderDividends: true}.withDefaults()

	trajectory, final := walk(scenarioSeries(), dists, cfg)

	// payout = 100 shares * 1 = 100, kept as cash from day 2 on
	assertMoneyNear(t, "received", final.Received, 100)
	assertMoneyNear(t, "cash", final.Cash, 100)
	if !final.Shares.Equal(Q(100)) {
		t.Errorf("shares = %s, want unchanged 100", final.Shares)
	}
	assertMoneyNear(t, "day-2 value", trajectory[1].MarketValue, 11100)
	assertMoneyNear(t, "day-3 value", trajectory[2].MarketValue, 9100)
	assertMoneyNear(t, "final value", trajectory[3].MarketValue, 12100)
}

func TestWalk_DistributionReinvested(t *testing.T) {
	dists := []Distribution{{Day: date.MustParse("2025-03-04"), Amount: brl(1), Kind: JCP}}
	cfg := Config{InitialValue: brl(10000), ConsiderDividends: true, ReinvestDividends: true}.withDefaults()

	trajectory, final := walk(scenarioSeries(), dists, cfg)

	// payout 100 buys 100/110 ≈ 0.909 extra shares at that day's close
	approx(t, "shares", final.Shares.AsFloat(), 100+100.0/110, 1e-9)
	if !final.Cash.IsZero() {
		t.Errorf("cash = %s, want zero when reinvesting", final.Cash)
	}
	assertMoneyNear(t, "received", final.Received, 100)
	// value is unchanged at the moment of reinvestment...
	approx(t, "day-2 value", trajectory[1].MarketValue.AsFloat(), 11100, 1e-6)
	// ...and diverges afterwards as the extra shares move with the price
	approx(t, "final value", trajectory[3].MarketValue.AsFloat(), (100+100.0/110)*120, 1e-6)
}

func TestWalk_DistributionOnNonTradingDay(t *testing.T) {
	// Series skips 2025-03-05; the event dated there pays on the 06th at
	// that day's price.
	series := PriceSeries{
		{Day: date.MustParse("2025-03-03"), Close: brl(100)},
		{Day: date.MustParse("2025-03-04"), Close: brl(110)},
		{Day: date.MustParse("2025-03-06"), Close: brl(120)},
	}
	dists := []Distribution{{Day: date.MustParse("2025-03-05"), Amount: brl(2), Kind: Dividend}}
	cfg := Config{InitialValue: brl(10000), ConsiderDividends: true, ReinvestDividends: true}.withDefaults()

	_, final := walk(series, dists, cfg)

	// 100 shares * 2 = 200 reinvested at 120
	approx(t, "shares", final.Shares.AsFloat(), 100+200.0/120, 1e-9)
	assertMoneyNear(t, "received", final.Received, 200)
}

func TestWalk_DistributionsOutsideSeriesAreDropped(t *testing.T) {
	dists := []Distribution{
		{Day: date.MustParse("2025-03-01"), Amount: brl(5), Kind: Dividend}, // before first day
		{Day: date.MustParse("2025-03-10"), Amount: brl(5), Kind: Dividend}, // after last day
	}
	cfg := Config{InitialValue: brl(10000), ConsiderDividends: true}.withDefaults()

	_, final := walk(scenarioSeries(), dists, cfg)

	if !final.Received.IsZero() {
		t.Errorf("received = %s, want zero, both events fall outside the holding period", final.Received)
	}
}

func TestWalk_IgnoresDistributionsWhenDisabled(t *testing.T) {
	dists := []Distribution{{Day: date.MustParse("2025-03-04"), Amount: brl(1), Kind: Dividend}}

	for _, reinvest := range []bool{false, true} {
		cfg := Config{InitialValue: brl(10000), ReinvestDividends: reinvest}.withDefaults()
		trajectory, final := walk(scenarioSeries(), dists, cfg)
		if !final.Received.IsZero() || !final.Cash.IsZero() {
			t.Errorf("reinvest=%v: distributions leaked into a run with ConsiderDividends=false", reinvest)
		}
		assertMoneyNear(t, "final value", trajectory[3].MarketValue, 12000)
	}
}

func TestWalk_MonthlyContributions(t *testing.T) {
	// Spans three calendar months; start day (Jan 15) is month zero and
	// gets no contribution.
	series := PriceSeries{
		{Day: date.MustParse("2025-01-15"), Close: brl(100)},
		{Day: date.MustParse("2025-01-31"), Close: brl(100)},
		{Day: date.MustParse("2025-02-03"), Close: brl(200)}, // first trading day of Feb
		{Day: date.MustParse("2025-02-14"), Close: brl(200)},
		{Day: date.MustParse("2025-03-03"), Close: brl(100)}, // first trading day of Mar
	}
	cfg := Config{InitialValue: brl(10000), MonthlyContribution: brl(500)}.withDefaults()

	trajectory, final := walk(series, nil, cfg)

	assertMoneyNear(t, "contributed", final.Contributed, 1000)
	// 100 initial + 500/200 in Feb + 500/100 in Mar
	approx(t, "shares", final.Shares.AsFloat(), 100+2.5+5, 1e-9)

	// The contribution lands exactly on the first trading day of the month.
	if trajectory[1].Shares.AsFloat() != 100 {
		t.Errorf("contribution applied before February began")
	}
	approx(t, "feb shares", trajectory[2].Shares.AsFloat(), 102.5, 1e-9)
}

func TestWalk_DistributionBeforeContributionSameDay(t *testing.T) {
	// On 2025-02-03 both a distribution and a contribution are due. The
	// distribution pays on the 100 pre-contribution shares only.
	series := PriceSeries{
		{Day: date.MustParse("2025-01-31"), Close: brl(100)},
		{Day: date.MustParse("2025-02-03"), Close: brl(100)},
	}
	dists := []Distribution{{Day: date.MustParse("2025-02-03"), Amount: brl(1), Kind: Dividend}}
	cfg := Config{
		InitialValue:        brl(10000),
		ConsiderDividends:   true,
		MonthlyContribution: brl(1000),
	}.withDefaults()

	_, final := walk(series, dists, cfg)

	// payout on 100 shares, not on the 10 bought by the contribution
	assertMoneyNear(t, "received", final.Received, 100)
	approx(t, "shares", final.Shares.AsFloat(), 110, 1e-9)
}

func TestWalk_Conservation(t *testing.T) {
	// final value == shares*price + cash, for a run exercising everything.
	series := testSeries("2025-01-31", 100, 110, 90, 120, 95)
	dists := []Distribution{
		{Day: date.MustParse("2025-02-01"), Amount: brl(1.5), Kind: Dividend},
		{Day: date.MustParse("2025-02-03"), Amount: brl(0.5), Kind: JCP},
	}
	cfg := Config{
		InitialValue:        brl(10000),
		ConsiderDividends:   true,
		MonthlyContribution: brl(750),
	}.withDefaults()

	trajectory, final := walk(series, dists, cfg)

	last := trajectory[len(trajectory)-1]
	want := last.Price.Mul(final.Shares).Add(final.Cash)
	if !last.MarketValue.Equal(want) {
		t.Errorf("market value %s does not equal shares*price+cash %s", last.MarketValue.Amount(), want.Amount())
	}
	if final.Shares.IsNegative() || final.Cash.IsNegative() {
		t.Errorf("negative state: shares=%s cash=%s", final.Shares, final.Cash.Amount())
	}
}
