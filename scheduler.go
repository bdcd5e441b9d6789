package simulador

import "github.com/mfcarvalho/simulador/date"

// Snapshot is the portfolio at the end of one trading day. Snapshots are
// created once per day by the walk and never mutated; their ordered sequence
// is the simulation trajectory.
type Snapshot struct {
	Day         date.Date `json:"date"`
	Shares      Quantity  `json:"shares"`
	Price       Money     `json:"price"`
	MarketValue Money     `json:"market_value"`
	Cash        Money     `json:"cash"`
}

// walk runs the single forward pass over the trading days.
//
// Per day, in order: distributions that become effective that day, then the
// monthly contribution if one is due, then revaluation at the close. The
// ordering matters: shares bought by the contribution must not receive that
// day's payout.
//
// A distribution dated between trading days takes effect on the next trading
// day; dated before the first day or after the last it is dropped. A
// contribution is due on the first trading day of every calendar month after
// the starting month — the start day itself never receives one, the initial
// value already is month zero.
//
// Inputs are assumed validated. The returned State is the final one, frozen
// into the last snapshot.
func walk(series PriceSeries, dists []Distribution, cfg Config) ([]Snapshot, State) {
	first := series.First()
	state := newState(cfg.InitialValue, first.Close)
	trajectory := make([]Snapshot, 0, len(series))

	contribute := cfg.MonthlyContribution.IsPositive()

	// Distributions before the holding period never pay out.
	next := 0
	for next < len(dists) && dists[next].Day.Before(first.Day) {
		next++
	}

	prev := first.Day
	for i, p := range series {
		if cfg.ConsiderDividends {
			for next < len(dists) && !dists[next].Day.After(p.Day) {
				state = state.ApplyDistribution(dists[next].Amount, p.Close, cfg.ReinvestDividends)
				next++
			}
		}
		if contribute && i > 0 && !date.SameMonth(prev, p.Day) {
			state = state.ApplyContribution(cfg.MonthlyContribution, p.Close)
		}
		trajectory = append(trajectory, Snapshot{
			Day:         p.Day,
			Shares:      state.Shares,
			Price:       p.Close,
			MarketValue: state.Revalue(p.Close),
			Cash:        state.Cash,
		})
		prev = p.Day
	}
	return trajectory, state
}
