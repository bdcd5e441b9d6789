package simulador

import (
	"encoding/json"
	"math"
)

// Metrics are the summary statistics derived from a finished trajectory.
//
// SharpeRatio is NaN when volatility is zero, and PercentReturn is NaN when
// nothing was invested; both are surfaced as explicit undefined values
// rather than errors, because the trajectory itself remains valid. They
// encode as null in JSON.
type Metrics struct {
	AbsoluteReturn       Money   `json:"absolute_return"`
	PercentReturn        Percent `json:"percent_return"`
	AnnualizedVolatility float64 `json:"annualized_volatility"` // ratio, e.g. 0.25 for 25%
	SharpeRatio          float64 `json:"sharpe_ratio"`
	MaxDrawdown          float64 `json:"max_drawdown"` // fraction of peak in [0, 1]
}

// computeMetrics derives the metrics from the trajectory. Pure: it reads the
// snapshots and the config and touches nothing else.
func computeMetrics(trajectory []Snapshot, final State, cfg Config) Metrics {
	totalInvested := cfg.InitialValue.Add(final.Contributed)
	finalValue := trajectory[len(trajectory)-1].MarketValue
	absolute := finalValue.Sub(totalInvested)

	percent := Percent(math.NaN())
	if !totalInvested.IsZero() {
		// Structurally unreachable with a positive initial value, kept as a
		// guard against division by zero.
		percent = Percent(100 * absolute.AsFloat() / totalInvested.AsFloat())
	}

	returns := dailyReturns(trajectory)
	volatility := stdev(returns) * math.Sqrt(float64(cfg.TradingDaysPerYear))

	sharpe := math.NaN()
	if volatility != 0 {
		annualized := mean(returns) * float64(cfg.TradingDaysPerYear)
		sharpe = (annualized - cfg.RiskFreeRate) / volatility
	}

	return Metrics{
		AbsoluteReturn:       absolute,
		PercentReturn:        percent,
		AnnualizedVolatility: volatility,
		SharpeRatio:          sharpe,
		MaxDrawdown:          maxDrawdown(trajectory),
	}
}

// MarshalJSON encodes undefined (NaN) ratios as null, which encoding/json
// cannot do for raw floats.
func (m Metrics) MarshalJSON() ([]byte, error) {
	nullable := func(x float64) *float64 {
		if math.IsNaN(x) {
			return nil
		}
		return &x
	}
	percent := float64(m.PercentReturn)
	return json.Marshal(struct {
		AbsoluteReturn       Money    `json:"absolute_return"`
		PercentReturn        *float64 `json:"percent_return"`
		AnnualizedVolatility float64  `json:"annualized_volatility"`
		SharpeRatio          *float64 `json:"sharpe_ratio"`
		MaxDrawdown          float64  `json:"max_drawdown"`
	}{
		AbsoluteReturn:       m.AbsoluteReturn,
		PercentReturn:        nullable(percent),
		AnnualizedVolatility: m.AnnualizedVolatility,
		SharpeRatio:          nullable(m.SharpeRatio),
		MaxDrawdown:          m.MaxDrawdown,
	})
}

// dailyReturns computes the simple return between consecutive snapshots.
// A day whose prior value is not positive is skipped, the ratio would be
// meaningless.
func dailyReturns(trajectory []Snapshot) []float64 {
	returns := make([]float64, 0, len(trajectory))
	for i := 1; i < len(trajectory); i++ {
		prior := trajectory[i-1].MarketValue.AsFloat()
		if prior <= 0 {
			continue
		}
		returns = append(returns, trajectory[i].MarketValue.AsFloat()/prior-1)
	}
	return returns
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// stdev is the sample (n-1) standard deviation, 0 with fewer than two
// observations.
func stdev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	m := mean(xs)
	var sum float64
	for _, x := range xs {
		d := x - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(xs)-1))
}

// maxDrawdown is the deepest peak-to-trough decline as a fraction of the
// peak, computed in a single forward pass over the running peak. 0 for a
// monotonically non-decreasing trajectory.
func maxDrawdown(trajectory []Snapshot) float64 {
	var peak, worst float64
	for _, s := range trajectory {
		v := s.MarketValue.AsFloat()
		if v > peak {
			peak = v
		}
		if peak > 0 {
			if dd := (peak - v) / peak; dd > worst {
				worst = dd
			}
		}
	}
	return worst
}
