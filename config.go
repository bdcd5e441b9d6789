package simulador

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig reports a configuration the engine refuses to run with:
// a non-positive initial value or a negative monthly contribution.
var ErrInvalidConfig = errors.New("invalid simulation config")

// DefaultTradingDaysPerYear is the usual annualization factor for daily
// returns on stock exchanges.
const DefaultTradingDaysPerYear = 252

// Config describes one simulation run.
//
// ReinvestDividends has no effect unless ConsiderDividends is true.
// A zero MonthlyContribution disables contributions.
type Config struct {
	// InitialValue is the amount invested on the first trading day of the
	// series. Must be positive.
	InitialValue Money

	// ConsiderDividends credits distribution events to the portfolio.
	// When false, the distribution list is ignored entirely.
	ConsiderDividends bool

	// ReinvestDividends buys more shares with each payout at that day's
	// close instead of accruing it as uninvested cash.
	ReinvestDividends bool

	// MonthlyContribution is invested on the first trading day of every
	// calendar month after the starting month. Must not be negative.
	MonthlyContribution Money

	// RiskFreeRate is the annual risk-free rate used by the Sharpe ratio.
	// The default of 0 reproduces the plain return/volatility quotient.
	RiskFreeRate float64

	// TradingDaysPerYear is the annualization factor for volatility and
	// Sharpe. 0 means DefaultTradingDaysPerYear.
	TradingDaysPerYear int
}

// withDefaults fills the zero-value knobs with their documented defaults.
func (c Config) withDefaults() Config {
	if c.TradingDaysPerYear == 0 {
		c.TradingDaysPerYear = DefaultTradingDaysPerYear
	}
	return c
}

// Validate fails fast, before any state is built, so a run never yields a
// partial trajectory.
func (c Config) Validate() error {
	if !c.InitialValue.IsPositive() {
		return fmt.Errorf("%w: initial value %s must be positive", ErrInvalidConfig, c.InitialValue.Amount())
	}
	if c.MonthlyContribution.IsNegative() {
		return fmt.Errorf("%w: monthly contribution %s must not be negative", ErrInvalidConfig, c.MonthlyContribution.Amount())
	}
	if c.TradingDaysPerYear < 0 {
		return fmt.Errorf("%w: trading days per year %d must not be negative", ErrInvalidConfig, c.TradingDaysPerYear)
	}
	return nil
}
