package simulador

// State is the position of one simulation run between two trading days.
//
// It is a value: every transition returns a new State and leaves its receiver
// untouched, which makes each step of the walk independently testable. Shares
// only ever grow, the engine models no sells.
type State struct {
	Shares      Quantity // shares held, fractional
	Cash        Money    // distributions kept uninvested
	Contributed Money    // sum of monthly contributions to date
	Received    Money    // sum of distributions credited to date
}

// newState opens the position: the whole initial value buys shares at the
// first trading day's close.
func newState(initial, price Money) State {
	currency := price.Currency()
	return State{
		Shares:      initial.DivPrice(price),
		Cash:        M(0, currency),
		Contributed: M(0, currency),
		Received:    M(0, currency),
	}
}

// ApplyDistribution credits a per-share payout at the given trading-day
// price. With reinvest, the payout buys shares at that price; otherwise it
// accrues as uninvested cash. Zero shares yield zero payout and the state is
// returned unchanged.
func (s State) ApplyDistribution(perShare, price Money, reinvest bool) State {
	payout := perShare.Mul(s.Shares)
	if payout.IsZero() {
		return s
	}
	s.Received = s.Received.Add(payout)
	if reinvest {
		s.Shares = s.Shares.Add(payout.DivPrice(price))
	} else {
		s.Cash = s.Cash.Add(payout)
	}
	return s
}

// ApplyContribution invests a fresh amount at the given trading-day price.
func (s State) ApplyContribution(amount, price Money) State {
	s.Shares = s.Shares.Add(amount.DivPrice(price))
	s.Contributed = s.Contributed.Add(amount)
	return s
}

// Revalue returns the market value of the position at the given price:
// shares at the close plus uninvested cash.
func (s State) Revalue(price Money) Money {
	return price.Mul(s.Shares).Add(s.Cash)
}
