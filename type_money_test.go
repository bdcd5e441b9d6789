package simulador

import "testing"

func TestMoneyArithmetic(t *testing.T) {
	price := brl(110)
	payout := brl(100)

	shares := payout.DivPrice(price)
	approx(t, "shares bought", shares.AsFloat(), 100.0/110, 1e-12)

	// buying back at the same price restores the amount (up to division
	// precision)
	back := price.Mul(shares)
	approx(t, "value restored", back.AsFloat(), 100, 1e-9)
}

func TestMoneyWeakCurrency(t *testing.T) {
	got := M(10, "").Add(brl(5))
	if got.Currency() != "BRL" {
		t.Errorf("weak currency did not adopt BRL, got %q", got.Currency())
	}

	defer func() {
		if recover() == nil {
			t.Errorf("mixing BRL and USD did not panic")
		}
	}()
	_ = brl(1).Add(M(1, "USD"))
}

func TestMoneyString(t *testing.T) {
	if got := brl(10000).String(); got != "R$10,000.00" {
		t.Errorf("String() = %q", got)
	}
}

func TestPercent(t *testing.T) {
	p := Percent(20)
	if p.Ratio() != 0.20 {
		t.Errorf("Ratio() = %v, want 0.20", p.Ratio())
	}
	if got := p.String(); got != "20.00%" {
		t.Errorf("String() = %q", got)
	}
	if got := p.SignedString(); got != "+20.00%" {
		t.Errorf("SignedString() = %q", got)
	}
	if got := Percent(0).SignedString(); got != "-" {
		t.Errorf("zero SignedString() = %q", got)
	}
	if !p.Equal(Percent(20.00001)) {
		t.Errorf("tolerance comparison failed")
	}
}
