package simulador

import (
	"fmt"
	"math"
)

// Percent is a percentage value: Percent(20) is 20%, i.e. a ratio of 0.20.
// NaN marks a percentage that is undefined for the run.
type Percent float64

// Ratio returns the percentage as a plain ratio, Percent(20).Ratio() == 0.20.
func (p Percent) Ratio() float64 { return float64(p) / 100 }

// IsDefined reports whether the value carries a meaningful number.
func (p Percent) IsDefined() bool { return !math.IsNaN(float64(p)) }

// Equal compares with a small tolerance, percentages come out of division.
func (p Percent) Equal(q Percent) bool {
	const precision = 0.0001
	diff := float64(p - q)
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	if !p.IsDefined() {
		return "n/a"
	}
	return fmt.Sprintf("%.2f%%", float64(p))
}

// SignedString always shows the sign, and renders zero as "-".
func (p Percent) SignedString() string {
	if !p.IsDefined() {
		return "n/a"
	}
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}
