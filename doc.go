// Package simulador simulates the outcome of investing in a single tradable
// security over historical time.
//
// A simulation is a deterministic fold over a chronological daily price
// series: dividend and JCP distributions are credited (optionally
// reinvested), an optional fixed contribution is invested on the first
// trading day of each month, and the resulting portfolio trajectory is
// summarized into return, volatility, Sharpe ratio and maximum drawdown.
//
// The engine is pure. It performs no I/O, owns no shared state, and two runs
// over the same inputs produce identical results; callers may run any number
// of simulations concurrently. Market data acquisition lives in the yahoo
// subpackage behind the Provider interface, presentation in renderer.
package simulador
