package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/mfcarvalho/simulador"
	"github.com/mfcarvalho/simulador/date"
	"github.com/mfcarvalho/simulador/renderer"
	"github.com/mfcarvalho/simulador/yahoo"
)

// instrumentFlags selects where the market data comes from: a local fixture
// file or Yahoo Finance. Shared by every command that runs a simulation.
type instrumentFlags struct {
	fixture string
	symbol  string
	from    string
	to      string
}

func (c *instrumentFlags) addFlags(f *flag.FlagSet) {
	f.StringVar(&c.fixture, "f", "", "Path to a fixture file (see 'topic fixtures'). Excludes -s.")
	f.StringVar(&c.symbol, "s", "", "Ticker to fetch from Yahoo Finance, e.g. PETR4.SA.")
	f.StringVar(&c.from, "from", "", "Start date (YYYY-MM-DD). Only with -s; default one year back.")
	f.StringVar(&c.to, "to", "", "End date (YYYY-MM-DD). Only with -s; default today.")
}

// load fetches or reads the instrument according to the flags.
func (c *instrumentFlags) load(ctx context.Context) (*simulador.InstrumentData, error) {
	switch {
	case c.fixture != "" && c.symbol != "":
		return nil, fmt.Errorf("-f and -s are exclusive, pick one")
	case c.fixture != "":
		f, err := os.Open(c.fixture)
		if err != nil {
			return nil, fmt.Errorf("could not open fixture: %w", err)
		}
		defer f.Close()
		return simulador.DecodeInstrument(f)
	case c.symbol != "":
		r, err := c.dateRange()
		if err != nil {
			return nil, err
		}
		return yahoo.New().Fetch(ctx, c.symbol, r)
	default:
		return nil, fmt.Errorf("no instrument: pass -f <fixture> or -s <symbol>")
	}
}

func (c *instrumentFlags) dateRange() (date.Range, error) {
	var r date.Range
	var err error
	if c.from != "" {
		if r.From, err = date.Parse(c.from); err != nil {
			return r, err
		}
	}
	if c.to != "" {
		if r.To, err = date.Parse(c.to); err != nil {
			return r, err
		}
	}
	return r, nil
}

// configFlags are the simulation knobs, shared by every command that runs a
// simulation. Defaults mirror a plain buy-and-hold run.
type configFlags struct {
	initial     float64
	monthly     float64
	dividends   bool
	reinvest    bool
	riskFree    float64
	tradingDays int
}

func (c *configFlags) addFlags(f *flag.FlagSet) {
	f.Float64Var(&c.initial, "initial", 10000, "Amount invested on the first trading day.")
	f.Float64Var(&c.monthly, "monthly", 0, "Contribution on the first trading day of each month. 0 disables.")
	f.BoolVar(&c.dividends, "dividends", true, "Credit dividend and JCP events to the portfolio.")
	f.BoolVar(&c.reinvest, "reinvest", false, "Reinvest each payout at that day's close instead of accruing cash.")
	f.Float64Var(&c.riskFree, "rf", 0, "Annual risk-free rate for the Sharpe ratio, e.g. 0.1075.")
	f.IntVar(&c.tradingDays, "trading-days", 0, "Trading days per year for annualization. 0 means 252.")
}

// config builds the engine config, denominating the amounts in the
// instrument's currency.
func (c *configFlags) config(currency string) simulador.Config {
	return simulador.Config{
		InitialValue:        simulador.M(c.initial, currency),
		ConsiderDividends:   c.dividends,
		ReinvestDividends:   c.reinvest,
		MonthlyContribution: simulador.M(c.monthly, currency),
		RiskFreeRate:        c.riskFree,
		TradingDaysPerYear:  c.tradingDays,
	}
}

// runSimulation loads the instrument, runs the engine, and assembles the
// renderable report. The common path of simulate, chart and assist.
func runSimulation(ctx context.Context, in *instrumentFlags, cf *configFlags) (*renderer.Report, error) {
	data, err := in.load(ctx)
	if err != nil {
		return nil, err
	}
	result, err := simulador.Simulate(data.Prices, data.Distributions, cf.config(data.Currency))
	if err != nil {
		return nil, err
	}
	return &renderer.Report{Symbol: data.Symbol, Name: data.Name, Result: result}, nil
}
