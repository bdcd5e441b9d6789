package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

const fixture = `{
  "symbol": "PETR4.SA",
  "currency": "BRL",
  "prices": [
    {"date": "2025-03-03", "close": 100},
    {"date": "2025-03-04", "close": 110}
  ],
  "distributions": [
    {"date": "2025-03-04", "amount": 1}
  ]
}`

func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "petr4.json")
	if err := os.WriteFile(path, []byte(fixture), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestInstrumentFlags_LoadFixture(t *testing.T) {
	in := &instrumentFlags{fixture: writeFixture(t)}
	data, err := in.load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if data.Symbol != "PETR4.SA" || len(data.Prices) != 2 {
		t.Errorf("loaded %q with %d prices", data.Symbol, len(data.Prices))
	}
}

func TestInstrumentFlags_Exclusive(t *testing.T) {
	in := &instrumentFlags{fixture: "x.json", symbol: "PETR4.SA"}
	if _, err := in.load(context.Background()); err == nil {
		t.Error("both -f and -s accepted")
	}

	in = &instrumentFlags{}
	if _, err := in.load(context.Background()); err == nil {
		t.Error("neither -f nor -s accepted")
	}
}

func TestConfigFlags_Currency(t *testing.T) {
	cf := &configFlags{initial: 10000, monthly: 500, dividends: true}
	cfg := cf.config("BRL")
	if got := cfg.InitialValue.Currency(); got != "BRL" {
		t.Errorf("initial currency = %q", got)
	}
	if got := cfg.MonthlyContribution.Currency(); got != "BRL" {
		t.Errorf("monthly currency = %q", got)
	}
	if !cfg.ConsiderDividends {
		t.Error("dividends flag not carried")
	}
}

func TestRunSimulation(t *testing.T) {
	in := &instrumentFlags{fixture: writeFixture(t)}
	cf := &configFlags{initial: 10000, dividends: true}

	report, err := runSimulation(context.Background(), in, cf)
	if err != nil {
		t.Fatalf("runSimulation: %v", err)
	}
	if report.Symbol != "PETR4.SA" {
		t.Errorf("symbol = %q", report.Symbol)
	}
	if len(report.Result.Trajectory) != 2 {
		t.Fatalf("trajectory = %d days", len(report.Result.Trajectory))
	}
	// 100 shares, day 2 pays 1/share: 100*110 + 100 cash
	if got := report.Result.Final.MarketValue.AsFloat(); got != 11100 {
		t.Errorf("final value = %v, want 11100", got)
	}
}

func TestRunSimulation_BadConfig(t *testing.T) {
	in := &instrumentFlags{fixture: writeFixture(t)}
	cf := &configFlags{initial: 0}
	if _, err := runSimulation(context.Background(), in, cf); err == nil {
		t.Error("zero initial value accepted")
	}
}
