package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"os"

	"github.com/google/subcommands"

	"github.com/mfcarvalho/simulador/renderer"
)

type simulateCmd struct {
	instrument instrumentFlags
	config     configFlags
	jsonOut    bool
}

func (*simulateCmd) Name() string     { return "simulate" }
func (*simulateCmd) Synopsis() string { return "run a simulation and print the report" }
func (*simulateCmd) Usage() string {
	return `simulate -f <fixture> | -s <symbol> [options]

Replays the instrument's history with the given investment parameters and
prints the report: trajectory, cash flows and risk statistics.

Examples:
  simulate -s PETR4.SA -initial 10000 -monthly 500 -reinvest
  simulate -f petr4.json -dividends=false -json
`
}

func (c *simulateCmd) SetFlags(f *flag.FlagSet) {
	c.instrument.addFlags(f)
	c.config.addFlags(f)
	f.BoolVar(&c.jsonOut, "json", false, "Print the raw result as JSON instead of the report.")
}

func (c *simulateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, err := runSimulation(ctx, &c.instrument, &c.config)
	if err != nil {
		return fail("%v", err)
	}

	if c.jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report.Result); err != nil {
			return fail("encoding result: %v", err)
		}
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.RenderReport(report))
	return subcommands.ExitSuccess
}
