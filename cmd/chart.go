package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/mfcarvalho/simulador/renderer"
)

type chartCmd struct {
	instrument instrumentFlags
	config     configFlags
	output     string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "run a simulation and render the trajectory as a PNG" }
func (*chartCmd) Usage() string {
	return `chart -f <fixture> | -s <symbol> [options] [-o <file>]

Runs the simulation and draws the market value trajectory as a line chart,
with the headline statistics in the subtitle.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	c.instrument.addFlags(f)
	c.config.addFlags(f)
	f.StringVar(&c.output, "o", "chart.png", "Output PNG file.")
}

func (c *chartCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, err := runSimulation(ctx, &c.instrument, &c.config)
	if err != nil {
		return fail("%v", err)
	}

	png, err := renderer.RenderChart(report)
	if err != nil {
		return fail("rendering chart: %v", err)
	}
	if err := os.WriteFile(c.output, png, 0644); err != nil {
		return fail("writing %q: %v", c.output, err)
	}
	fmt.Printf("Wrote %s\n", c.output)
	return subcommands.ExitSuccess
}
