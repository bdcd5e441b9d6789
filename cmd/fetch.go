package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/mfcarvalho/simulador"
	"github.com/mfcarvalho/simulador/yahoo"
)

type fetchCmd struct {
	instrument instrumentFlags
	output     string
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "fetch market data from Yahoo Finance into a fixture" }
func (*fetchCmd) Usage() string {
	return `fetch -s <symbol> [-from <date>] [-to <date>] [-o <file>]

Fetches daily closes and dividend events for the symbol and writes them as a
fixture (see 'topic fixtures'), to -o or to stdout. Later runs can then use
-f instead of hitting the network.
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	c.instrument.addFlags(f)
	f.StringVar(&c.output, "o", "", "Output file. Default is stdout.")
}

func (c *fetchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.instrument.symbol == "" {
		return fail("fetch needs -s <symbol>")
	}
	r, err := c.instrument.dateRange()
	if err != nil {
		return fail("%v", err)
	}

	data, err := yahoo.New().Fetch(ctx, c.instrument.symbol, r)
	if err != nil {
		return fail("%v", err)
	}

	out := os.Stdout
	if c.output != "" {
		out, err = os.Create(c.output)
		if err != nil {
			return fail("could not create %q: %v", c.output, err)
		}
		defer out.Close()
	}
	if err := simulador.EncodeInstrument(out, data); err != nil {
		return fail("encoding fixture: %v", err)
	}
	if c.output != "" {
		fmt.Printf("Wrote %d prices and %d distributions for %s to %s\n",
			len(data.Prices), len(data.Distributions), data.Symbol, c.output)
	}
	return subcommands.ExitSuccess
}
