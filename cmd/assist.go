package cmd

import (
	"context"
	"flag"
	"os"
	"strings"

	"github.com/google/subcommands"
	"google.golang.org/genai"

	"github.com/mfcarvalho/simulador/agent"
	"github.com/mfcarvalho/simulador/renderer"
)

type assistCmd struct {
	instrument instrumentFlags
	config     configFlags
}

func (*assistCmd) Name() string { return "assist" }
func (*assistCmd) Synopsis() string {
	return "run a simulation and discuss the report with the AI assistant"
}
func (*assistCmd) Usage() string {
	return `assist -f <fixture> | -s <symbol> [options] [initial question]

Runs the simulation, then starts an interactive session with an AI analyst
that has the full report. Requires Gemini credentials in the environment
(GEMINI_API_KEY or Vertex AI configuration).
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	c.instrument.addFlags(f)
	c.config.addFlags(f)
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, err := runSimulation(ctx, &c.instrument, &c.config)
	if err != nil {
		return fail("%v", err)
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return fail("initializing Gemini client: %v", err)
	}

	a := agent.New(os.Stdout, os.Stdin, renderer.RenderReport(report))

	var prompts []string
	if f.NArg() > 0 {
		prompts = append(prompts, strings.Join(f.Args(), " "))
	}
	if err := a.Run(ctx, client, prompts...); err != nil {
		return fail("assistant failed: %v", err)
	}
	return subcommands.ExitSuccess
}
