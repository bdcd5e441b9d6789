package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/mfcarvalho/simulador/docs"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `topic [<topic>...]

Show documentation for the given topics, or the index when none is given.
'topic "*"' shows everything.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}

	doc, err := docs.GetTopics(topics...)
	if err != nil {
		return fail("reading doc: %v", err)
	}
	printMarkdown(doc)

	return subcommands.ExitSuccess
}
