// Package cmd implements the CLI application to run investment simulations.
package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package calls Register() and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&simulateCmd{}, "simulation")
	c.Register(&chartCmd{}, "simulation")
	c.Register(&assistCmd{}, "simulation")

	c.Register(&fetchCmd{}, "market data")

	c.Register(&topicCmd{}, "documentation")
}

// printMarkdown renders markdown for the terminal. When rendering is not
// possible (dumb terminal, pipe) the raw markdown is still readable, so it
// is printed as-is.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// fail prints an error for the user and returns the failure exit status.
func fail(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	return subcommands.ExitFailure
}
