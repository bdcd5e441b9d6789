// Package agent is the AI assistant of the simulator: an interactive chat
// grounded on a finished simulation report, so the user can ask questions
// about the numbers in plain language.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Agent runs the chat session between the user and the analyst.
type Agent struct {
	w       io.Writer
	r       *bufio.Reader
	Analyst *Analyst
}

// New creates an Agent around a report. The writer receives the agent's
// output (e.g. os.Stdout), the reader provides user input (e.g. os.Stdin).
func New(w io.Writer, r io.Reader, report string) *Agent {
	return &Agent{
		w:       w,
		r:       bufio.NewReader(r),
		Analyst: NewAnalyst(report),
	}
}

const prompt = "assist> "

// Run starts the interactive REPL session. Initial prompts, if any, are
// consumed before reading from the user; "bye" or EOF ends the session.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if err := a.Analyst.Start(ctx, client); err != nil {
		return err
	}

	fmt.Fprintln(a.w, "Ask about the simulation. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)
		var input string

		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // clean exit on Ctrl+D
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		answer, err := a.Analyst.Ask(ctx, input)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, answer)
	}
}
